// Copyright (C) 2025 siteguard-sec
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"log/slog"
	"os"

	"github.com/siteguard-sec/siteguard/cmd/siteguard/api"
	"github.com/siteguard-sec/siteguard/database"
	"github.com/siteguard-sec/siteguard/shared"
)

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	db, err := shared.DatabaseFactory()
	if err != nil {
		slog.Error("could not connect to database", "err", err)
		os.Exit(1)
	}

	if err := database.AutoMigrate(db); err != nil {
		slog.Error("could not migrate database", "err", err)
		os.Exit(1)
	}

	api.Start(db)
}

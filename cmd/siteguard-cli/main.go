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

	"github.com/siteguard-sec/siteguard/cmd/siteguard-cli/commands"
	"github.com/siteguard-sec/siteguard/shared"
)

func Execute() {
	err := commands.GetRootCmd().Execute()
	if err != nil {
		slog.Error("Error executing command", "err", err)
		os.Exit(1)
	}
}

func init() {
	commands.GetRootCmd().AddCommand(commands.NewSeedCommand())
	commands.GetRootCmd().AddCommand(commands.NewRiskCommand())
	commands.GetRootCmd().AddCommand(commands.NewScenariosCommand())
	commands.GetRootCmd().AddCommand(commands.NewAssessmentsCommand())
}

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()
	Execute()
}

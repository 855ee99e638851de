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

package commands

import (
	"log/slog"

	"github.com/siteguard-sec/siteguard/services"
	"github.com/spf13/cobra"
)

func NewSeedCommand() *cobra.Command {
	seed := cobra.Command{
		Use:   "seed",
		Short: "Seed the canonical libraries",
	}

	seed.AddCommand(newSeedLibrariesCommand())
	return &seed
}

func newSeedLibrariesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "libraries",
		Short: "Upsert the canonical control and threat libraries",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newServiceSet()
			if err != nil {
				return err
			}

			controls := services.DefaultControlLibrary()
			threats := services.DefaultThreatLibrary()
			if err := set.library.SeedLibraries(controls, threats); err != nil {
				return err
			}

			slog.Info("seeded libraries", "controls", len(controls), "threats", len(threats))
			return nil
		},
	}
}

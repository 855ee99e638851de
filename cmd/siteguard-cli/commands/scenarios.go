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
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewScenariosCommand() *cobra.Command {
	scenarios := cobra.Command{
		Use:   "scenarios",
		Short: "Manage generated risk scenarios",
	}

	scenarios.PersistentFlags().String("assessmentID", "", "id of the assessment")
	viper.BindPFlag("assessmentID", scenarios.PersistentFlags().Lookup("assessmentID")) // nolint: errcheck

	scenarios.AddCommand(newScenariosRegenerateCommand())
	scenarios.AddCommand(newScenariosListCommand())
	return &scenarios
}

func newScenariosRegenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "regenerate",
		Short: "Regenerate the scenarios of an assessment from its profile and survey",
		RunE: func(cmd *cobra.Command, args []string) error {
			assessmentID, err := assessmentIDFromFlags()
			if err != nil {
				return err
			}

			set, err := newServiceSet()
			if err != nil {
				return err
			}

			created, err := set.scenarios.Regenerate(assessmentID)
			if err != nil {
				return err
			}
			return printJSON(created)
		},
	}
}

func newScenariosListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the stored scenarios of an assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			assessmentID, err := assessmentIDFromFlags()
			if err != nil {
				return err
			}

			set, err := newServiceSet()
			if err != nil {
				return err
			}

			scenarios, err := set.scenarios.GetByAssessmentID(assessmentID)
			if err != nil {
				return err
			}
			return printJSON(scenarios)
		},
	}
}

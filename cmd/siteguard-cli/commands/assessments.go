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
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewAssessmentsCommand() *cobra.Command {
	assessments := cobra.Command{
		Use:   "assessments",
		Short: "Manage assessments",
	}

	assessments.PersistentFlags().String("assessmentID", "", "id of the assessment")
	viper.BindPFlag("assessmentID", assessments.PersistentFlags().Lookup("assessmentID")) // nolint: errcheck

	assessments.AddCommand(newAssessmentsCreateCommand())
	assessments.AddCommand(newAssessmentsDeleteCommand())
	return &assessments
}

func newAssessmentsCreateCommand() *cobra.Command {
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an assessment from a profile file",
		RunE: func(cmd *cobra.Command, args []string) error {
			organizationID, err := uuid.Parse(viper.GetString("organizationID"))
			if err != nil {
				return err
			}

			profile, err := os.ReadFile(viper.GetString("profileFile"))
			if err != nil {
				return err
			}

			set, err := newServiceSet()
			if err != nil {
				return err
			}

			assessment, err := set.assessments.Create(organizationID, viper.GetString("name"), viper.GetString("templateID"), profile)
			if err != nil {
				return err
			}
			return printJSON(assessment)
		},
	}

	create.Flags().String("organizationID", "", "id of the owning organization")
	create.Flags().String("name", "", "name of the assessment")
	create.Flags().String("templateID", "", "vertical template id")
	create.Flags().String("profileFile", "", "path to a json file holding the facility profile")
	viper.BindPFlag("organizationID", create.Flags().Lookup("organizationID")) // nolint: errcheck
	viper.BindPFlag("name", create.Flags().Lookup("name"))                     // nolint: errcheck
	viper.BindPFlag("templateID", create.Flags().Lookup("templateID"))         // nolint: errcheck
	viper.BindPFlag("profileFile", create.Flags().Lookup("profileFile"))       // nolint: errcheck

	return create
}

func newAssessmentsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete an assessment and everything attached to it",
		RunE: func(cmd *cobra.Command, args []string) error {
			assessmentID, err := assessmentIDFromFlags()
			if err != nil {
				return err
			}

			set, err := newServiceSet()
			if err != nil {
				return err
			}

			if err := set.assessments.Delete(assessmentID); err != nil {
				return err
			}

			slog.Info("deleted assessment", "assessmentID", assessmentID)
			return nil
		},
	}
}

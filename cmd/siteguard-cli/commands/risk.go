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
	"encoding/json"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRiskCommand() *cobra.Command {
	risk := cobra.Command{
		Use:   "risk",
		Short: "Run scoring passes",
	}

	risk.PersistentFlags().String("assessmentID", "", "id of the assessment")
	viper.BindPFlag("assessmentID", risk.PersistentFlags().Lookup("assessmentID")) // nolint: errcheck

	risk.AddCommand(newRiskScoreCommand())
	risk.AddCommand(newRiskTCORCommand())
	return &risk
}

func assessmentIDFromFlags() (uuid.UUID, error) {
	return uuid.Parse(viper.GetString("assessmentID"))
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newRiskScoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Score an assessment and print the risk report",
		RunE: func(cmd *cobra.Command, args []string) error {
			assessmentID, err := assessmentIDFromFlags()
			if err != nil {
				return err
			}

			set, err := newServiceSet()
			if err != nil {
				return err
			}

			report, err := set.scoring.ScoreAssessment(assessmentID)
			if err != nil {
				return err
			}
			return printJSON(report)
		},
	}
}

func newRiskTCORCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tcor",
		Short: "Print the total cost of risk breakdown of an assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			assessmentID, err := assessmentIDFromFlags()
			if err != nil {
				return err
			}

			set, err := newServiceSet()
			if err != nil {
				return err
			}

			breakdown, err := set.scoring.CalculateTCOR(assessmentID)
			if err != nil {
				return err
			}
			return printJSON(breakdown)
		},
	}
}

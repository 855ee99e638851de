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
package scenario

import (
	"testing"

	"github.com/google/uuid"
	"github.com/siteguard-sec/siteguard/database/models"
	"github.com/siteguard-sec/siteguard/dtos"
	"github.com/siteguard-sec/siteguard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioNames(scenarios []models.RiskScenario) []string {
	return utils.Map(scenarios, func(s models.RiskScenario) string { return s.Scenario })
}

func findScenario(t *testing.T, scenarios []models.RiskScenario, name string) models.RiskScenario {
	t.Helper()
	for _, s := range scenarios {
		if s.Scenario == name {
			return s
		}
	}
	t.Fatalf("scenario %q not generated", name)
	return models.RiskScenario{}
}

func TestExecutiveGenerator(t *testing.T) {
	generator := NewExecutiveGenerator()
	assessmentID := uuid.New()

	t.Run("empty profile activates nothing", func(t *testing.T) {
		scenarios, err := generator.Generate(assessmentID, &dtos.ExecutiveProfile{}, nil)
		assert.NoError(t, err)
		assert.Empty(t, scenarios)
	})

	t.Run("wrong profile variant is an error", func(t *testing.T) {
		_, err := generator.Generate(assessmentID, &dtos.OfficeProfile{}, nil)
		assert.Error(t, err)
	})

	t.Run("kidnapping requires the net worth floor", func(t *testing.T) {
		below, err := generator.Generate(assessmentID, &dtos.ExecutiveProfile{NetWorthRange: utils.Ptr("10-50M")}, nil)
		require.NoError(t, err)
		assert.NotContains(t, scenarioNames(below), "Kidnapping for Ransom")

		above, err := generator.Generate(assessmentID, &dtos.ExecutiveProfile{NetWorthRange: utils.Ptr("50-100M")}, nil)
		require.NoError(t, err)
		assert.Contains(t, scenarioNames(above), "Kidnapping for Ransom")
	})

	t.Run("fully exposed principal activates everything", func(t *testing.T) {
		profile := &dtos.ExecutiveProfile{
			NetWorthRange:       utils.Ptr("100M+"),
			PublicProfile:       utils.Ptr("high"),
			InternationalTravel: utils.Ptr(true),
		}
		scenarios, err := generator.Generate(assessmentID, profile, nil)
		require.NoError(t, err)
		assert.ElementsMatch(t, generator.ScenarioNames(), scenarioNames(scenarios))
	})

	t.Run("unprotected international traveler kidnapping assessment", func(t *testing.T) {
		profile := &dtos.ExecutiveProfile{
			NetWorthRange:       utils.Ptr("100M+"),
			InternationalTravel: utils.Ptr(true),
		}
		scenarios, err := generator.Generate(assessmentID, profile, nil)
		require.NoError(t, err)

		kidnapping := findScenario(t, scenarios, "Kidnapping for Ransom")
		assert.Equal(t, "Kidnapping", kidnapping.ThreatType)
		assert.Equal(t, assessmentID, kidnapping.AssessmentID)
		// T4 x V4 x I5 x E4 = 320
		assert.InDelta(t, 320, kidnapping.InherentRisk, 0.0001)
		assert.Equal(t, kidnapping.InherentRisk, kidnapping.ResidualRisk)
		// 320 / 6.25 = 51.2 on the normalized scale
		assert.Equal(t, dtos.RiskLevelHigh, kidnapping.RiskLevel)
		assert.Equal(t, "high", kidnapping.LikelihoodDescriptor)
		assert.Equal(t, "catastrophic", kidnapping.ImpactDescriptor)
	})

	t.Run("mitigations lower the vulnerability die down to the floor", func(t *testing.T) {
		profile := &dtos.ExecutiveProfile{
			NetWorthRange:         utils.Ptr("100M+"),
			HasPersonalProtection: utils.Ptr(true),
			HasSecureResidence:    utils.Ptr(true),
		}
		scenarios, err := generator.Generate(assessmentID, profile, nil)
		require.NoError(t, err)

		kidnapping := findScenario(t, scenarios, "Kidnapping for Ransom")
		// V drops from 4 to the floor of 2; T4 x V2 x I5 x E3 = 120
		assert.InDelta(t, 120, kidnapping.InherentRisk, 0.0001)
		// 120 / 6.25 = 19.2
		assert.Equal(t, dtos.RiskLevelLow, kidnapping.RiskLevel)
	})

	t.Run("stalker requires a high public profile", func(t *testing.T) {
		medium, err := generator.Generate(assessmentID, &dtos.ExecutiveProfile{
			NetWorthRange: utils.Ptr("10-50M"),
			PublicProfile: utils.Ptr("medium"),
		}, nil)
		require.NoError(t, err)
		assert.NotContains(t, scenarioNames(medium), "Fixated Person / Stalker")
	})
}

func TestLowerVulnerability(t *testing.T) {
	assert.Equal(t, 4, lowerVulnerability(4, 2))
	assert.Equal(t, 3, lowerVulnerability(4, 2, utils.Ptr(true)))
	assert.Equal(t, 2, lowerVulnerability(4, 2, utils.Ptr(true), utils.Ptr(true)))
	// floor holds
	assert.Equal(t, 2, lowerVulnerability(4, 2, utils.Ptr(true), utils.Ptr(true), utils.Ptr(true)))
	// nil and false mitigations do not reduce
	assert.Equal(t, 4, lowerVulnerability(4, 2, nil, utils.Ptr(false)))
}

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
package risk

import (
	"testing"

	"github.com/siteguard-sec/siteguard/dtos"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromScore(t *testing.T) {
	tests := []struct {
		score    int
		expected dtos.RiskLevel
	}{
		{0, dtos.RiskLevelLow},
		{24, dtos.RiskLevelLow},
		{25, dtos.RiskLevelMedium},
		{49, dtos.RiskLevelMedium},
		{50, dtos.RiskLevelHigh},
		{74, dtos.RiskLevelHigh},
		{75, dtos.RiskLevelCritical},
		{100, dtos.RiskLevelCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LevelFromScore(tt.score), "score %d", tt.score)
	}
}

func TestLevelFromNormalized(t *testing.T) {
	assert.Equal(t, dtos.RiskLevelLow, LevelFromNormalized(24.99))
	assert.Equal(t, dtos.RiskLevelMedium, LevelFromNormalized(25))
	assert.Equal(t, dtos.RiskLevelHigh, LevelFromNormalized(64))
	assert.Equal(t, dtos.RiskLevelCritical, LevelFromNormalized(76.8))
}

func TestDescriptors(t *testing.T) {
	t.Run("likelihood bands", func(t *testing.T) {
		assert.Equal(t, "very-high", LikelihoodDescriptor(5))
		assert.Equal(t, "very-high", LikelihoodDescriptor(4.5))
		assert.Equal(t, "high", LikelihoodDescriptor(4))
		assert.Equal(t, "medium", LikelihoodDescriptor(3))
		assert.Equal(t, "low", LikelihoodDescriptor(2))
		assert.Equal(t, "very-low", LikelihoodDescriptor(1))
	})

	t.Run("impact bands", func(t *testing.T) {
		assert.Equal(t, "catastrophic", ImpactDescriptor(5))
		assert.Equal(t, "major", ImpactDescriptor(4))
		assert.Equal(t, "moderate", ImpactDescriptor(3))
		assert.Equal(t, "minor", ImpactDescriptor(2))
		assert.Equal(t, "negligible", ImpactDescriptor(1))
	})
}

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

	"github.com/pkg/errors"
	"github.com/siteguard-sec/siteguard/database/models"
	"github.com/siteguard-sec/siteguard/dtos"
	"github.com/siteguard-sec/siteguard/utils"
	"github.com/stretchr/testify/assert"
)

// catalogStub answers canonical lookups without a database. With no
// missing set every name is canonical.
type catalogStub struct {
	missing map[string]bool
}

func (c catalogStub) HasCanonicalControl(name string) (bool, error) {
	return !c.missing[name], nil
}

func existingControl(name string) models.Control {
	return models.Control{Name: name, ControlType: models.ControlTypeExisting}
}

func proposedControl(name string) models.Control {
	return models.Control{Name: name, ControlType: models.ControlTypeProposed}
}

func TestOfficeAdapter(t *testing.T) {
	adapter := NewOfficeAdapter(catalogStub{})
	largeOffice := &dtos.OfficeProfile{EmployeeCount: utils.Ptr("1000+")}

	t.Run("no controls at all yields insufficient data, not maximum risk", func(t *testing.T) {
		report, err := adapter.Score(Input{Profile: largeOffice})
		assert.NoError(t, err)
		assert.Equal(t, 0, report.RiskScore)
		assert.Equal(t, dtos.RiskLevelLow, report.RiskLevel)
		assert.Len(t, report.Factors, 1)
	})

	t.Run("proposed controls only score as fully unprotected", func(t *testing.T) {
		// a proposed control gets the assessment past the early exit but
		// reduces nothing
		report, err := adapter.Score(Input{
			Profile:  largeOffice,
			Controls: []models.Control{proposedControl("Access Control System")},
		})
		assert.NoError(t, err)
		assert.Equal(t, 100, report.RiskScore)
		assert.Equal(t, dtos.RiskLevelCritical, report.RiskLevel)
		assert.Contains(t, report.Factors, "No panic buttons at reception for a large workforce")
		assert.Contains(t, report.Factors, "No active shooter response training for a large workforce")
	})

	t.Run("small workforce is not penalized for large-workforce controls", func(t *testing.T) {
		report, err := adapter.Score(Input{
			Profile:  &dtos.OfficeProfile{EmployeeCount: utils.Ptr("1-50")},
			Controls: []models.Control{proposedControl("Access Control System")},
		})
		assert.NoError(t, err)
		assert.NotContains(t, report.Factors, "No panic buttons at reception for a large workforce")
		// violence max drops to 65 without the two gated items
		assert.Equal(t, 79, report.RiskScore)
	})

	t.Run("sub scores carry the 0.6/0.4 weighting", func(t *testing.T) {
		report, err := adapter.Score(Input{
			Profile:  largeOffice,
			Controls: []models.Control{proposedControl("Access Control System")},
		})
		assert.NoError(t, err)
		assert.Len(t, report.SubScores, 2)
		assert.Equal(t, "violence", report.SubScores[0].Name)
		assert.InDelta(t, 0.6, report.SubScores[0].Weight, 0.0001)
		assert.Equal(t, "data", report.SubScores[1].Name)
		assert.InDelta(t, 0.4, report.SubScores[1].Weight, 0.0001)
	})

	t.Run("adding a control never raises the score", func(t *testing.T) {
		controls := []models.Control{proposedControl("placeholder")}
		previous := 101
		for _, name := range []string{
			"Access Control System", "CCTV Surveillance System", "Visitor Management System",
			"Security Guard Coverage", "Panic Buttons", "Active Shooter Response Training",
			"Server Room Access Control", "Secure Document Destruction", "Badge Access Logging",
			"Workstation Screen Locking", "Clean Desk Policy",
		} {
			controls = append(controls, existingControl(name))
			report, err := adapter.Score(Input{Profile: largeOffice, Controls: controls})
			assert.NoError(t, err)
			assert.LessOrEqual(t, report.RiskScore, previous)
			previous = report.RiskScore
		}
		// every checklist item present
		assert.Equal(t, 0, previous)
	})

	t.Run("name matching tolerates free-text entries", func(t *testing.T) {
		report, err := adapter.Score(Input{
			Profile: largeOffice,
			Controls: []models.Control{
				existingControl("Building-wide CCTV surveillance system with 90 day retention"),
			},
		})
		assert.NoError(t, err)
		assert.NotContains(t, report.Factors, "No CCTV surveillance of entrances and common areas")
	})

	t.Run("missing library entry aborts the pass", func(t *testing.T) {
		broken := NewOfficeAdapter(catalogStub{missing: map[string]bool{"Panic Buttons": true}})
		_, err := broken.Score(Input{
			Profile:  largeOffice,
			Controls: []models.Control{existingControl("Access Control System")},
		})
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrLibraryLookup))
	})
}

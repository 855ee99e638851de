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

// Package scenario holds the conditional risk-scenario generators. Each
// candidate scenario is an independent rule: an activation guard followed by
// a T x V x I (x E) assessment. A failed guard returns nil and logs why -
// zero activated scenarios is a valid, reportable outcome.
package scenario

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/siteguard-sec/siteguard/database/models"
	"github.com/siteguard-sec/siteguard/dtos"
	"github.com/siteguard-sec/siteguard/risk"
	"github.com/siteguard-sec/siteguard/shared"
)

// Inherent risk is stored on the vertical's raw scale but classified on a
// normalized 0-100 scale, so the shared 25/50/75 thresholds mean the same
// thing in every vertical. Executive protection rolls four dice of 1-5
// (max 625), warehouse three (max 125).
const (
	executiveScaleDivisor = 6.25
	warehouseScaleDivisor = 1.25
)

// ForTemplate returns the generator for a template id, or an error for
// verticals without scenario generation.
func ForTemplate(templateID string) (shared.ScenarioGenerator, error) {
	switch templateID {
	case dtos.TemplateExecutive:
		return NewExecutiveGenerator(), nil
	case dtos.TemplateWarehouse:
		return NewWarehouseGenerator(), nil
	default:
		return nil, fmt.Errorf("no scenario generator for template id: %s", templateID)
	}
}

// newScenario assembles a scenario row from integer dice. exposure of 0
// means the vertical does not use the exposure dimension. ResidualRisk
// starts equal to InherentRisk; control effectiveness is applied later by
// the user, outside this engine.
func newScenario(assessmentID uuid.UUID, name, asset, threatType string, threat, vulnerability, impact, exposure int, scaleDivisor float64) models.RiskScenario {
	inherent := float64(threat * vulnerability * impact)
	if exposure > 0 {
		inherent *= float64(exposure)
	}

	return models.RiskScenario{
		AssessmentID:         assessmentID,
		Scenario:             name,
		Asset:                asset,
		ThreatType:           threatType,
		LikelihoodScore:      threat,
		ImpactScore:          impact,
		LikelihoodDescriptor: risk.LikelihoodDescriptor(float64(threat)),
		ImpactDescriptor:     risk.ImpactDescriptor(float64(impact)),
		InherentRisk:         inherent,
		ControlEffectiveness: 0,
		ResidualRisk:         inherent,
		RiskLevel:            risk.LevelFromNormalized(inherent / scaleDivisor),
	}
}

// lowerVulnerability reduces a vulnerability die once per present
// mitigation, never below the floor.
func lowerVulnerability(base int, floor int, mitigations ...*bool) int {
	v := base
	for _, m := range mitigations {
		if m != nil && *m {
			v--
		}
	}
	if v < floor {
		return floor
	}
	return v
}

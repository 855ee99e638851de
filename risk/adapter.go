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
	"fmt"

	"github.com/pkg/errors"
	"github.com/siteguard-sec/siteguard/database/models"
	"github.com/siteguard-sec/siteguard/dtos"
	"github.com/siteguard-sec/siteguard/normalize"
	"github.com/siteguard-sec/siteguard/utils"
)

// ErrLibraryLookup marks a checklist referencing a canonical control name
// that is missing from the seeded control library. This is a broken seed
// mapping, not user input; it propagates instead of being recovered.
var ErrLibraryLookup = errors.New("canonical control name not found in library")

// Catalog answers whether a canonical control name exists in the seeded
// control library.
type Catalog interface {
	HasCanonicalControl(name string) (bool, error)
}

// Input is everything an adapter consumes for one scoring pass: the
// assessment row, its decoded profile, its controls, and (where the
// vertical uses them) the facility survey answers keyed by question key.
type Input struct {
	Assessment models.Assessment
	Profile    dtos.Profile
	Controls   []models.Control
	Survey     map[string]string
}

// ExistingControlNames returns the names of controls that are actually in
// place. Proposed controls do not reduce risk yet.
func (in Input) ExistingControlNames() []string {
	existing := utils.Filter(in.Controls, func(c models.Control) bool {
		return c.ControlType == models.ControlTypeExisting
	})
	return utils.Map(existing, func(c models.Control) string { return c.Name })
}

// Adapter scores one facility vertical with an additive point-penalty
// model: absent critical controls add points, the sum is capped at 100 and
// classified with the shared thresholds.
type Adapter interface {
	TemplateID() string
	Score(in Input) (dtos.RiskReport, error)
}

// ForTemplate selects the adapter strategy for a template id.
func ForTemplate(templateID string, catalog Catalog) (Adapter, error) {
	switch templateID {
	case dtos.TemplateOffice:
		return NewOfficeAdapter(catalog), nil
	case dtos.TemplateDatacenter:
		return NewDatacenterAdapter(catalog), nil
	case dtos.TemplateManufacturing:
		return NewManufacturingAdapter(catalog), nil
	case dtos.TemplateRetail:
		return NewRetailAdapter(catalog), nil
	case dtos.TemplateWarehouse:
		return NewWarehouseAdapter(catalog), nil
	case dtos.TemplateExecutive:
		return NewExecutiveAdapter(catalog), nil
	default:
		return nil, fmt.Errorf("no scoring adapter for template id: %s", templateID)
	}
}

// checklistItem is one critical control of a vertical checklist. Points are
// added when the control is absent; a nil applies guard means the item is
// always evaluated.
type checklistItem struct {
	control string
	points  int
	reason  string
	applies func(Input) bool
}

// runChecklist sums the penalties of absent controls and collects the
// human-readable factors. Every canonical name is verified against the
// library first; an unknown name aborts the pass.
func runChecklist(items []checklistItem, in Input, catalog Catalog) (int, []string, error) {
	existingNames := in.ExistingControlNames()

	score := 0
	factors := []string{}
	for _, item := range items {
		ok, err := catalog.HasCanonicalControl(item.control)
		if err != nil {
			return 0, nil, errors.Wrapf(err, "could not look up control %q", item.control)
		}
		if !ok {
			return 0, nil, errors.Wrapf(ErrLibraryLookup, "control %q", item.control)
		}

		if item.applies != nil && !item.applies(in) {
			continue
		}

		if !normalize.HasControl(existingNames, item.control) {
			score += item.points
			factors = append(factors, item.reason)
		}
	}
	return score, factors, nil
}

func capScore(score int) int {
	if score > 100 {
		return 100
	}
	return score
}

// insufficientData is the early-exit result when there is nothing to
// inspect: absence of input is "insufficient data", not "maximum risk".
func insufficientData() dtos.RiskReport {
	return dtos.RiskReport{
		RiskScore: 0,
		RiskLevel: dtos.RiskLevelLow,
		Factors:   []string{"No controls or survey data recorded yet - complete data collection to receive a risk score"},
	}
}

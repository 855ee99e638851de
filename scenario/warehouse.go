package scenario

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/siteguard-sec/siteguard/database/models"
	"github.com/siteguard-sec/siteguard/dtos"
	"github.com/siteguard-sec/siteguard/utils"
)

const (
	scenarioCargoTheft    = "Cargo Theft"
	scenarioPilferage     = "Employee Pilferage"
	scenarioDockIntrusion = "Loading Dock Intrusion"
	scenarioAfterHours    = "After-Hours Break-In"
)

// highValueInventoryFloor activates the cargo theft scenario even when the
// operator did not flag high-value goods explicitly.
const highValueInventoryFloor = 10_000_000

type warehouseGenerator struct{}

func NewWarehouseGenerator() *warehouseGenerator {
	return &warehouseGenerator{}
}

func (g *warehouseGenerator) TemplateID() string { return dtos.TemplateWarehouse }

func (g *warehouseGenerator) ScenarioNames() []string {
	return []string{scenarioCargoTheft, scenarioPilferage, scenarioDockIntrusion, scenarioAfterHours}
}

// Generate consults the facility survey in addition to the profile: several
// warehouse scenarios hinge on walkthrough observations rather than
// declared profile fields.
func (g *warehouseGenerator) Generate(assessmentID uuid.UUID, profile dtos.Profile, survey map[string]string) ([]models.RiskScenario, error) {
	p, ok := profile.(*dtos.WarehouseProfile)
	if !ok {
		return nil, fmt.Errorf("warehouse generator received %s profile", profile.TemplateID())
	}

	candidates := []*models.RiskScenario{
		generateCargoTheft(assessmentID, *p, survey),
		generatePilferage(assessmentID, *p, survey),
		generateDockIntrusion(assessmentID, *p, survey),
		generateAfterHours(assessmentID, *p, survey),
	}

	activated := utils.Filter(candidates, func(s *models.RiskScenario) bool { return s != nil })
	return utils.Map(activated, func(s *models.RiskScenario) models.RiskScenario { return *s }), nil
}

func generateCargoTheft(assessmentID uuid.UUID, p dtos.WarehouseProfile, survey map[string]string) *models.RiskScenario {
	highValue := (p.HighValueGoods != nil && *p.HighValueGoods) ||
		utils.OrDefault(p.InventoryValue, 0) >= highValueInventoryFloor
	if !highValue {
		slog.Debug("skipping scenario", "scenario", scenarioCargoTheft, "reason", "inventory below high-value threshold")
		return nil
	}

	vulnerability := 4
	if survey["yard_gated"] == "yes" {
		vulnerability = 3
	}

	s := newScenario(assessmentID, scenarioCargoTheft, "Staged and in-transit inventory", "Theft", 4, vulnerability, 4, 0, warehouseScaleDivisor)
	return &s
}

func generatePilferage(assessmentID uuid.UUID, p dtos.WarehouseProfile, survey map[string]string) *models.RiskScenario {
	if survey["inventory_audits"] != "no" {
		slog.Debug("skipping scenario", "scenario", scenarioPilferage, "reason", "cycle counts/audits reported in place")
		return nil
	}

	s := newScenario(assessmentID, scenarioPilferage, "Small high-value stock", "Theft", 3, 4, 3, 0, warehouseScaleDivisor)
	return &s
}

func generateDockIntrusion(assessmentID uuid.UUID, p dtos.WarehouseProfile, survey map[string]string) *models.RiskScenario {
	if survey["dock_doors_monitored"] != "no" {
		slog.Debug("skipping scenario", "scenario", scenarioDockIntrusion, "reason", "dock doors reported monitored")
		return nil
	}

	vulnerability := 4
	if utils.OrDefault(p.DockDoorCount, 0) > 20 {
		vulnerability = 5
	}

	s := newScenario(assessmentID, scenarioDockIntrusion, "Loading dock", "Intrusion", 3, vulnerability, 3, 0, warehouseScaleDivisor)
	return &s
}

func generateAfterHours(assessmentID uuid.UUID, p dtos.WarehouseProfile, survey map[string]string) *models.RiskScenario {
	if survey["overnight_staffed"] != "no" {
		slog.Debug("skipping scenario", "scenario", scenarioAfterHours, "reason", "site staffed overnight")
		return nil
	}

	s := newScenario(assessmentID, scenarioAfterHours, "Building and inventory", "Burglary", 3, 3, 4, 0, warehouseScaleDivisor)
	return &s
}

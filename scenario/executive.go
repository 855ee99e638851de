package scenario

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/siteguard-sec/siteguard/database/models"
	"github.com/siteguard-sec/siteguard/dtos"
	"github.com/siteguard-sec/siteguard/risk"
	"github.com/siteguard-sec/siteguard/utils"
)

const (
	scenarioKidnapping     = "Kidnapping for Ransom"
	scenarioHomeInvasion   = "Home Invasion"
	scenarioFixatedStalker = "Fixated Person / Stalker"
	scenarioTravelAmbush   = "Travel Route Ambush"
)

type executiveGenerator struct{}

func NewExecutiveGenerator() *executiveGenerator {
	return &executiveGenerator{}
}

func (g *executiveGenerator) TemplateID() string { return dtos.TemplateExecutive }

func (g *executiveGenerator) ScenarioNames() []string {
	return []string{scenarioKidnapping, scenarioHomeInvasion, scenarioFixatedStalker, scenarioTravelAmbush}
}

func (g *executiveGenerator) Generate(assessmentID uuid.UUID, profile dtos.Profile, survey map[string]string) ([]models.RiskScenario, error) {
	p, ok := profile.(*dtos.ExecutiveProfile)
	if !ok {
		return nil, fmt.Errorf("executive generator received %s profile", profile.TemplateID())
	}

	candidates := []*models.RiskScenario{
		generateKidnapping(assessmentID, *p),
		generateHomeInvasion(assessmentID, *p),
		generateFixatedStalker(assessmentID, *p),
		generateTravelAmbush(assessmentID, *p),
	}

	activated := utils.Filter(candidates, func(s *models.RiskScenario) bool { return s != nil })
	return utils.Map(activated, func(s *models.RiskScenario) models.RiskScenario { return *s }), nil
}

// generateKidnapping activates only above the $50M net worth floor:
// ransom-driven abduction is not a credible scenario below it.
func generateKidnapping(assessmentID uuid.UUID, p dtos.ExecutiveProfile) *models.RiskScenario {
	if !risk.HighNetWorth(p.NetWorthRange) {
		slog.Debug("skipping scenario", "scenario", scenarioKidnapping, "reason", "net worth below $50M floor")
		return nil
	}

	vulnerability := lowerVulnerability(4, 2, p.HasPersonalProtection, p.HasSecureResidence)
	exposure := 3
	if p.InternationalTravel != nil && *p.InternationalTravel {
		exposure = 4
	}

	s := newScenario(assessmentID, scenarioKidnapping, "Principal", "Kidnapping", 4, vulnerability, 5, exposure, executiveScaleDivisor)
	return &s
}

func generateHomeInvasion(assessmentID uuid.UUID, p dtos.ExecutiveProfile) *models.RiskScenario {
	if p.NetWorthRange == nil {
		slog.Debug("skipping scenario", "scenario", scenarioHomeInvasion, "reason", "net worth unknown")
		return nil
	}

	vulnerability := lowerVulnerability(4, 2, p.HasSecureResidence, p.HasPersonalProtection)
	exposure := 3
	if utils.OrDefault(p.ResidenceCount, 1) > 1 {
		exposure = 4
	}

	s := newScenario(assessmentID, scenarioHomeInvasion, "Primary residence", "Burglary / Home Invasion", 3, vulnerability, 4, exposure, executiveScaleDivisor)
	return &s
}

func generateFixatedStalker(assessmentID uuid.UUID, p dtos.ExecutiveProfile) *models.RiskScenario {
	if utils.OrDefault(p.PublicProfile, "") != "high" {
		slog.Debug("skipping scenario", "scenario", scenarioFixatedStalker, "reason", "public profile not high")
		return nil
	}

	vulnerability := lowerVulnerability(3, 1, p.HasPersonalProtection)

	s := newScenario(assessmentID, scenarioFixatedStalker, "Principal and family", "Stalking / Fixated Person", 4, vulnerability, 3, 4, executiveScaleDivisor)
	return &s
}

func generateTravelAmbush(assessmentID uuid.UUID, p dtos.ExecutiveProfile) *models.RiskScenario {
	if p.InternationalTravel == nil || !*p.InternationalTravel {
		slog.Debug("skipping scenario", "scenario", scenarioTravelAmbush, "reason", "no international travel declared")
		return nil
	}

	vulnerability := lowerVulnerability(4, 2, p.HasArmoredVehicle, p.HasPersonalProtection)

	s := newScenario(assessmentID, scenarioTravelAmbush, "Principal in transit", "Ambush / Vehicle Attack", 3, vulnerability, 5, 4, executiveScaleDivisor)
	return &s
}

package risk

import (
	"log/slog"
	"math"

	"github.com/pkg/errors"
	"github.com/siteguard-sec/siteguard/dtos"
	"github.com/siteguard-sec/siteguard/normalize"
)

var tierNumbers = map[string]int{
	"Tier I":   1,
	"Tier II":  2,
	"Tier III": 3,
	"Tier IV":  4,
}

// requiredTierForSLA maps a contractually required uptime SLA to the
// minimum Uptime Institute tier able to deliver it.
var requiredTierForSLA = map[string]int{
	"99.9%":   2,
	"99.99%":  3,
	"99.999%": 4,
}

// slaTierMismatch is true when the declared tier cannot deliver the
// required SLA. Redundancy penalties only apply once this mismatch is
// established; a datacenter whose tier covers its SLA is not penalized for
// redundancy controls it does not need.
func slaTierMismatch(p *dtos.DatacenterProfile) bool {
	if p == nil || p.TierClassification == nil || p.RequiredUptimeSLA == nil {
		return false
	}
	tier, ok := tierNumbers[*p.TierClassification]
	if !ok {
		return false
	}
	required, ok := requiredTierForSLA[*p.RequiredUptimeSLA]
	if !ok {
		return false
	}
	return required > tier
}

type datacenterAdapter struct {
	catalog Catalog
}

func NewDatacenterAdapter(catalog Catalog) *datacenterAdapter {
	return &datacenterAdapter{catalog: catalog}
}

func (a *datacenterAdapter) TemplateID() string { return dtos.TemplateDatacenter }

// Score combines an infrastructure sub-score and a physical-security
// sub-score with a fixed 0.55/0.45 weighting, plus the independent
// compliance sub-score over the declared standards.
func (a *datacenterAdapter) Score(in Input) (dtos.RiskReport, error) {
	if len(in.Controls) == 0 {
		return insufficientData(), nil
	}

	mismatch := func(in Input) bool {
		p, _ := in.Profile.(*dtos.DatacenterProfile)
		return slaTierMismatch(p)
	}

	infrastructureChecklist := []checklistItem{
		{control: "Redundant Power Feeds", points: 20, reason: "Required SLA exceeds tier capability and power feeds are not redundant", applies: mismatch},
		{control: "Backup Generator Capacity", points: 20, reason: "Required SLA exceeds tier capability and there is no backup generator capacity", applies: mismatch},
		{control: "Redundant Cooling System", points: 15, reason: "Required SLA exceeds tier capability and cooling is not redundant", applies: mismatch},
		{control: "Fire Suppression System", points: 20, reason: "No fire suppression system in the data hall"},
		{control: "UPS Battery Monitoring", points: 15, reason: "UPS batteries are not monitored"},
		{control: "Environmental Monitoring", points: 10, reason: "No environmental monitoring of temperature and humidity"},
	}

	physicalChecklist := []checklistItem{
		{control: "Biometric Access Control", points: 20, reason: "No biometric access control at the data hall boundary"},
		{control: "24/7 Security Staffing", points: 20, reason: "No around-the-clock security staffing"},
		{control: "Mantrap Entry Portal", points: 15, reason: "No mantrap portal between lobby and data hall"},
		{control: "CCTV Surveillance System", points: 15, reason: "No CCTV coverage of hall entrances and corridors"},
		{control: "Cage and Rack Locking", points: 15, reason: "Customer cages and racks are not individually locked"},
		{control: "Visitor Escort Policy", points: 15, reason: "Visitors are not escorted inside the data hall"},
	}

	infraScore, infraFactors, err := runChecklist(infrastructureChecklist, in, a.catalog)
	if err != nil {
		return dtos.RiskReport{}, err
	}
	physicalScore, physicalFactors, err := runChecklist(physicalChecklist, in, a.catalog)
	if err != nil {
		return dtos.RiskReport{}, err
	}

	infraScore = capScore(infraScore)
	physicalScore = capScore(physicalScore)

	combined := capScore(int(math.Round(0.55*float64(infraScore) + 0.45*float64(physicalScore))))

	report := dtos.RiskReport{
		RiskScore: combined,
		RiskLevel: LevelFromScore(combined),
		Factors:   append(infraFactors, physicalFactors...),
		SubScores: []dtos.SubScore{
			{Name: "infrastructure", Score: infraScore, Level: LevelFromScore(infraScore), Weight: 0.55},
			{Name: "physical", Score: physicalScore, Level: LevelFromScore(physicalScore), Weight: 0.45},
		},
	}

	if p, ok := in.Profile.(*dtos.DatacenterProfile); ok && len(p.ComplianceStandards) > 0 {
		compliance, err := a.complianceScore(in, p.ComplianceStandards)
		if err != nil {
			return dtos.RiskReport{}, err
		}
		report.Compliance = compliance
	}

	return report, nil
}

// requiredControlsByStandard lists the canonical controls each compliance
// standard expects to see in place.
var requiredControlsByStandard = map[string][]string{
	"SOC 2":     {"Biometric Access Control", "CCTV Surveillance System", "Visitor Escort Policy", "Environmental Monitoring"},
	"ISO 27001": {"Biometric Access Control", "CCTV Surveillance System", "Security Awareness Training", "Asset Inventory Management"},
	"PCI-DSS":   {"Biometric Access Control", "CCTV Surveillance System", "Visitor Escort Policy", "Cage and Rack Locking"},
	"HIPAA":     {"Biometric Access Control", "Visitor Escort Policy", "Workstation Screen Locking"},
	"FedRAMP":   {"Biometric Access Control", "Mantrap Entry Portal", "24/7 Security Staffing", "CCTV Surveillance System"},
}

// complianceScore computes present/required x 100 per declared standard and
// averages across standards. It is independent of the risk score.
func (a *datacenterAdapter) complianceScore(in Input, standards []string) (*dtos.ComplianceReport, error) {
	existingNames := in.ExistingControlNames()

	gaps := []string{}
	sum := 0.0
	counted := 0
	evaluated := []string{}

	for _, standard := range standards {
		required, ok := requiredControlsByStandard[standard]
		if !ok {
			// user-declared standard we have no mapping for - user input,
			// not a broken seed
			slog.Warn("unknown compliance standard declared on profile, skipping", "standard", standard)
			continue
		}

		present := 0
		for _, control := range required {
			ok, err := a.catalog.HasCanonicalControl(control)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, errors.Wrapf(ErrLibraryLookup, "control %q required by %s", control, standard)
			}

			if normalize.HasControl(existingNames, control) {
				present++
			} else {
				gaps = append(gaps, standard+": "+control)
			}
		}

		sum += float64(present) / float64(len(required)) * 100
		counted++
		evaluated = append(evaluated, standard)
	}

	if counted == 0 {
		return nil, nil
	}

	return &dtos.ComplianceReport{
		Score:     int(math.Round(sum / float64(counted))),
		Standards: evaluated,
		Gaps:      gaps,
	}, nil
}

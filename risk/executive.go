package risk

import "github.com/siteguard-sec/siteguard/dtos"

// HighNetWorth reports whether the declared net worth range reaches the
// $50M floor used by several protection requirements and scenario guards.
// Absent range means unknown, never "below".
func HighNetWorth(netWorthRange *string) bool {
	if netWorthRange == nil {
		return false
	}
	return *netWorthRange == "50-100M" || *netWorthRange == "100M+"
}

type executiveAdapter struct {
	catalog Catalog
}

func NewExecutiveAdapter(catalog Catalog) *executiveAdapter {
	return &executiveAdapter{catalog: catalog}
}

func (a *executiveAdapter) TemplateID() string { return dtos.TemplateExecutive }

func (a *executiveAdapter) Score(in Input) (dtos.RiskReport, error) {
	if len(in.Controls) == 0 {
		return insufficientData(), nil
	}

	wealthy := func(in Input) bool {
		p, ok := in.Profile.(*dtos.ExecutiveProfile)
		return ok && HighNetWorth(p.NetWorthRange)
	}
	traveler := func(in Input) bool {
		p, ok := in.Profile.(*dtos.ExecutiveProfile)
		return ok && p.InternationalTravel != nil && *p.InternationalTravel
	}

	checklist := []checklistItem{
		{control: "Residential Security System", points: 20, reason: "Primary residence has no monitored security system"},
		{control: "Digital Privacy Monitoring", points: 10, reason: "No monitoring of address and travel data exposure online"},
		{control: "Family Security Awareness Training", points: 10, reason: "Family members have no security awareness training"},
		{control: "Personal Protection Detail", points: 25, reason: "Net worth profile warrants a protection detail and none exists", applies: wealthy},
		{control: "Secure Transportation Program", points: 20, reason: "Net worth profile warrants secure transportation and none exists", applies: wealthy},
		{control: "Travel Security Briefings", points: 15, reason: "International travel without pre-travel security briefings", applies: traveler},
	}

	score, factors, err := runChecklist(checklist, in, a.catalog)
	if err != nil {
		return dtos.RiskReport{}, err
	}

	score = capScore(score)
	return dtos.RiskReport{
		RiskScore: score,
		RiskLevel: LevelFromScore(score),
		Factors:   factors,
	}, nil
}

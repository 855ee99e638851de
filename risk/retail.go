package risk

import "github.com/siteguard-sec/siteguard/dtos"

// elevatedShrinkage is the industry-average shrinkage threshold (percent of
// revenue) above which loss-prevention penalties apply.
const elevatedShrinkage = 1.5

type retailAdapter struct {
	catalog Catalog
}

func NewRetailAdapter(catalog Catalog) *retailAdapter {
	return &retailAdapter{catalog: catalog}
}

func (a *retailAdapter) TemplateID() string { return dtos.TemplateRetail }

func (a *retailAdapter) Score(in Input) (dtos.RiskReport, error) {
	if len(in.Controls) == 0 {
		return insufficientData(), nil
	}

	shrinkageElevated := func(in Input) bool {
		p, ok := in.Profile.(*dtos.RetailProfile)
		return ok && p.ShrinkageRate != nil && *p.ShrinkageRate >= elevatedShrinkage
	}
	cashHandling := func(in Input) bool {
		p, ok := in.Profile.(*dtos.RetailProfile)
		return ok && p.CashHandling != nil && *p.CashHandling
	}

	checklist := []checklistItem{
		{control: "CCTV Surveillance System", points: 15, reason: "No CCTV coverage of the sales floor and stockroom"},
		{control: "Alarm Monitoring Service", points: 15, reason: "Intrusion alarms are not centrally monitored"},
		{control: "Employee Theft Awareness Training", points: 15, reason: "Staff receive no theft awareness training"},
		{control: "Electronic Article Surveillance", points: 20, reason: "Shrinkage is elevated and merchandise carries no EAS tags", applies: shrinkageElevated},
		{control: "POS Camera Coverage", points: 15, reason: "Shrinkage is elevated and the POS lanes are not on camera", applies: shrinkageElevated},
		{control: "Cash Management Safe", points: 20, reason: "Cash is handled without a drop safe or time-delay safe", applies: cashHandling},
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

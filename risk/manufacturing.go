package risk

import "github.com/siteguard-sec/siteguard/dtos"

type manufacturingAdapter struct {
	catalog Catalog
}

func NewManufacturingAdapter(catalog Catalog) *manufacturingAdapter {
	return &manufacturingAdapter{catalog: catalog}
}

func (a *manufacturingAdapter) TemplateID() string { return dtos.TemplateManufacturing }

func (a *manufacturingAdapter) Score(in Input) (dtos.RiskReport, error) {
	if len(in.Controls) == 0 {
		return insufficientData(), nil
	}

	hazmat := func(in Input) bool {
		p, ok := in.Profile.(*dtos.ManufacturingProfile)
		return ok && p.HazardousMaterials != nil && *p.HazardousMaterials
	}
	continuous := func(in Input) bool {
		p, ok := in.Profile.(*dtos.ManufacturingProfile)
		return ok && p.ContinuousOperation != nil && *p.ContinuousOperation
	}

	checklist := []checklistItem{
		{control: "Perimeter Fencing", points: 15, reason: "Site perimeter is not fenced"},
		{control: "Vehicle Gate Control", points: 10, reason: "Vehicle gates are not controlled"},
		{control: "CCTV Surveillance System", points: 15, reason: "No CCTV coverage of the production floor and yard"},
		{control: "Production Area Access Control", points: 20, reason: "Production areas are not access controlled"},
		{control: "Inventory Tracking System", points: 15, reason: "Raw material and finished goods inventory is not tracked"},
		{control: "Hazardous Material Storage Security", points: 15, reason: "Hazardous materials are stored without dedicated security", applies: hazmat},
		{control: "Lone Worker Alarm System", points: 10, reason: "Continuous operation without a lone worker alarm system", applies: continuous},
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

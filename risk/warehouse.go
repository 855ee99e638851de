package risk

import "github.com/siteguard-sec/siteguard/dtos"

type warehouseAdapter struct {
	catalog Catalog
}

func NewWarehouseAdapter(catalog Catalog) *warehouseAdapter {
	return &warehouseAdapter{catalog: catalog}
}

func (a *warehouseAdapter) TemplateID() string { return dtos.TemplateWarehouse }

// Score inspects controls and, unlike most verticals, the facility survey:
// the early exit only applies when both are empty.
func (a *warehouseAdapter) Score(in Input) (dtos.RiskReport, error) {
	if len(in.Controls) == 0 && len(in.Survey) == 0 {
		return insufficientData(), nil
	}

	highValue := func(in Input) bool {
		p, ok := in.Profile.(*dtos.WarehouseProfile)
		return ok && p.HighValueGoods != nil && *p.HighValueGoods
	}
	thirdParty := func(in Input) bool {
		p, ok := in.Profile.(*dtos.WarehouseProfile)
		return ok && p.ThirdPartyDrivers != nil && *p.ThirdPartyDrivers
	}
	// survey answers gate dock penalties in: an unattended dock reported in
	// the walkthrough counts even when the profile is silent
	docksUnmonitored := func(in Input) bool {
		return in.Survey["dock_doors_monitored"] == "no"
	}

	checklist := []checklistItem{
		{control: "Perimeter Fencing", points: 15, reason: "Yard perimeter is not fenced"},
		{control: "CCTV Surveillance System", points: 15, reason: "No CCTV coverage of docks and storage aisles"},
		{control: "After-Hours Alarm System", points: 20, reason: "No intrusion alarm outside operating hours"},
		{control: "Inventory Cage for High-Value Goods", points: 20, reason: "High-value goods are stored outside a secured cage", applies: highValue},
		{control: "Driver Check-In Procedure", points: 15, reason: "Third-party drivers are not checked in or escorted", applies: thirdParty},
		{control: "Dock Door Alarm Sensors", points: 15, reason: "Walkthrough reports unmonitored dock doors without alarm sensors", applies: docksUnmonitored},
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

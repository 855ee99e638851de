package dtos

// TCORBreakdown is the annualized total-cost-of-risk estimate for a
// facility. It is recomputed on demand from the profile and never persisted.
// TotalAnnualExposure is always the plain sum of the five components.
type TCORBreakdown struct {
	DirectLoss          float64 `json:"directLoss"`
	TurnoverCost        float64 `json:"turnoverCost"`
	LiabilityCost       float64 `json:"liabilityCost"`
	IncidentCost        float64 `json:"incidentCost"`
	BrandDamageCost     float64 `json:"brandDamageCost"`
	TotalAnnualExposure float64 `json:"totalAnnualExposure"`
}

// Sum recomputes the total from the five components.
func (t TCORBreakdown) Sum() float64 {
	return t.DirectLoss + t.TurnoverCost + t.LiabilityCost + t.IncidentCost + t.BrandDamageCost
}

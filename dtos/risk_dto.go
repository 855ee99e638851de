package dtos

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "Low"
	RiskLevelMedium   RiskLevel = "Medium"
	RiskLevelHigh     RiskLevel = "High"
	RiskLevelCritical RiskLevel = "Critical"
)

// SubScore is a weighted component of a combined risk score, e.g. the
// violence vs. data-security split of the office vertical.
type SubScore struct {
	Name   string    `json:"name"`
	Score  int       `json:"score"`
	Level  RiskLevel `json:"level"`
	Weight float64   `json:"weight"`
}

// ComplianceReport is the datacenter-only compliance sub-scoring result.
// Score is independent of the risk score; Gaps lists every missing control
// as "<standard>: <control>".
type ComplianceReport struct {
	Score     int      `json:"score"`
	Standards []string `json:"standards"`
	Gaps      []string `json:"gaps"`
}

type RiskReport struct {
	RiskScore int       `json:"riskScore"`
	RiskLevel RiskLevel `json:"riskLevel"`
	Factors   []string  `json:"factors"`

	SubScores  []SubScore        `json:"subScores,omitempty"`
	Compliance *ComplianceReport `json:"compliance,omitempty"`
}

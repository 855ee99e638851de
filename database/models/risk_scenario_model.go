package models

import (
	"github.com/google/uuid"
	"github.com/siteguard-sec/siteguard/dtos"
)

// RiskScenario is a generated (and afterwards user-editable) risk scenario.
// InherentRisk is the raw T x V x I (x E) product on the vertical's own
// scale; ResidualRisk starts equal to it and only drops once the user
// assigns control effectiveness.
type RiskScenario struct {
	Model
	AssessmentID uuid.UUID `json:"assessmentId" gorm:"not null;type:uuid;index;"`
	Scenario     string    `json:"scenario" gorm:"type:text;not null;"`
	Asset        string    `json:"asset" gorm:"type:text;"`
	ThreatType   string    `json:"threatType" gorm:"type:text;"`

	LikelihoodScore      int    `json:"likelihoodScore" gorm:"type:integer;" validate:"min=1,max=5"`
	ImpactScore          int    `json:"impactScore" gorm:"type:integer;" validate:"min=1,max=5"`
	LikelihoodDescriptor string `json:"likelihoodDescriptor" gorm:"type:text;"`
	ImpactDescriptor     string `json:"impactDescriptor" gorm:"type:text;"`

	InherentRisk         float64        `json:"inherentRisk" gorm:"type:decimal(8,2);"`
	ControlEffectiveness float64        `json:"controlEffectiveness" gorm:"type:decimal(4,3);default:0;"` // [0,1)
	ResidualRisk         float64        `json:"residualRisk" gorm:"type:decimal(8,2);"`
	RiskLevel            dtos.RiskLevel `json:"riskLevel" gorm:"type:text;"`
}

func (m RiskScenario) TableName() string {
	return "risk_scenarios"
}

package models

import "github.com/google/uuid"

// TreatmentPlan is a drafted remediation step for one risk scenario or
// finding of an assessment.
type TreatmentPlan struct {
	Model
	AssessmentID   uuid.UUID  `json:"assessmentId" gorm:"not null;type:uuid;index;"`
	RiskScenarioID *uuid.UUID `json:"riskScenarioId" gorm:"type:uuid;"`
	Title          string     `json:"title" gorm:"type:text;not null;"`
	Description    string     `json:"description" gorm:"type:text;"`
	Priority       string     `json:"priority" gorm:"type:text;"`
	EstimatedCost  *float64   `json:"estimatedCost" gorm:"type:decimal(12,2);"`
	Status         string     `json:"status" gorm:"type:text;default:'open';"`
}

func (m TreatmentPlan) TableName() string {
	return "treatment_plans"
}

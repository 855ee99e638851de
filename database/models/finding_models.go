package models

import "github.com/google/uuid"

// The finding tables below are populated by the survey and reporting flows
// and only matter to this engine as members of the assessment delete
// cascade.

type RiskInsight struct {
	Model
	AssessmentID uuid.UUID `json:"assessmentId" gorm:"not null;type:uuid;index;"`
	Title        string    `json:"title" gorm:"type:text;"`
	Body         string    `json:"body" gorm:"type:text;"`
}

func (m RiskInsight) TableName() string {
	return "risk_insights"
}

type IdentifiedThreat struct {
	Model
	AssessmentID uuid.UUID `json:"assessmentId" gorm:"not null;type:uuid;index;"`
	Name         string    `json:"name" gorm:"type:text;not null;"`
	Category     string    `json:"category" gorm:"type:text;"`
	Notes        string    `json:"notes" gorm:"type:text;"`
}

func (m IdentifiedThreat) TableName() string {
	return "identified_threats"
}

type Vulnerability struct {
	Model
	AssessmentID uuid.UUID `json:"assessmentId" gorm:"not null;type:uuid;index;"`
	Name         string    `json:"name" gorm:"type:text;not null;"`
	Location     string    `json:"location" gorm:"type:text;"`
	Severity     string    `json:"severity" gorm:"type:text;"`
}

func (m Vulnerability) TableName() string {
	return "vulnerabilities"
}

type Report struct {
	Model
	AssessmentID uuid.UUID `json:"assessmentId" gorm:"not null;type:uuid;index;"`
	Title        string    `json:"title" gorm:"type:text;"`
	Content      string    `json:"content" gorm:"type:text;"`
	Format       string    `json:"format" gorm:"type:text;default:'markdown';"`
}

func (m Report) TableName() string {
	return "reports"
}

package models

import "github.com/google/uuid"

type ControlType string

const (
	ControlTypeExisting ControlType = "existing"
	ControlTypeProposed ControlType = "proposed"
)

// Control is an assessment-scoped security measure as entered by the user.
// Scoring consumes controls but never mutates them.
type Control struct {
	Model
	AssessmentID  uuid.UUID   `json:"assessmentId" gorm:"not null;type:uuid;index;"`
	Name          string      `json:"name" gorm:"type:text;not null;" validate:"required"`
	Description   string      `json:"description" gorm:"type:text;"`
	ControlType   ControlType `json:"controlType" gorm:"type:text;default:'existing';not null;"`
	Effectiveness *int        `json:"effectiveness" gorm:"type:integer;" validate:"omitempty,min=1,max=5"`
}

func (m Control) TableName() string {
	return "controls"
}

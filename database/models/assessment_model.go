package models

import (
	"github.com/google/uuid"
	"github.com/siteguard-sec/siteguard/dtos"
	"gorm.io/datatypes"
)

type AssessmentStatus string

const (
	AssessmentStatusDraft      AssessmentStatus = "draft"
	AssessmentStatusInProgress AssessmentStatus = "in-progress"
	AssessmentStatusScored     AssessmentStatus = "scored"
	AssessmentStatusCompleted  AssessmentStatus = "completed"
)

// Assessment is one facility being assessed. TemplateID selects the
// vertical; Profile is the raw per-vertical blob decoded through
// dtos.DecodeProfile. RiskLevel is a derived cache written back by the
// scoring service.
type Assessment struct {
	Model
	Name           string           `json:"name" gorm:"type:text;not null;"`
	Slug           string           `json:"slug" gorm:"type:text;uniqueIndex:idx_assessment_org_slug;not null;"`
	OrganizationID uuid.UUID        `json:"organizationId" gorm:"uniqueIndex:idx_assessment_org_slug;not null;type:uuid;"`
	TemplateID     string           `json:"templateId" gorm:"type:text;not null;" validate:"required"`
	Profile        datatypes.JSON   `json:"profile" gorm:"type:jsonb"`
	Status         AssessmentStatus `json:"status" gorm:"type:text;default:'draft';not null;"`
	RiskLevel      *dtos.RiskLevel  `json:"riskLevel" gorm:"type:text;"`
	RiskScore      *int             `json:"riskScore" gorm:"type:integer;"`
}

func (m Assessment) TableName() string {
	return "assessments"
}

// DecodedProfile decodes the profile blob into the variant declared by the
// template id.
func (m Assessment) DecodedProfile() (dtos.Profile, error) {
	return dtos.DecodeProfile(m.TemplateID, m.Profile)
}

func (m *Assessment) GetSlug() string {
	return m.Slug
}

func (m *Assessment) SetSlug(slug string) {
	m.Slug = slug
}

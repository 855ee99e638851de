package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FacilitySurveyQuestion is one answered question of the on-site facility
// survey. EvidenceFiles holds object-store paths of uploaded evidence; the
// files are cleaned up after the owning assessment is deleted.
type FacilitySurveyQuestion struct {
	Model
	AssessmentID  uuid.UUID                   `json:"assessmentId" gorm:"not null;type:uuid;index;"`
	Section       string                      `json:"section" gorm:"type:text;"`
	QuestionKey   string                      `json:"questionKey" gorm:"type:text;not null;"`
	Question      string                      `json:"question" gorm:"type:text;"`
	Answer        string                      `json:"answer" gorm:"type:text;"`
	SortOrder     int                         `json:"sortOrder" gorm:"type:integer;default:0;"`
	EvidenceFiles datatypes.JSONSlice[string] `json:"evidenceFiles" gorm:"type:jsonb"`
}

func (m FacilitySurveyQuestion) TableName() string {
	return "facility_survey_questions"
}

// AssessmentQuestion is a question of the structured assessment
// questionnaire (as opposed to the free-form facility survey).
type AssessmentQuestion struct {
	Model
	AssessmentID  uuid.UUID                   `json:"assessmentId" gorm:"not null;type:uuid;index;"`
	Category      string                      `json:"category" gorm:"type:text;"`
	QuestionKey   string                      `json:"questionKey" gorm:"type:text;not null;"`
	Question      string                      `json:"question" gorm:"type:text;"`
	Answer        string                      `json:"answer" gorm:"type:text;"`
	EvidenceFiles datatypes.JSONSlice[string] `json:"evidenceFiles" gorm:"type:jsonb"`
}

func (m AssessmentQuestion) TableName() string {
	return "assessment_questions"
}

type InterviewResponse struct {
	Model
	AssessmentID uuid.UUID `json:"assessmentId" gorm:"not null;type:uuid;index;"`
	Interviewee  string    `json:"interviewee" gorm:"type:text;"`
	Role         string    `json:"role" gorm:"type:text;"`
	Question     string    `json:"question" gorm:"type:text;"`
	Response     string    `json:"response" gorm:"type:text;"`
}

func (m InterviewResponse) TableName() string {
	return "interview_responses"
}

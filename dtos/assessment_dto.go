package dtos

import "encoding/json"

type AssessmentCreateRequest struct {
	Name       string          `json:"name" validate:"required"`
	TemplateID string          `json:"templateId" validate:"required"`
	Profile    json.RawMessage `json:"profile"`
}

type ControlUpsertRequest struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	ControlType   string `json:"controlType" validate:"omitempty,oneof=existing proposed"`
	Effectiveness *int   `json:"effectiveness" validate:"omitempty,min=1,max=5"`
}

type TreatmentPlanUpsertRequest struct {
	RiskScenarioID *string  `json:"riskScenarioId" validate:"omitempty,uuid"`
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description"`
	Priority       string   `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	EstimatedCost  *float64 `json:"estimatedCost"`
	Status         string   `json:"status"`
}

type SurveyAnswerRequest struct {
	Section       string   `json:"section"`
	QuestionKey   string   `json:"questionKey" validate:"required"`
	Question      string   `json:"question"`
	Answer        string   `json:"answer"`
	SortOrder     int      `json:"sortOrder"`
	EvidenceFiles []string `json:"evidenceFiles"`
}

type QuestionnaireAnswerRequest struct {
	Category      string   `json:"category"`
	QuestionKey   string   `json:"questionKey" validate:"required"`
	Question      string   `json:"question"`
	Answer        string   `json:"answer"`
	EvidenceFiles []string `json:"evidenceFiles"`
}

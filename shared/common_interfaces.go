// Copyright (C) 2025 siteguard-sec
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import (
	"github.com/google/uuid"
	"github.com/siteguard-sec/siteguard/database/models"
	"github.com/siteguard-sec/siteguard/dtos"
	"github.com/siteguard-sec/siteguard/utils"
)

// The store offers no cross-statement transactions to its callers: every
// repository method is an independent statement. The tx parameter only
// scopes single-table batch statements, never multi-table sequences; the
// services compensate with ordered deletes and create-before-delete.

type AssessmentRepository interface {
	utils.Repository[uuid.UUID, models.Assessment, DB]
	ReadBySlug(organizationID uuid.UUID, slug string) (models.Assessment, error)
	GetByOrganizationID(organizationID uuid.UUID) ([]models.Assessment, error)
	UpdateRiskCache(tx DB, assessmentID uuid.UUID, level dtos.RiskLevel, score int, status models.AssessmentStatus) error
}

type ControlRepository interface {
	utils.Repository[uuid.UUID, models.Control, DB]
	GetByAssessmentID(assessmentID uuid.UUID) ([]models.Control, error)
	DeleteByAssessmentID(tx DB, assessmentID uuid.UUID) error
}

type RiskScenarioRepository interface {
	utils.Repository[uuid.UUID, models.RiskScenario, DB]
	GetByAssessmentID(assessmentID uuid.UUID) ([]models.RiskScenario, error)
	DeleteByAssessmentID(tx DB, assessmentID uuid.UUID) error
	DeleteByNamesExcluding(tx DB, assessmentID uuid.UUID, names []string, excludeIDs []uuid.UUID) error
}

type ControlLibraryRepository interface {
	utils.Repository[uuid.UUID, models.ControlLibraryEntry, DB]
	FindByName(name string) (models.ControlLibraryEntry, error)
	UpsertByName(tx DB, entries []models.ControlLibraryEntry) error
}

type ThreatLibraryRepository interface {
	utils.Repository[uuid.UUID, models.ThreatLibraryEntry, DB]
	FindByName(name string) (models.ThreatLibraryEntry, error)
	UpsertByName(tx DB, entries []models.ThreatLibraryEntry) error
}

type FacilitySurveyQuestionRepository interface {
	utils.Repository[uuid.UUID, models.FacilitySurveyQuestion, DB]
	GetByAssessmentID(assessmentID uuid.UUID) ([]models.FacilitySurveyQuestion, error)
	DeleteByAssessmentID(tx DB, assessmentID uuid.UUID) error
	UpsertByQuestionKey(tx DB, questions []models.FacilitySurveyQuestion) error
}

type AssessmentQuestionRepository interface {
	utils.Repository[uuid.UUID, models.AssessmentQuestion, DB]
	GetByAssessmentID(assessmentID uuid.UUID) ([]models.AssessmentQuestion, error)
	DeleteByAssessmentID(tx DB, assessmentID uuid.UUID) error
	UpsertByQuestionKey(tx DB, questions []models.AssessmentQuestion) error
}

type TreatmentPlanRepository interface {
	utils.Repository[uuid.UUID, models.TreatmentPlan, DB]
	GetByAssessmentID(assessmentID uuid.UUID) ([]models.TreatmentPlan, error)
	DeleteByAssessmentID(tx DB, assessmentID uuid.UUID) error
}

// AssessmentChildRepository is the minimal surface the delete cascade needs
// from the remaining child tables.
type AssessmentChildRepository interface {
	DeleteByAssessmentID(tx DB, assessmentID uuid.UUID) error
}

// EvidenceStore is the object-store surface used by evidence cleanup.
// Delete fails with evidence.ErrNotFound if the path is absent.
type EvidenceStore interface {
	Delete(path string) error
}

type LibraryService interface {
	HasCanonicalControl(name string) (bool, error)
	HasCanonicalThreat(name string) (bool, error)
	SeedLibraries(controls []models.ControlLibraryEntry, threats []models.ThreatLibraryEntry) error
}

type AssessmentService interface {
	Create(organizationID uuid.UUID, name, templateID string, profile []byte) (models.Assessment, error)
	Read(assessmentID uuid.UUID) (models.Assessment, error)
	GetByOrganizationID(organizationID uuid.UUID) ([]models.Assessment, error)
	Delete(assessmentID uuid.UUID) error
}

type ScoringService interface {
	ScoreAssessment(assessmentID uuid.UUID) (dtos.RiskReport, error)
	CalculateTCOR(assessmentID uuid.UUID) (dtos.TCORBreakdown, error)
}

type ScenarioService interface {
	Regenerate(assessmentID uuid.UUID) ([]models.RiskScenario, error)
	GetByAssessmentID(assessmentID uuid.UUID) ([]models.RiskScenario, error)
}

type ConsistencyService interface {
	ReplaceControls(assessmentID uuid.UUID, controls []models.Control) error
	ReplaceTreatmentPlans(assessmentID uuid.UUID, plans []models.TreatmentPlan) error
	UpsertSurveyAnswers(assessmentID uuid.UUID, questions []models.FacilitySurveyQuestion) error
	UpsertQuestionnaireAnswers(assessmentID uuid.UUID, questions []models.AssessmentQuestion) error
}

type ScenarioGenerator interface {
	TemplateID() string
	// Generate returns zero or more candidate scenarios; zero activated
	// scenarios is a valid outcome, not an error.
	Generate(assessmentID uuid.UUID, profile dtos.Profile, survey map[string]string) ([]models.RiskScenario, error)
	// ScenarioNames lists every scenario name this generator can produce.
	// Regeneration uses it to clear previous generator output.
	ScenarioNames() []string
}

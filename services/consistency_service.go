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

package services

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/siteguard-sec/siteguard/database/models"
	"github.com/siteguard-sec/siteguard/shared"
)

// ReplaceableRepository is the surface replace-upsert needs from a
// per-assessment child table.
type ReplaceableRepository[T any] interface {
	DeleteByAssessmentID(tx shared.DB, assessmentID uuid.UUID) error
	CreateBatch(tx shared.DB, ts []T) error
}

// ReplaceCollection swaps the full child collection of an assessment:
// delete everything, then insert the submitted rows. An empty submission
// is a valid "clear the collection" request. The two statements are not
// atomic; a crash between them loses the old rows without writing the new
// ones, which the edit flow tolerates because the client resubmits the
// full collection.
func ReplaceCollection[T any](repo ReplaceableRepository[T], assessmentID uuid.UUID, items []T) error {
	if err := repo.DeleteByAssessmentID(nil, assessmentID); err != nil {
		return fmt.Errorf("could not delete existing collection: %v", err)
	}
	if len(items) == 0 {
		return nil
	}
	if err := repo.CreateBatch(nil, items); err != nil {
		return fmt.Errorf("could not insert replacement collection: %v", err)
	}
	return nil
}

// consistencyService keeps the per-assessment child collections in a
// consistent shape across edits: full collections are replaced wholesale,
// keyed questionnaire answers are upserted per item.
type consistencyService struct {
	controlRepository            shared.ControlRepository
	treatmentPlanRepository      shared.TreatmentPlanRepository
	surveyRepository             shared.FacilitySurveyQuestionRepository
	assessmentQuestionRepository shared.AssessmentQuestionRepository
}

func NewConsistencyService(controlRepository shared.ControlRepository, treatmentPlanRepository shared.TreatmentPlanRepository, surveyRepository shared.FacilitySurveyQuestionRepository, assessmentQuestionRepository shared.AssessmentQuestionRepository) *consistencyService {
	return &consistencyService{
		controlRepository:            controlRepository,
		treatmentPlanRepository:      treatmentPlanRepository,
		surveyRepository:             surveyRepository,
		assessmentQuestionRepository: assessmentQuestionRepository,
	}
}

func (s *consistencyService) ReplaceControls(assessmentID uuid.UUID, controls []models.Control) error {
	for i := range controls {
		controls[i].AssessmentID = assessmentID
	}
	if err := ReplaceCollection(s.controlRepository, assessmentID, controls); err != nil {
		return fmt.Errorf("could not replace controls: %v", err)
	}
	slog.Info("replaced controls", "assessmentId", assessmentID, "count", len(controls))
	return nil
}

func (s *consistencyService) ReplaceTreatmentPlans(assessmentID uuid.UUID, plans []models.TreatmentPlan) error {
	for i := range plans {
		plans[i].AssessmentID = assessmentID
	}
	if err := ReplaceCollection(s.treatmentPlanRepository, assessmentID, plans); err != nil {
		return fmt.Errorf("could not replace treatment plans: %v", err)
	}
	slog.Info("replaced treatment plans", "assessmentId", assessmentID, "count", len(plans))
	return nil
}

// UpsertSurveyAnswers writes facility survey answers keyed by question
// key. Unlike the full collections above, survey answers arrive
// incrementally as the walkthrough progresses, so absent keys are left
// untouched.
func (s *consistencyService) UpsertSurveyAnswers(assessmentID uuid.UUID, questions []models.FacilitySurveyQuestion) error {
	for i := range questions {
		questions[i].AssessmentID = assessmentID
	}
	if err := s.surveyRepository.UpsertByQuestionKey(nil, questions); err != nil {
		return fmt.Errorf("could not upsert survey answers: %v", err)
	}
	return nil
}

func (s *consistencyService) UpsertQuestionnaireAnswers(assessmentID uuid.UUID, questions []models.AssessmentQuestion) error {
	for i := range questions {
		questions[i].AssessmentID = assessmentID
	}
	if err := s.assessmentQuestionRepository.UpsertByQuestionKey(nil, questions); err != nil {
		return fmt.Errorf("could not upsert questionnaire answers: %v", err)
	}
	return nil
}

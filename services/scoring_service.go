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
	"github.com/pkg/errors"
	"github.com/siteguard-sec/siteguard/database/models"
	"github.com/siteguard-sec/siteguard/dtos"
	"github.com/siteguard-sec/siteguard/risk"
	"github.com/siteguard-sec/siteguard/shared"
	"github.com/siteguard-sec/siteguard/tcor"
)

type scoringService struct {
	assessmentRepository shared.AssessmentRepository
	controlRepository    shared.ControlRepository
	surveyRepository     shared.FacilitySurveyQuestionRepository
	catalog              risk.Catalog
}

func NewScoringService(assessmentRepository shared.AssessmentRepository, controlRepository shared.ControlRepository, surveyRepository shared.FacilitySurveyQuestionRepository, catalog risk.Catalog) *scoringService {
	return &scoringService{
		assessmentRepository: assessmentRepository,
		controlRepository:    controlRepository,
		surveyRepository:     surveyRepository,
		catalog:              catalog,
	}
}

// surveyAnswers flattens the facility survey rows into question-key ->
// answer lookups for the adapters and generators.
func surveyAnswers(questions []models.FacilitySurveyQuestion) map[string]string {
	answers := make(map[string]string, len(questions))
	for _, q := range questions {
		answers[q.QuestionKey] = q.Answer
	}
	return answers
}

// ScoreAssessment runs the vertical scoring adapter for an assessment and
// writes the derived risk level and score back onto the assessment row.
func (s *scoringService) ScoreAssessment(assessmentID uuid.UUID) (dtos.RiskReport, error) {
	assessment, err := s.assessmentRepository.Read(assessmentID)
	if err != nil {
		return dtos.RiskReport{}, errors.Wrap(err, "could not read assessment")
	}

	profile, err := assessment.DecodedProfile()
	if err != nil {
		return dtos.RiskReport{}, fmt.Errorf("could not decode profile: %v", err)
	}

	controls, err := s.controlRepository.GetByAssessmentID(assessmentID)
	if err != nil {
		return dtos.RiskReport{}, fmt.Errorf("could not load controls: %v", err)
	}

	surveyQuestions, err := s.surveyRepository.GetByAssessmentID(assessmentID)
	if err != nil {
		return dtos.RiskReport{}, fmt.Errorf("could not load facility survey: %v", err)
	}

	adapter, err := risk.ForTemplate(assessment.TemplateID, s.catalog)
	if err != nil {
		return dtos.RiskReport{}, err
	}

	report, err := adapter.Score(risk.Input{
		Assessment: assessment,
		Profile:    profile,
		Controls:   controls,
		Survey:     surveyAnswers(surveyQuestions),
	})
	if err != nil {
		return dtos.RiskReport{}, errors.Wrap(err, "could not score assessment")
	}

	if err := s.assessmentRepository.UpdateRiskCache(nil, assessmentID, report.RiskLevel, report.RiskScore, models.AssessmentStatusScored); err != nil {
		return dtos.RiskReport{}, fmt.Errorf("could not update risk cache: %v", err)
	}

	slog.Info("scored assessment", "assessmentId", assessmentID, "templateId", assessment.TemplateID, "riskScore", report.RiskScore, "riskLevel", report.RiskLevel)
	return report, nil
}

// CalculateTCOR computes the total cost of risk breakdown for an
// assessment. Purely derived from the profile; nothing is persisted.
func (s *scoringService) CalculateTCOR(assessmentID uuid.UUID) (dtos.TCORBreakdown, error) {
	assessment, err := s.assessmentRepository.Read(assessmentID)
	if err != nil {
		return dtos.TCORBreakdown{}, errors.Wrap(err, "could not read assessment")
	}

	profile, err := assessment.DecodedProfile()
	if err != nil {
		return dtos.TCORBreakdown{}, fmt.Errorf("could not decode profile: %v", err)
	}

	return tcor.Calculate(profile)
}

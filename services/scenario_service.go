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
	"github.com/siteguard-sec/siteguard/scenario"
	"github.com/siteguard-sec/siteguard/shared"
	"github.com/siteguard-sec/siteguard/utils"
)

// ErrUnknownThreat marks a generated scenario referencing a threat type
// that is missing from the seeded threat library. Like a control lookup
// failure this is a broken seed mapping and aborts regeneration before
// anything is written.
var ErrUnknownThreat = errors.New("threat type not found in library")

// ThreatCatalog answers whether a canonical threat name exists in the
// seeded threat library.
type ThreatCatalog interface {
	HasCanonicalThreat(name string) (bool, error)
}

type scenarioService struct {
	assessmentRepository   shared.AssessmentRepository
	riskScenarioRepository shared.RiskScenarioRepository
	surveyRepository       shared.FacilitySurveyQuestionRepository
	threatCatalog          ThreatCatalog
}

func NewScenarioService(assessmentRepository shared.AssessmentRepository, riskScenarioRepository shared.RiskScenarioRepository, surveyRepository shared.FacilitySurveyQuestionRepository, threatCatalog ThreatCatalog) *scenarioService {
	return &scenarioService{
		assessmentRepository:   assessmentRepository,
		riskScenarioRepository: riskScenarioRepository,
		surveyRepository:       surveyRepository,
		threatCatalog:          threatCatalog,
	}
}

// Regenerate rebuilds the generated risk scenarios for an assessment.
//
// New scenarios are created BEFORE previous generator output is removed:
// a failure mid-way must never leave the assessment with fewer scenarios
// than it started with. On a partial create failure the already created
// rows are removed best-effort and the original set stays in place.
// Manually authored scenarios are never touched - the cleanup is scoped
// to the names this generator produces, excluding the rows just created.
func (s *scenarioService) Regenerate(assessmentID uuid.UUID) ([]models.RiskScenario, error) {
	assessment, err := s.assessmentRepository.Read(assessmentID)
	if err != nil {
		return nil, errors.Wrap(err, "could not read assessment")
	}

	profile, err := assessment.DecodedProfile()
	if err != nil {
		return nil, fmt.Errorf("could not decode profile: %v", err)
	}

	generator, err := scenario.ForTemplate(assessment.TemplateID)
	if err != nil {
		return nil, err
	}

	surveyQuestions, err := s.surveyRepository.GetByAssessmentID(assessmentID)
	if err != nil {
		return nil, fmt.Errorf("could not load facility survey: %v", err)
	}

	candidates, err := generator.Generate(assessmentID, profile, surveyAnswers(surveyQuestions))
	if err != nil {
		return nil, fmt.Errorf("could not generate scenarios: %v", err)
	}

	// validate before writing anything
	for _, c := range candidates {
		ok, err := s.threatCatalog.HasCanonicalThreat(c.ThreatType)
		if err != nil {
			return nil, fmt.Errorf("could not look up threat type %q: %v", c.ThreatType, err)
		}
		if !ok {
			return nil, errors.Wrapf(ErrUnknownThreat, "threat type %q in scenario %q", c.ThreatType, c.Scenario)
		}
	}

	if len(candidates) == 0 {
		slog.Info("no scenarios met generation criteria", "assessmentId", assessmentID, "templateId", assessment.TemplateID)
	}

	created := make([]models.RiskScenario, 0, len(candidates))
	for i := range candidates {
		// assign the id client-side so rollback does not depend on the row
		// making it back from the store
		candidates[i].ID = uuid.New()
		if err := s.riskScenarioRepository.Create(nil, &candidates[i]); err != nil {
			s.rollbackCreated(created)
			return nil, fmt.Errorf("could not create scenario %q: %v", candidates[i].Scenario, err)
		}
		created = append(created, candidates[i])
	}

	createdIDs := utils.Map(created, func(sc models.RiskScenario) uuid.UUID { return sc.ID })
	if err := s.riskScenarioRepository.DeleteByNamesExcluding(nil, assessmentID, generator.ScenarioNames(), createdIDs); err != nil {
		// the new set is in place; stale duplicates are the lesser evil
		slog.Error("could not remove previous generated scenarios", "assessmentId", assessmentID, "err", err)
		return created, fmt.Errorf("could not remove previous generated scenarios: %v", err)
	}

	slog.Info("regenerated scenarios", "assessmentId", assessmentID, "count", len(created))
	return created, nil
}

func (s *scenarioService) rollbackCreated(created []models.RiskScenario) {
	for _, sc := range created {
		if err := s.riskScenarioRepository.Delete(nil, sc.ID); err != nil {
			slog.Error("could not roll back created scenario", "scenarioId", sc.ID, "scenario", sc.Scenario, "err", err)
		}
	}
}

// GetByAssessmentID lists the stored scenarios of an assessment, generated
// and manually authored alike.
func (s *scenarioService) GetByAssessmentID(assessmentID uuid.UUID) ([]models.RiskScenario, error) {
	return s.riskScenarioRepository.GetByAssessmentID(assessmentID)
}

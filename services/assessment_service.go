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
	"github.com/siteguard-sec/siteguard/evidence"
	"github.com/siteguard-sec/siteguard/shared"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type assessmentService struct {
	assessmentRepository shared.AssessmentRepository
	surveyRepository     shared.FacilitySurveyQuestionRepository
	questionRepository   shared.AssessmentQuestionRepository
	evidenceStore        shared.EvidenceStore

	// deletion order matters: referencing tables first, the assessment
	// row last
	cascade []cascadeStep
}

type cascadeStep struct {
	name string
	repo shared.AssessmentChildRepository
}

func NewAssessmentService(
	assessmentRepository shared.AssessmentRepository,
	controlRepository shared.ControlRepository,
	treatmentPlanRepository shared.TreatmentPlanRepository,
	riskInsightRepository shared.AssessmentChildRepository,
	identifiedThreatRepository shared.AssessmentChildRepository,
	vulnerabilityRepository shared.AssessmentChildRepository,
	riskScenarioRepository shared.RiskScenarioRepository,
	reportRepository shared.AssessmentChildRepository,
	surveyRepository shared.FacilitySurveyQuestionRepository,
	questionRepository shared.AssessmentQuestionRepository,
	interviewResponseRepository shared.AssessmentChildRepository,
	evidenceStore shared.EvidenceStore,
) *assessmentService {
	return &assessmentService{
		assessmentRepository: assessmentRepository,
		surveyRepository:     surveyRepository,
		questionRepository:   questionRepository,
		evidenceStore:        evidenceStore,
		cascade: []cascadeStep{
			{"controls", controlRepository},
			{"treatment plans", treatmentPlanRepository},
			{"risk insights", riskInsightRepository},
			{"identified threats", identifiedThreatRepository},
			{"vulnerabilities", vulnerabilityRepository},
			{"risk scenarios", riskScenarioRepository},
			{"reports", reportRepository},
			{"facility survey questions", surveyRepository},
			{"assessment questions", questionRepository},
			{"interview responses", interviewResponseRepository},
		},
	}
}

// Create validates the profile blob against the declared template and
// stores the assessment. The blob is kept raw; it is decoded again on
// every read through the template id.
func (s *assessmentService) Create(organizationID uuid.UUID, name, templateID string, profile []byte) (models.Assessment, error) {
	if _, err := dtos.DecodeProfile(templateID, profile); err != nil {
		return models.Assessment{}, err
	}

	assessment := models.Assessment{
		Name:           name,
		OrganizationID: organizationID,
		TemplateID:     templateID,
		Profile:        datatypes.JSON(profile),
		Status:         models.AssessmentStatusDraft,
	}
	if err := s.assessmentRepository.Create(nil, &assessment); err != nil {
		return models.Assessment{}, fmt.Errorf("could not create assessment: %v", err)
	}
	return assessment, nil
}

func (s *assessmentService) Read(assessmentID uuid.UUID) (models.Assessment, error) {
	return s.assessmentRepository.Read(assessmentID)
}

func (s *assessmentService) GetByOrganizationID(organizationID uuid.UUID) ([]models.Assessment, error) {
	return s.assessmentRepository.GetByOrganizationID(organizationID)
}

// Delete removes an assessment and everything hanging off it.
//
// Evidence paths are collected up front because the survey rows are gone
// by the time files can be removed. The database deletes run in
// referencing-tables-first order; a failure stops the cascade and leaves
// the remaining rows in place, so a retry of the whole delete converges.
// Evidence files are only touched after every database delete succeeded -
// losing files while rows still reference them is the worse failure mode.
func (s *assessmentService) Delete(assessmentID uuid.UUID) error {
	if _, err := s.assessmentRepository.Read(assessmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// already gone; the delete is satisfied
			return nil
		}
		return fmt.Errorf("could not read assessment: %v", err)
	}

	evidencePaths, err := s.collectEvidencePaths(assessmentID)
	if err != nil {
		return fmt.Errorf("could not collect evidence paths: %v", err)
	}

	for _, step := range s.cascade {
		if err := step.repo.DeleteByAssessmentID(nil, assessmentID); err != nil {
			return fmt.Errorf("could not delete %s: %v", step.name, err)
		}
	}

	if err := s.assessmentRepository.Delete(nil, assessmentID); err != nil {
		return fmt.Errorf("could not delete assessment: %v", err)
	}

	s.deleteEvidenceFiles(assessmentID, evidencePaths)

	slog.Info("deleted assessment", "assessmentId", assessmentID, "evidenceFiles", len(evidencePaths))
	return nil
}

func (s *assessmentService) collectEvidencePaths(assessmentID uuid.UUID) ([]string, error) {
	paths := []string{}

	surveyQuestions, err := s.surveyRepository.GetByAssessmentID(assessmentID)
	if err != nil {
		return nil, err
	}
	for _, q := range surveyQuestions {
		paths = append(paths, q.EvidenceFiles...)
	}

	questions, err := s.questionRepository.GetByAssessmentID(assessmentID)
	if err != nil {
		return nil, err
	}
	for _, q := range questions {
		paths = append(paths, q.EvidenceFiles...)
	}

	return paths, nil
}

// deleteEvidenceFiles is best-effort: the rows referencing these files are
// already gone, so a failed file delete only leaks storage. Absent files
// count as already cleaned up.
func (s *assessmentService) deleteEvidenceFiles(assessmentID uuid.UUID, paths []string) {
	for _, path := range paths {
		err := s.evidenceStore.Delete(path)
		if err == nil || errors.Is(err, evidence.ErrNotFound) {
			continue
		}
		slog.Error("could not delete evidence file", "assessmentId", assessmentID, "path", path, "err", err)
	}
}

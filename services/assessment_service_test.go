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
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/siteguard-sec/siteguard/database/models"
	"github.com/siteguard-sec/siteguard/evidence"
	"github.com/siteguard-sec/siteguard/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// recordingChild appends its step name to a shared log on every delete so
// the tests can assert cascade ordering.
type recordingChild struct {
	step string
	log  *[]string
	err  error
}

func (r recordingChild) DeleteByAssessmentID(tx shared.DB, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	*r.log = append(*r.log, r.step)
	return nil
}

type recordingControlRepository struct {
	stubRepository[models.Control]
	recordingChild
}

func (recordingControlRepository) GetByAssessmentID(uuid.UUID) ([]models.Control, error) {
	return nil, nil
}

type recordingTreatmentPlanRepository struct {
	stubRepository[models.TreatmentPlan]
	recordingChild
}

func (recordingTreatmentPlanRepository) GetByAssessmentID(uuid.UUID) ([]models.TreatmentPlan, error) {
	return nil, nil
}

type recordingScenarioRepository struct {
	stubRepository[models.RiskScenario]
	recordingChild
}

func (recordingScenarioRepository) GetByAssessmentID(uuid.UUID) ([]models.RiskScenario, error) {
	return nil, nil
}

func (recordingScenarioRepository) DeleteByNamesExcluding(tx shared.DB, assessmentID uuid.UUID, names []string, excludeIDs []uuid.UUID) error {
	return nil
}

type recordingSurveyRepository struct {
	stubRepository[models.FacilitySurveyQuestion]
	recordingChild
	questions []models.FacilitySurveyQuestion
}

func (r recordingSurveyRepository) GetByAssessmentID(uuid.UUID) ([]models.FacilitySurveyQuestion, error) {
	return r.questions, nil
}

func (recordingSurveyRepository) UpsertByQuestionKey(tx shared.DB, questions []models.FacilitySurveyQuestion) error {
	return nil
}

type recordingQuestionRepository struct {
	stubRepository[models.AssessmentQuestion]
	recordingChild
	questions []models.AssessmentQuestion
}

func (r recordingQuestionRepository) GetByAssessmentID(uuid.UUID) ([]models.AssessmentQuestion, error) {
	return r.questions, nil
}

func (recordingQuestionRepository) UpsertByQuestionKey(tx shared.DB, questions []models.AssessmentQuestion) error {
	return nil
}

type cascadeAssessmentRepository struct {
	fakeAssessmentRepository
	log       *[]string
	deleteErr error
}

func (c *cascadeAssessmentRepository) Delete(tx shared.DB, id uuid.UUID) error {
	if c.deleteErr != nil {
		return c.deleteErr
	}
	*c.log = append(*c.log, "assessment")
	return nil
}

type fakeEvidenceStore struct {
	deleted  []string
	notFound map[string]bool
	failing  map[string]bool
}

func (f *fakeEvidenceStore) Delete(path string) error {
	if f.notFound[path] {
		return evidence.ErrNotFound
	}
	if f.failing[path] {
		return errors.New("permission denied")
	}
	f.deleted = append(f.deleted, path)
	return nil
}

type cascadeFixture struct {
	service *assessmentService
	log     []string
	store   *fakeEvidenceStore
}

func newCascadeFixture(t *testing.T, failStep string) *cascadeFixture {
	f := &cascadeFixture{store: &fakeEvidenceStore{notFound: map[string]bool{"survey/gone.pdf": true}}}

	child := func(step string) recordingChild {
		c := recordingChild{step: step, log: &f.log}
		if step == failStep {
			c.err = errors.New("referential integrity violation")
		}
		return c
	}

	surveyRepository := recordingSurveyRepository{
		recordingChild: child("facility survey questions"),
		questions: []models.FacilitySurveyQuestion{
			{QuestionKey: "yard_gated", EvidenceFiles: datatypes.JSONSlice[string]{"survey/yard-gate.jpg", "survey/gone.pdf"}},
		},
	}
	questionRepository := recordingQuestionRepository{
		recordingChild: child("assessment questions"),
		questions: []models.AssessmentQuestion{
			{QuestionKey: "access_policy", EvidenceFiles: datatypes.JSONSlice[string]{"questions/policy.pdf"}},
		},
	}

	f.service = NewAssessmentService(
		&cascadeAssessmentRepository{log: &f.log},
		recordingControlRepository{recordingChild: child("controls")},
		recordingTreatmentPlanRepository{recordingChild: child("treatment plans")},
		child("risk insights"),
		child("identified threats"),
		child("vulnerabilities"),
		recordingScenarioRepository{recordingChild: child("risk scenarios")},
		child("reports"),
		surveyRepository,
		questionRepository,
		child("interview responses"),
		f.store,
	)
	return f
}

func TestAssessmentServiceDelete(t *testing.T) {
	t.Run("deletes children in order, the assessment last, then evidence", func(t *testing.T) {
		f := newCascadeFixture(t, "")
		err := f.service.Delete(uuid.New())
		require.NoError(t, err)

		assert.Equal(t, []string{
			"controls",
			"treatment plans",
			"risk insights",
			"identified threats",
			"vulnerabilities",
			"risk scenarios",
			"reports",
			"facility survey questions",
			"assessment questions",
			"interview responses",
			"assessment",
		}, f.log)

		// the absent file is tolerated, the others are removed
		assert.ElementsMatch(t, []string{"survey/yard-gate.jpg", "questions/policy.pdf"}, f.store.deleted)
	})

	t.Run("a failing step stops the cascade and spares the files", func(t *testing.T) {
		f := newCascadeFixture(t, "vulnerabilities")
		err := f.service.Delete(uuid.New())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vulnerabilities")

		// nothing after the failing step ran
		assert.Equal(t, []string{"controls", "treatment plans", "risk insights", "identified threats"}, f.log)
		assert.Empty(t, f.store.deleted)
	})

	t.Run("an unreadable evidence file does not fail the delete", func(t *testing.T) {
		f := newCascadeFixture(t, "")
		f.store.failing = map[string]bool{"questions/policy.pdf": true}

		err := f.service.Delete(uuid.New())
		require.NoError(t, err)
		assert.Equal(t, []string{"survey/yard-gate.jpg"}, f.store.deleted)
	})

	t.Run("deleting an absent assessment is already satisfied", func(t *testing.T) {
		f := newCascadeFixture(t, "")
		repo := &cascadeAssessmentRepository{log: &f.log}
		repo.readErr = gorm.ErrRecordNotFound

		service := NewAssessmentService(repo, recordingControlRepository{recordingChild: recordingChild{step: "controls", log: &f.log}},
			recordingTreatmentPlanRepository{recordingChild: recordingChild{step: "treatment plans", log: &f.log}},
			recordingChild{step: "risk insights", log: &f.log},
			recordingChild{step: "identified threats", log: &f.log},
			recordingChild{step: "vulnerabilities", log: &f.log},
			recordingScenarioRepository{recordingChild: recordingChild{step: "risk scenarios", log: &f.log}},
			recordingChild{step: "reports", log: &f.log},
			recordingSurveyRepository{recordingChild: recordingChild{step: "facility survey questions", log: &f.log}},
			recordingQuestionRepository{recordingChild: recordingChild{step: "assessment questions", log: &f.log}},
			recordingChild{step: "interview responses", log: &f.log},
			f.store,
		)

		err := service.Delete(uuid.New())
		assert.NoError(t, err)
		assert.Empty(t, f.log)
	})
}

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
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/siteguard-sec/siteguard/database/models"
	"github.com/siteguard-sec/siteguard/dtos"
	"github.com/siteguard-sec/siteguard/shared"
	"github.com/siteguard-sec/siteguard/utils"
	"gorm.io/datatypes"
)

// stubRepository satisfies the generic repository surface with no-ops so
// the per-test fakes only override what they assert on.
type stubRepository[T utils.Tabler] struct{}

func (stubRepository[T]) Create(tx shared.DB, t *T) error        { return nil }
func (stubRepository[T]) CreateBatch(tx shared.DB, ts []T) error { return nil }
func (stubRepository[T]) Read(id uuid.UUID) (T, error)           { var t T; return t, nil }
func (stubRepository[T]) Delete(tx shared.DB, id uuid.UUID) error {
	return nil
}
func (stubRepository[T]) List(ids []uuid.UUID) ([]T, error)    { return nil, nil }
func (stubRepository[T]) All() ([]T, error)                    { return nil, nil }
func (stubRepository[T]) Save(tx shared.DB, t *T) error        { return nil }
func (stubRepository[T]) SaveBatch(tx shared.DB, ts []T) error { return nil }
func (stubRepository[T]) GetDB(tx shared.DB) shared.DB         { return tx }

type fakeAssessmentRepository struct {
	stubRepository[models.Assessment]
	assessment models.Assessment
	readErr    error

	cachedLevel  *dtos.RiskLevel
	cachedScore  int
	cachedStatus models.AssessmentStatus
}

func (f *fakeAssessmentRepository) Read(id uuid.UUID) (models.Assessment, error) {
	return f.assessment, f.readErr
}

func (f *fakeAssessmentRepository) ReadBySlug(organizationID uuid.UUID, slug string) (models.Assessment, error) {
	return f.assessment, f.readErr
}

func (f *fakeAssessmentRepository) GetByOrganizationID(organizationID uuid.UUID) ([]models.Assessment, error) {
	return []models.Assessment{f.assessment}, nil
}

func (f *fakeAssessmentRepository) UpdateRiskCache(tx shared.DB, assessmentID uuid.UUID, level dtos.RiskLevel, score int, status models.AssessmentStatus) error {
	f.cachedLevel = &level
	f.cachedScore = score
	f.cachedStatus = status
	return nil
}

type fakeSurveyRepository struct {
	stubRepository[models.FacilitySurveyQuestion]
	questions []models.FacilitySurveyQuestion
}

func (f *fakeSurveyRepository) GetByAssessmentID(assessmentID uuid.UUID) ([]models.FacilitySurveyQuestion, error) {
	return f.questions, nil
}

func (f *fakeSurveyRepository) DeleteByAssessmentID(tx shared.DB, assessmentID uuid.UUID) error {
	return nil
}

func (f *fakeSurveyRepository) UpsertByQuestionKey(tx shared.DB, questions []models.FacilitySurveyQuestion) error {
	return nil
}

type threatCatalogStub struct {
	missing map[string]bool
}

func (c threatCatalogStub) HasCanonicalThreat(name string) (bool, error) {
	return !c.missing[name], nil
}

func mustProfileJSON(t *testing.T, profile dtos.Profile) datatypes.JSON {
	t.Helper()
	raw, err := json.Marshal(profile)
	if err != nil {
		t.Fatal(err)
	}
	return datatypes.JSON(raw)
}

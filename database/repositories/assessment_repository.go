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

package repositories

import (
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/siteguard-sec/siteguard/database/models"
	"github.com/siteguard-sec/siteguard/dtos"
	"gorm.io/gorm"
)

type assessmentRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Assessment]
}

func NewAssessmentRepository(db *gorm.DB) *assessmentRepository {
	return &assessmentRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Assessment](db),
	}
}

func (a *assessmentRepository) Create(tx *gorm.DB, assessment *models.Assessment) error {
	if assessment.Slug == "" {
		assessment.Slug = slug.Make(assessment.Name)
	}
	return a.GetDB(tx).Create(assessment).Error
}

func (a *assessmentRepository) ReadBySlug(organizationID uuid.UUID, s string) (models.Assessment, error) {
	var assessment models.Assessment
	err := a.db.Where("organization_id = ? AND slug = ?", organizationID, s).First(&assessment).Error
	return assessment, err
}

func (a *assessmentRepository) GetByOrganizationID(organizationID uuid.UUID) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := a.db.Where("organization_id = ?", organizationID).Find(&assessments).Error
	return assessments, err
}

// UpdateRiskCache writes the derived risk level and score back onto the
// assessment row after a scoring pass.
func (a *assessmentRepository) UpdateRiskCache(tx *gorm.DB, assessmentID uuid.UUID, level dtos.RiskLevel, score int, status models.AssessmentStatus) error {
	return a.GetDB(tx).Model(&models.Assessment{}).Where("id = ?", assessmentID).Updates(map[string]any{
		"risk_level": level,
		"risk_score": score,
		"status":     status,
	}).Error
}

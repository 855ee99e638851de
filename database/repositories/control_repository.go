package repositories

import (
	"github.com/google/uuid"
	"github.com/siteguard-sec/siteguard/database/models"
	"gorm.io/gorm"
)

type controlRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Control]
}

func NewControlRepository(db *gorm.DB) *controlRepository {
	return &controlRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Control](db),
	}
}

func (c *controlRepository) GetByAssessmentID(assessmentID uuid.UUID) ([]models.Control, error) {
	var controls []models.Control
	err := c.db.Where("assessment_id = ?", assessmentID).Find(&controls).Error
	return controls, err
}

func (c *controlRepository) DeleteByAssessmentID(tx *gorm.DB, assessmentID uuid.UUID) error {
	return c.GetDB(tx).Where("assessment_id = ?", assessmentID).Delete(&models.Control{}).Error
}

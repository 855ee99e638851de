package repositories

import (
	"github.com/google/uuid"
	"github.com/siteguard-sec/siteguard/database/models"
	"gorm.io/gorm"
)

type riskScenarioRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.RiskScenario]
}

func NewRiskScenarioRepository(db *gorm.DB) *riskScenarioRepository {
	return &riskScenarioRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.RiskScenario](db),
	}
}

func (r *riskScenarioRepository) GetByAssessmentID(assessmentID uuid.UUID) ([]models.RiskScenario, error) {
	var scenarios []models.RiskScenario
	err := r.db.Where("assessment_id = ?", assessmentID).Find(&scenarios).Error
	return scenarios, err
}

func (r *riskScenarioRepository) DeleteByAssessmentID(tx *gorm.DB, assessmentID uuid.UUID) error {
	return r.GetDB(tx).Where("assessment_id = ?", assessmentID).Delete(&models.RiskScenario{}).Error
}

// DeleteByNamesExcluding removes the scenarios of an assessment whose names
// are in names, skipping the given ids. Regeneration uses this to clear the
// previous generator output while leaving the rows it just created (and any
// user-authored scenarios) untouched.
func (r *riskScenarioRepository) DeleteByNamesExcluding(tx *gorm.DB, assessmentID uuid.UUID, names []string, excludeIDs []uuid.UUID) error {
	if len(names) == 0 {
		return nil
	}
	q := r.GetDB(tx).Where("assessment_id = ? AND scenario IN ?", assessmentID, names)
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}
	return q.Delete(&models.RiskScenario{}).Error
}

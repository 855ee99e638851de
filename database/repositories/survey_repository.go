package repositories

import (
	"github.com/google/uuid"
	"github.com/siteguard-sec/siteguard/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type facilitySurveyQuestionRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.FacilitySurveyQuestion]
}

func NewFacilitySurveyQuestionRepository(db *gorm.DB) *facilitySurveyQuestionRepository {
	return &facilitySurveyQuestionRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.FacilitySurveyQuestion](db),
	}
}

func (f *facilitySurveyQuestionRepository) GetByAssessmentID(assessmentID uuid.UUID) ([]models.FacilitySurveyQuestion, error) {
	var questions []models.FacilitySurveyQuestion
	err := f.db.Where("assessment_id = ?", assessmentID).Order("sort_order asc").Find(&questions).Error
	return questions, err
}

func (f *facilitySurveyQuestionRepository) DeleteByAssessmentID(tx *gorm.DB, assessmentID uuid.UUID) error {
	return f.GetDB(tx).Where("assessment_id = ?", assessmentID).Delete(&models.FacilitySurveyQuestion{}).Error
}

// UpsertByQuestionKey is the per-item upsert variant for callers that cannot
// tolerate the delete/insert gap of a full replace.
func (f *facilitySurveyQuestionRepository) UpsertByQuestionKey(tx *gorm.DB, questions []models.FacilitySurveyQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	return f.GetDB(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "assessment_id"}, {Name: "question_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"section", "question", "answer", "sort_order", "evidence_files"}),
	}).Create(&questions).Error
}

type assessmentQuestionRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.AssessmentQuestion]
}

func NewAssessmentQuestionRepository(db *gorm.DB) *assessmentQuestionRepository {
	return &assessmentQuestionRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.AssessmentQuestion](db),
	}
}

func (a *assessmentQuestionRepository) GetByAssessmentID(assessmentID uuid.UUID) ([]models.AssessmentQuestion, error) {
	var questions []models.AssessmentQuestion
	err := a.db.Where("assessment_id = ?", assessmentID).Find(&questions).Error
	return questions, err
}

func (a *assessmentQuestionRepository) DeleteByAssessmentID(tx *gorm.DB, assessmentID uuid.UUID) error {
	return a.GetDB(tx).Where("assessment_id = ?", assessmentID).Delete(&models.AssessmentQuestion{}).Error
}

func (a *assessmentQuestionRepository) UpsertByQuestionKey(tx *gorm.DB, questions []models.AssessmentQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	return a.GetDB(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "assessment_id"}, {Name: "question_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "question", "answer", "evidence_files"}),
	}).Create(&questions).Error
}

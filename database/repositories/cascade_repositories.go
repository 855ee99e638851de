package repositories

import (
	"github.com/google/uuid"
	"github.com/siteguard-sec/siteguard/database/models"
	"gorm.io/gorm"
)

// The repositories below back tables that only matter to this engine as
// members of the assessment delete cascade and the treatment-plan replace.

type treatmentPlanRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.TreatmentPlan]
}

func NewTreatmentPlanRepository(db *gorm.DB) *treatmentPlanRepository {
	return &treatmentPlanRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.TreatmentPlan](db),
	}
}

func (t *treatmentPlanRepository) GetByAssessmentID(assessmentID uuid.UUID) ([]models.TreatmentPlan, error) {
	var plans []models.TreatmentPlan
	err := t.db.Where("assessment_id = ?", assessmentID).Find(&plans).Error
	return plans, err
}

func (t *treatmentPlanRepository) DeleteByAssessmentID(tx *gorm.DB, assessmentID uuid.UUID) error {
	return t.GetDB(tx).Where("assessment_id = ?", assessmentID).Delete(&models.TreatmentPlan{}).Error
}

type riskInsightRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.RiskInsight]
}

func NewRiskInsightRepository(db *gorm.DB) *riskInsightRepository {
	return &riskInsightRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.RiskInsight](db),
	}
}

func (r *riskInsightRepository) DeleteByAssessmentID(tx *gorm.DB, assessmentID uuid.UUID) error {
	return r.GetDB(tx).Where("assessment_id = ?", assessmentID).Delete(&models.RiskInsight{}).Error
}

type identifiedThreatRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.IdentifiedThreat]
}

func NewIdentifiedThreatRepository(db *gorm.DB) *identifiedThreatRepository {
	return &identifiedThreatRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.IdentifiedThreat](db),
	}
}

func (i *identifiedThreatRepository) DeleteByAssessmentID(tx *gorm.DB, assessmentID uuid.UUID) error {
	return i.GetDB(tx).Where("assessment_id = ?", assessmentID).Delete(&models.IdentifiedThreat{}).Error
}

type vulnerabilityRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Vulnerability]
}

func NewVulnerabilityRepository(db *gorm.DB) *vulnerabilityRepository {
	return &vulnerabilityRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Vulnerability](db),
	}
}

func (v *vulnerabilityRepository) DeleteByAssessmentID(tx *gorm.DB, assessmentID uuid.UUID) error {
	return v.GetDB(tx).Where("assessment_id = ?", assessmentID).Delete(&models.Vulnerability{}).Error
}

type reportRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Report]
}

func NewReportRepository(db *gorm.DB) *reportRepository {
	return &reportRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Report](db),
	}
}

func (r *reportRepository) DeleteByAssessmentID(tx *gorm.DB, assessmentID uuid.UUID) error {
	return r.GetDB(tx).Where("assessment_id = ?", assessmentID).Delete(&models.Report{}).Error
}

type interviewResponseRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.InterviewResponse]
}

func NewInterviewResponseRepository(db *gorm.DB) *interviewResponseRepository {
	return &interviewResponseRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.InterviewResponse](db),
	}
}

func (i *interviewResponseRepository) DeleteByAssessmentID(tx *gorm.DB, assessmentID uuid.UUID) error {
	return i.GetDB(tx).Where("assessment_id = ?", assessmentID).Delete(&models.InterviewResponse{}).Error
}

package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/siteguard-sec/siteguard/database/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(host, user, password, dbname, port string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", host, user, password, dbname, port)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// AutoMigrate creates or updates every table this engine touches.
func AutoMigrate(db *gorm.DB) error {
	start := time.Now()
	err := db.AutoMigrate(
		&models.Assessment{},
		&models.Control{},
		&models.ControlLibraryEntry{},
		&models.ThreatLibraryEntry{},
		&models.RiskScenario{},
		&models.TreatmentPlan{},
		&models.RiskInsight{},
		&models.IdentifiedThreat{},
		&models.Vulnerability{},
		&models.Report{},
		&models.FacilitySurveyQuestion{},
		&models.AssessmentQuestion{},
		&models.InterviewResponse{},
	)
	if err != nil {
		return fmt.Errorf("could not migrate database: %v", err)
	}
	slog.Debug("database migration finished", "duration", time.Since(start))
	return nil
}

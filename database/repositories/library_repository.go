package repositories

import (
	"github.com/google/uuid"
	"github.com/siteguard-sec/siteguard/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type controlLibraryRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.ControlLibraryEntry]
}

func NewControlLibraryRepository(db *gorm.DB) *controlLibraryRepository {
	return &controlLibraryRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.ControlLibraryEntry](db),
	}
}

func (c *controlLibraryRepository) FindByName(name string) (models.ControlLibraryEntry, error) {
	var entry models.ControlLibraryEntry
	err := c.db.Where("name = ?", name).First(&entry).Error
	return entry, err
}

// UpsertByName seeds catalog rows matched by their natural key. This is the
// per-item upsert variant: safe to retry, no delete/insert gap. Best-effort
// so one stale row cannot block the rest of the seed.
func (c *controlLibraryRepository) UpsertByName(tx *gorm.DB, entries []models.ControlLibraryEntry) error {
	return c.UpsertBatchBestEffort(tx, entries, clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "base_weight", "reduction_percentage"}),
	})
}

type threatLibraryRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.ThreatLibraryEntry]
}

func NewThreatLibraryRepository(db *gorm.DB) *threatLibraryRepository {
	return &threatLibraryRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.ThreatLibraryEntry](db),
	}
}

func (t *threatLibraryRepository) FindByName(name string) (models.ThreatLibraryEntry, error) {
	var entry models.ThreatLibraryEntry
	err := t.db.Where("name = ?", name).First(&entry).Error
	return entry, err
}

func (t *threatLibraryRepository) UpsertByName(tx *gorm.DB, entries []models.ThreatLibraryEntry) error {
	return t.UpsertBatchBestEffort(tx, entries, clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"category"}),
	})
}

package models

// ControlLibraryEntry is a canonical catalog row, seeded out of band and
// read-only at scoring time. Name is the canonical display string scoring
// matches against.
type ControlLibraryEntry struct {
	Model
	Name                string  `json:"name" gorm:"type:text;uniqueIndex;not null;" validate:"required"`
	Category            string  `json:"category" gorm:"type:text;"`
	BaseWeight          int     `json:"baseWeight" gorm:"type:integer;default:1;"`
	ReductionPercentage float64 `json:"reductionPercentage" gorm:"type:decimal(5,2);default:0;"`
}

func (m ControlLibraryEntry) TableName() string {
	return "control_library_entries"
}

type ThreatLibraryEntry struct {
	Model
	Name     string `json:"name" gorm:"type:text;uniqueIndex;not null;" validate:"required"`
	Category string `json:"category" gorm:"type:text;"`
}

func (m ThreatLibraryEntry) TableName() string {
	return "threat_library_entries"
}

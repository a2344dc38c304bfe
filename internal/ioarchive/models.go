package ioarchive

import (
	"time"

	"gorm.io/gorm"
)

// Run is one analysis run.
type Run struct {
	// ID is UUID v4 of the run.
	ID string `gorm:"type:uuid;primaryKey"`

	CreatedAt time.Time `gorm:"not null;index"`

	// TaxonName is the name given by the user.
	TaxonName string  `gorm:"type:varchar(255);not null;index"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
	RadiusKm  float64 `gorm:"not null"`
	UserInput string  `gorm:"type:text"`

	// TaxonKey is GBIF usage key, 0 for cached results.
	TaxonKey    int
	MatchedName string `gorm:"type:varchar(255)"`
	Rank        string `gorm:"type:varchar(50)"`

	// Completion is 'exhausted', 'capped', 'failed' or empty for cached
	// results.
	Completion string `gorm:"type:varchar(20)"`
	FromCache  bool   `gorm:"not null;default:false"`

	SpeciesCount int `gorm:"not null;default:0"`
	Processed    int `gorm:"not null;default:0"`
	MatchedCount int `gorm:"not null;default:0"`

	ReportText   string `gorm:"type:text"`
	ReportFailed bool   `gorm:"not null;default:false"`
	ReportReason string `gorm:"type:varchar(20)"`
}

// RunSpecies is a species found during a run.
type RunSpecies struct {
	RunID string `gorm:"type:uuid;primaryKey"`

	// Position is 1-based rank of the species by number of records.
	Position int    `gorm:"primaryKey;autoIncrement:false"`
	Name     string `gorm:"type:varchar(255);not null;index"`
	Family   string `gorm:"type:varchar(255)"`
	Count    int    `gorm:"not null"`

	// Status is 'matched', 'unmatched' or 'unprocessed'.
	Status string `gorm:"type:varchar(20);not null"`

	// Reason is set for unmatched species.
	Reason string `gorm:"type:varchar(50)"`
}

// TableName sets the table name of RunSpecies.
func (RunSpecies) TableName() string {
	return "run_species"
}

// AllModels returns archive models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&Run{},
		&RunSpecies{},
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}

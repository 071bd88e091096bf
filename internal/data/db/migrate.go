package db

import (
	"gorm.io/gorm"

	types "github.com/amcdental/dentalhub-backend/internal/domain"
)

// AutoMigrateAll creates content tables before tracks so track_item and
// track_progress foreign keys resolve.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// =========================
		// Content catalog
		// =========================
		&types.Article{},
		&types.Lesson{},
		&types.Tool{},

		// =========================
		// Learning tracks
		// =========================
		&types.Track{},
		&types.TrackItem{},
		&types.TrackProgress{},
	)
}

package services

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/inkwelldev/inkwell/pkg/internal/database"
	"github.com/inkwelldev/inkwell/pkg/internal/models"
)

// Follow rows are hard-deleted on unfollow, so only soft-deletable records
// take part in the sweep.
var autoCleanupRange = []any{
	&models.Comment{},
	&models.Post{},
	&models.Group{},
	&models.Account{},
}

const autoCleanupRetention = 30 * 24 * time.Hour

// DoAutoDatabaseCleanup hard-deletes records that stayed soft-deleted past
// the retention window.
func DoAutoDatabaseCleanup() {
	deadline := time.Now().Add(-autoCleanupRetention)
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up entire database...")

	var count int64
	for _, model := range autoCleanupRange {
		tx := database.C.Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at <= ?", deadline).
			Delete(model)
		if tx.Error != nil {
			log.Error().Err(tx.Error).Msg("An error occurred when running auto database cleanup...")
			continue
		}
		count += tx.RowsAffected
	}

	log.Debug().Int64("affected", count).Msg("Clean up entire database accomplished.")
}

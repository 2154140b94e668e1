package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-faved-comments/internal/logger"
	"github.com/MKhiriev/go-faved-comments/migrations"
)

// DB wraps the SQL connection pool of the local cache.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the cache schema up to the latest embedded migration.
func (db *DB) Migrate() error {
	db.logger.Debug().Msg("applying local cache migrations")
	if err := migrations.Migrate(db.DB); err != nil {
		return fmt.Errorf("migrate local cache: %w", err)
	}
	return nil
}

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-faved-comments/internal/config"
	"github.com/MKhiriev/go-faved-comments/internal/logger"
)

// Storages groups the local storage repositories so they can be passed
// around the service layer as one value.
type Storages struct {
	// FavedCommentRepository caches full favorite records for offline
	// listing.
	FavedCommentRepository FavedCommentRepository

	db *DB
}

// NewStorages opens the SQLite database from cfg.DB.DSN, runs pending
// migrations and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		FavedCommentRepository: NewFavedCommentRepository(db, logger),
		db:                     db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

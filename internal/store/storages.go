package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cyr-records/internal/config"
	"github.com/MKhiriev/go-cyr-records/internal/logger"
)

// ClientStorages groups the local repositories used by the services.
type ClientStorages struct {
	// FlashRepository keeps the pending flash message.
	FlashRepository FlashRepository
	// SessionRepository persists the auth session.
	SessionRepository SessionRepository

	db *DB
}

// NewClientStorages opens the SQLite database at cfg.DB.DSN (creating the
// file if needed), applies migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		FlashRepository:   NewFlashRepository(db, logger),
		SessionRepository: NewSessionRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

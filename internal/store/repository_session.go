package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cyr-records/internal/logger"
	"github.com/MKhiriev/go-cyr-records/models"
)

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (s *sessionRepository) SaveSession(ctx context.Context, snapshot models.SessionSnapshot) error {
	record, err := json.Marshal(snapshot.Record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}

	query, args, err := saveSessionQuery(snapshot, record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("record_id", snapshot.Record.ID()).
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionRepository) LoadSession(ctx context.Context) (models.SessionSnapshot, error) {
	query, args, err := selectSessionQuery()
	if err != nil {
		return models.SessionSnapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		snapshot models.SessionSnapshot
		record   string
	)
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&snapshot.Token, &record, &snapshot.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SessionSnapshot{}, nil
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.LoadSession").
			Msg("failed to read session")
		return models.SessionSnapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal([]byte(record), &snapshot.Record); err != nil {
		return models.SessionSnapshot{}, fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}

	return snapshot, nil
}

func (s *sessionRepository) ClearSession(ctx context.Context) error {
	query, args, err := deleteSingletonQuery(sessionTable)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.ClearSession").
			Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

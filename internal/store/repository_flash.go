package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cyr-records/internal/logger"
	"github.com/MKhiriev/go-cyr-records/models"
)

type flashRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewFlashRepository(db *DB, logger *logger.Logger) FlashRepository {
	return &flashRepository{
		db:     db,
		logger: logger,
	}
}

func (f *flashRepository) SaveFlash(ctx context.Context, flash models.Flash) error {
	query, args, err := saveFlashQuery(flash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = f.db.ExecContext(ctx, query, args...); err != nil {
		f.logger.Err(err).
			Str("func", "flashRepository.SaveFlash").
			Str("kind", flash.Kind).
			Msg("failed to save flash")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (f *flashRepository) PopFlash(ctx context.Context) (models.Flash, bool, error) {
	selectQuery, selectArgs, err := selectFlashQuery()
	if err != nil {
		return models.Flash{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deleteQuery, deleteArgs, err := deleteSingletonQuery(flashTable)
	if err != nil {
		return models.Flash{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := f.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Flash{}, false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var flash models.Flash
	err = tx.QueryRowContext(ctx, selectQuery, selectArgs...).Scan(&flash.Message, &flash.Kind, &flash.At)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Flash{}, false, nil
	}
	if err != nil {
		f.logger.Err(err).
			Str("func", "flashRepository.PopFlash").
			Msg("failed to read flash")
		return models.Flash{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		f.logger.Err(err).
			Str("func", "flashRepository.PopFlash").
			Msg("failed to delete consumed flash")
		return models.Flash{}, false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return models.Flash{}, false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return flash, true, nil
}

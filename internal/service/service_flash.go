package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cyr-records/internal/logger"
	"github.com/MKhiriev/go-cyr-records/internal/store"
	"github.com/MKhiriev/go-cyr-records/models"
)

type flashService struct {
	repo   store.FlashRepository
	now    func() time.Time
	logger *logger.Logger
}

func NewFlashService(repo store.FlashRepository, logger *logger.Logger) FlashService {
	return &flashService{
		repo:   repo,
		now:    time.Now,
		logger: logger,
	}
}

func (f *flashService) SetFlash(ctx context.Context, message, kind string) {
	if kind == "" {
		kind = models.FlashInfo
	}

	err := f.repo.SaveFlash(ctx, models.Flash{
		Message: message,
		Kind:    kind,
		At:      f.now().UTC(),
	})
	if err != nil {
		f.logger.Warn().Err(err).Str("kind", kind).Msg("flash was dropped")
	}
}

func (f *flashService) ConsumeFlash(ctx context.Context) (models.Flash, bool) {
	flash, ok, err := f.repo.PopFlash(ctx)
	if err != nil {
		f.logger.Warn().Err(err).Msg("failed to read flash")
		return models.Flash{}, false
	}
	return flash, ok
}

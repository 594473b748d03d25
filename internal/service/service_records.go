package service

import (
	"context"

	"github.com/MKhiriev/go-cyr-records/internal/adapter"
	"github.com/MKhiriev/go-cyr-records/internal/apperror"
	"github.com/MKhiriev/go-cyr-records/internal/logger"
	"github.com/MKhiriev/go-cyr-records/models"
)

type recordService struct {
	store  adapter.RecordStore
	logger *logger.Logger
}

func NewRecordService(store adapter.RecordStore, logger *logger.Logger) RecordService {
	return &recordService{
		store:  store,
		logger: logger,
	}
}

func (r *recordService) List(ctx context.Context, collection string, opts models.ListOptions) (models.ListResult, error) {
	if err := requireArg(collection, "collection"); err != nil {
		return models.ListResult{}, err
	}

	result, err := r.store.GetList(ctx, collection, opts.WithDefaults())
	if err != nil {
		return models.ListResult{}, normalizeStoreError(ctx, r.logger, "list "+collection, err)
	}
	return result, nil
}

func (r *recordService) GetOne(ctx context.Context, collection, id string, query models.RecordQuery) (models.Record, error) {
	if err := requireArg(collection, "collection"); err != nil {
		return nil, err
	}
	if err := requireArg(id, "id"); err != nil {
		return nil, err
	}

	record, err := r.store.GetOne(ctx, collection, id, query)
	if err != nil {
		return nil, normalizeStoreError(ctx, r.logger, "get "+collection, err)
	}
	return record, nil
}

func (r *recordService) Create(ctx context.Context, collection string, data map[string]any) (models.Record, error) {
	if err := requireArg(collection, "collection"); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, apperror.InvalidArgument("data is required")
	}

	record, err := r.store.Create(ctx, collection, data)
	if err != nil {
		return nil, normalizeStoreError(ctx, r.logger, "create "+collection, err)
	}
	return record, nil
}

func (r *recordService) Update(ctx context.Context, collection, id string, data map[string]any) (models.Record, error) {
	if err := requireArg(collection, "collection"); err != nil {
		return nil, err
	}
	if err := requireArg(id, "id"); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, apperror.InvalidArgument("data is required")
	}

	record, err := r.store.Update(ctx, collection, id, data)
	if err != nil {
		return nil, normalizeStoreError(ctx, r.logger, "update "+collection, err)
	}
	return record, nil
}

func (r *recordService) Remove(ctx context.Context, collection, id string, mode *models.RemoveMode) (models.Record, error) {
	if err := requireArg(collection, "collection"); err != nil {
		return nil, err
	}
	if err := requireArg(id, "id"); err != nil {
		return nil, err
	}

	if mode != nil && mode.Archive {
		record, err := r.store.Update(ctx, collection, id, map[string]any{
			mode.ArchiveField(): mode.ArchiveValue(),
		})
		if err != nil {
			return nil, normalizeStoreError(ctx, r.logger, "archive "+collection, err)
		}
		return record, nil
	}

	if err := r.store.Delete(ctx, collection, id); err != nil {
		return nil, normalizeStoreError(ctx, r.logger, "delete "+collection, err)
	}
	return nil, nil
}

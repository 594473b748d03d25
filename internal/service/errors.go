package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-cyr-records/internal/apperror"
	"github.com/MKhiriev/go-cyr-records/internal/logger"
)

// normalizeStoreError converts a store failure and logs it with its cause.
func normalizeStoreError(ctx context.Context, log *logger.Logger, op string, err error) error {
	normalized := apperror.Normalize(err)

	log.Warn().
		Ctx(ctx).
		Err(normalized.Cause).
		Str("op", op).
		Int("status", normalized.Status).
		Int("field_errors", len(normalized.FieldErrors)).
		Msg(normalized.Message)

	return normalized
}

func requireArg(value, name string) error {
	if strings.TrimSpace(value) == "" {
		return apperror.InvalidArgument(name + " is required")
	}
	return nil
}

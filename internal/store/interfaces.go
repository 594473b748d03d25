// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client's local SQLite state: the pending
// flash message and the persisted auth session. Both tables hold at most
// one row.
package store

import (
	"context"

	"github.com/MKhiriev/go-cyr-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FlashRepository keeps the single pending flash message.
type FlashRepository interface {
	// SaveFlash stores flash, replacing any pending one.
	SaveFlash(ctx context.Context, flash models.Flash) error
	// PopFlash returns the pending flash and deletes it. ok is false when
	// nothing was pending.
	PopFlash(ctx context.Context) (flash models.Flash, ok bool, err error)
}

// SessionRepository persists the auth session between runs.
type SessionRepository interface {
	SaveSession(ctx context.Context, snapshot models.SessionSnapshot) error
	// LoadSession returns a zero snapshot when nothing is stored.
	LoadSession(ctx context.Context) (models.SessionSnapshot, error)
	ClearSession(ctx context.Context) error
}

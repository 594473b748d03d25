// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the record access, auth and flash façades the
// CLI talks to.
//
// Every failure coming from the record store is returned as
// *apperror.NormalizedError. Missing arguments are rejected before any
// request with an error wrapping apperror.ErrInvalidArgument.
package service

import (
	"context"

	"github.com/MKhiriev/go-cyr-records/models"
)

// RecordService is the uniform CRUD entry point over store collections.
type RecordService interface {
	// List fetches one page of collection. Page, PerPage and Sort default to
	// 1, 20 and "-created"; Filter, Expand and Fields are sent only when set.
	List(ctx context.Context, collection string, opts models.ListOptions) (models.ListResult, error)

	// GetOne fetches a single record by id.
	GetOne(ctx context.Context, collection, id string, query models.RecordQuery) (models.Record, error)

	// Create inserts data into collection. data must not be nil.
	Create(ctx context.Context, collection string, data map[string]any) (models.Record, error)

	// Update patches the record id with data. data must not be nil.
	Update(ctx context.Context, collection, id string, data map[string]any) (models.Record, error)

	// Remove hard-deletes the record, or with mode.Archive set, updates
	// {mode.Field: mode.Value} instead. The returned record is nil for a
	// hard delete.
	Remove(ctx context.Context, collection, id string, mode *models.RemoveMode) (models.Record, error)
}

// AuthService authenticates against the auth collection and answers
// questions about the current session.
type AuthService interface {
	// Login authenticates identity (username or email) and stores the
	// issued token in the session.
	Login(ctx context.Context, identity, password, authCollection string) (models.AuthResult, error)

	// LoginCyr derives the username from a Cyrillic login and calls Login.
	LoginCyr(ctx context.Context, rawLogin, password, authCollection string) (models.AuthResult, error)

	// Register creates an auth record. passwordConfirm is filled from
	// password when absent. With opts.AutoLogin the new user is logged in
	// by username, or by email when there is no username.
	Register(ctx context.Context, data map[string]any, authCollection string, opts models.RegisterOptions) (models.Record, error)

	// RegisterCyr validates a Cyrillic login and display name, derives the
	// username and registers the record with loginCyr and fio fields.
	RegisterCyr(ctx context.Context, req models.CyrRegistration, authCollection string, opts models.RegisterOptions) (models.Record, error)

	// IsAuthed reports whether the session holds a valid token.
	IsAuthed() bool
	// AuthRecord returns the authenticated record, nil when logged out.
	AuthRecord() models.Record
	// AuthToken returns the session token, "" when logged out.
	AuthToken() string
	// IsMaybeAdmin is a UI hint only.
	IsMaybeAdmin() bool

	// Logout clears the session.
	Logout(ctx context.Context) error
}

// FlashService hands a one-shot message from one command to the next.
// It is best-effort: storage failures are logged, never returned.
type FlashService interface {
	SetFlash(ctx context.Context, message, kind string)
	// ConsumeFlash returns the pending flash once; ok is false when there
	// is none.
	ConsumeFlash(ctx context.Context) (flash models.Flash, ok bool)
}

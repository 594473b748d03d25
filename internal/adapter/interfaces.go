// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the record
// store's REST API.
//
// The primary abstraction is [RecordStore], which decouples the service layer
// from HTTP. The package ships a resty-based implementation
// ([NewHTTPRecordStore]) that speaks the PocketBase collections API.
//
// Every failure leaves the adapter as a [*ResponseError]: non-2xx responses
// carry the HTTP status and the decoded error body, while network failures
// carry Status 0 and the underlying transport error. Callers normalise it
// with apperror.Normalize.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cyr-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_store_mock.go -package=mock

// RecordStore defines transport-agnostic access to the record store.
// Implementations attach the current auth token to every request and report
// failures as [*ResponseError].
type RecordStore interface {
	// AuthWithPassword authenticates identity/password against the auth
	// collection and returns the issued token and auth record. It does not
	// store the token anywhere; that is the caller's job.
	AuthWithPassword(ctx context.Context, collection, identity, password string) (models.AuthResult, error)

	// GetList fetches one page of records. Page and PerPage are always sent;
	// Filter, Sort, Expand and Fields are sent only when non-empty.
	GetList(ctx context.Context, collection string, opts models.ListOptions) (models.ListResult, error)

	// GetOne fetches a single record by id.
	GetOne(ctx context.Context, collection, id string, query models.RecordQuery) (models.Record, error)

	// Create inserts a new record and returns it as stored.
	Create(ctx context.Context, collection string, data map[string]any) (models.Record, error)

	// Update patches the record identified by id and returns it as stored.
	Update(ctx context.Context, collection, id string, data map[string]any) (models.Record, error)

	// Delete removes the record identified by id.
	Delete(ctx context.Context, collection, id string) error
}

// TokenSource supplies the auth token attached to outgoing requests.
// An empty token means the request is sent anonymously.
type TokenSource interface {
	Token() string
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the client's auth session: the token issued by the
// record store and the authenticated record.
//
// A [Session] is an explicit handle passed to the services that need it.
// It satisfies adapter.TokenSource, so the transport reads the current token
// from it on every request.
package session

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/MKhiriev/go-cyr-records/internal/logger"
	"github.com/MKhiriev/go-cyr-records/internal/utils"
	"github.com/MKhiriev/go-cyr-records/models"
)

// adminFlag is the record field marking an administrator account.
const adminFlag = "isAdmin"

// Persister stores session snapshots between runs.
type Persister interface {
	// SaveSession replaces the stored snapshot.
	SaveSession(ctx context.Context, snapshot models.SessionSnapshot) error
	// LoadSession returns the stored snapshot. A missing snapshot is
	// reported as a zero value with a nil error.
	LoadSession(ctx context.Context) (models.SessionSnapshot, error)
	// ClearSession removes the stored snapshot.
	ClearSession(ctx context.Context) error
}

// Session is safe for concurrent use.
type Session struct {
	mu     sync.RWMutex
	token  string
	record models.Record

	persister Persister
	now       func() time.Time
	logger    *logger.Logger
}

// New returns an empty in-memory session.
func New(log *logger.Logger) *Session {
	return &Session{
		now:    time.Now,
		logger: log,
	}
}

// NewPersistent returns a session backed by p and restored from the last
// saved snapshot.
func NewPersistent(ctx context.Context, p Persister, log *logger.Logger) (*Session, error) {
	if p == nil {
		return nil, errors.New("nil session persister")
	}

	s := New(log)
	s.persister = p

	snapshot, err := p.LoadSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("error restoring session: %w", err)
	}
	s.token = snapshot.Token
	s.record = snapshot.Record

	return s, nil
}

// Save replaces the token and record. With a persister attached, the new
// state is written through; the in-memory state is updated even if that
// write fails.
func (s *Session) Save(ctx context.Context, token string, record models.Record) error {
	s.mu.Lock()
	s.token = token
	s.record = maps.Clone(record)
	s.mu.Unlock()

	if s.persister == nil {
		return nil
	}

	err := s.persister.SaveSession(ctx, models.SessionSnapshot{
		Token:     token,
		Record:    record,
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		s.logger.Err(err).Msg("failed to persist session")
		return fmt.Errorf("error persisting session: %w", err)
	}
	return nil
}

// Clear drops the token and record.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.record = nil
	s.mu.Unlock()

	if s.persister == nil {
		return nil
	}

	if err := s.persister.ClearSession(ctx); err != nil {
		s.logger.Err(err).Msg("failed to clear persisted session")
		return fmt.Errorf("error clearing session: %w", err)
	}
	return nil
}

// Token returns the current token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Record returns a copy of the authenticated record, or nil.
func (s *Session) Record() models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.record)
}

// IsValid reports whether the session holds a usable token. The token's
// signature is not checked; only its "exp" claim is. A token without "exp"
// counts as valid, a token that cannot be decoded does not.
func (s *Session) IsValid() bool {
	token := s.Token()
	if token == "" {
		return false
	}

	exp, hasExpiry, err := utils.ParseTokenExpiry(token)
	if err != nil {
		return false
	}
	if !hasExpiry {
		return true
	}
	return exp.After(s.now())
}

// IsAdmin reports whether the authenticated record carries isAdmin=true.
// It is a UI hint only; the store enforces access rules.
func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record.Bool(adminFlag)
}

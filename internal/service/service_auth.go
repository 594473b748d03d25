// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"github.com/MKhiriev/go-cyr-records/internal/adapter"
	"github.com/MKhiriev/go-cyr-records/internal/apperror"
	"github.com/MKhiriev/go-cyr-records/internal/identity"
	"github.com/MKhiriev/go-cyr-records/internal/logger"
	"github.com/MKhiriev/go-cyr-records/internal/session"
	"github.com/MKhiriev/go-cyr-records/models"
)

// Auth record fields written by registration.
const (
	fieldUsername        = "username"
	fieldEmail           = "email"
	fieldPassword        = "password"
	fieldPasswordConfirm = "passwordConfirm"
	fieldLoginCyr        = "loginCyr"
	fieldDisplayName     = "fio"
)

type authService struct {
	store   adapter.RecordStore
	session *session.Session
	logger  *logger.Logger
}

func NewAuthService(store adapter.RecordStore, sess *session.Session, logger *logger.Logger) AuthService {
	return &authService{
		store:   store,
		session: sess,
		logger:  logger,
	}
}

func (a *authService) Login(ctx context.Context, identity, password, authCollection string) (models.AuthResult, error) {
	if identity == "" || password == "" {
		return models.AuthResult{}, apperror.InvalidArgument("identity and password are required")
	}
	authCollection = authCollectionOrDefault(authCollection)

	result, err := a.store.AuthWithPassword(ctx, authCollection, identity, password)
	if err != nil {
		return models.AuthResult{}, normalizeStoreError(ctx, a.logger, "login "+authCollection, err)
	}

	// a failed write-through still leaves the in-memory session usable
	if err = a.session.Save(ctx, result.Token, result.Record); err != nil {
		a.logger.Warn().Err(err).Msg("session was not persisted")
	}

	a.logger.Info().Str("record_id", result.Record.ID()).Msg("logged in")
	return result, nil
}

func (a *authService) LoginCyr(ctx context.Context, rawLogin, password, authCollection string) (models.AuthResult, error) {
	if err := identity.ValidateLogin(rawLogin); err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", apperror.ErrInvalidArgument, err)
	}
	return a.Login(ctx, identity.DeriveIdentity(rawLogin), password, authCollection)
}

func (a *authService) Register(ctx context.Context, data map[string]any, authCollection string, opts models.RegisterOptions) (models.Record, error) {
	if data == nil {
		return nil, apperror.InvalidArgument("data is required")
	}
	authCollection = authCollectionOrDefault(authCollection)

	payload := maps.Clone(data)
	password := stringField(payload, fieldPassword)
	if password != "" && stringField(payload, fieldPasswordConfirm) == "" {
		payload[fieldPasswordConfirm] = password
	}

	record, err := a.store.Create(ctx, authCollection, payload)
	if err != nil {
		return nil, normalizeStoreError(ctx, a.logger, "register "+authCollection, err)
	}

	if opts.AutoLogin && password != "" {
		loginIdentity := stringField(payload, fieldUsername)
		if loginIdentity == "" {
			loginIdentity = stringField(payload, fieldEmail)
		}
		if loginIdentity != "" {
			if _, err = a.Login(ctx, loginIdentity, password, authCollection); err != nil {
				return record, err
			}
		}
	}

	return record, nil
}

func (a *authService) RegisterCyr(ctx context.Context, req models.CyrRegistration, authCollection string, opts models.RegisterOptions) (models.Record, error) {
	if err := identity.ValidateLogin(req.LoginCyr); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidArgument, err)
	}
	if !identity.ValidateDisplayName(req.DisplayName) {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidArgument, identity.ErrDisplayNameInvalid)
	}
	if req.Password == "" {
		return nil, apperror.InvalidArgument("password is required")
	}

	data := maps.Clone(req.Extra)
	if data == nil {
		data = make(map[string]any, 5)
	}
	data[fieldUsername] = identity.DeriveIdentity(req.LoginCyr)
	data[fieldLoginCyr] = identity.Normalize(req.LoginCyr)
	data[fieldDisplayName] = strings.TrimSpace(req.DisplayName)
	data[fieldPassword] = req.Password
	if req.Email != "" {
		data[fieldEmail] = req.Email
	}

	return a.Register(ctx, data, authCollection, opts)
}

func (a *authService) IsAuthed() bool {
	return a.session.IsValid()
}

func (a *authService) AuthRecord() models.Record {
	return a.session.Record()
}

func (a *authService) AuthToken() string {
	return a.session.Token()
}

func (a *authService) IsMaybeAdmin() bool {
	return a.session.IsAdmin()
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}

func authCollectionOrDefault(collection string) string {
	if collection == "" {
		return models.DefaultAuthCollection
	}
	return collection
}

func stringField(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apperror turns every failure of the record store layer into one
// display-ready shape, [NormalizedError].
//
// Callers classify failures with errors.Is against the package sentinels:
//
//	ErrInvalidArgument  rejected locally, before any network call
//	ErrRemoteRejected   the store answered with an error status
//	ErrTransportFailure no usable answer (network failure, bad body)
package apperror

import (
	"errors"
	"fmt"
)

// UnknownErrorMessage is the message used when a failure carries none.
const UnknownErrorMessage = "Unknown error"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrRemoteRejected   = errors.New("remote rejected")
	ErrTransportFailure = errors.New("transport failure")
)

// InvalidArgument returns an error wrapping [ErrInvalidArgument] with msg.
func InvalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line runtime of the records client.
//
// [App] dispatches one sub-command per process run (derive, check, register,
// login, logout, whoami, list, get, create, update, remove, flash, version)
// to the services and writes human-readable output to an io.Writer.
package client

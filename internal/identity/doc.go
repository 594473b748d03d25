// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity derives stable ASCII auth identities from Cyrillic logins.
//
// The record store authenticates by a Latin username, while users sign up
// and log in with a Cyrillic login. [DeriveIdentity] bridges the two: it
// transliterates the normalized login into a short stem and appends a
// 6-character base-36 FNV-1a fingerprint of the normalized login, e.g.
//
//	DeriveIdentity("Иванов") == "ivanov-5q9mq0"
//
// The result is deterministic, so the same login always maps to the same
// identity and can be re-derived at login time instead of being looked up.
// Uniqueness is not guaranteed by construction; the store's unique index
// on the username field is the final arbiter.
//
// The package also provides the form-level predicates [ValidateLoginShape]
// and [ValidateDisplayName] used before anything is submitted.
package identity

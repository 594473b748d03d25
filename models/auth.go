package models

import "time"

// AuthResult is the response of a successful password authentication.
type AuthResult struct {
	// Token is the store-issued JWT sent back in the Authorization header.
	Token string `json:"token"`
	// Record is the authenticated auth-collection record.
	Record Record `json:"record"`
}

// SessionSnapshot is the persisted form of an auth session.
type SessionSnapshot struct {
	Token     string    `json:"token"`
	Record    Record    `json:"record"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Flash is a one-shot message handed from one screen to the next.
type Flash struct {
	Message string    `json:"message"`
	Kind    string    `json:"kind"`
	At      time.Time `json:"at"`
}

// Flash kinds.
const (
	FlashInfo    = "info"
	FlashSuccess = "success"
	FlashError   = "error"
)

// CyrRegistration is a sign-up request keyed by a Cyrillic login.
type CyrRegistration struct {
	// LoginCyr is the human-entered Cyrillic login.
	LoginCyr string
	// DisplayName is the person's full name (ФИО) in Cyrillic.
	DisplayName string
	Password    string
	// Email is optional.
	Email string
	// Extra holds additional record fields; it never overrides the fields
	// derived from the request.
	Extra map[string]any
}

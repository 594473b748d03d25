package identity

import "errors"

// Login validation errors returned by [ValidateLogin].
var (
	ErrLoginEmpty       = errors.New("login is required")
	ErrLoginTooShort    = errors.New("login is too short")
	ErrLoginNotCyrillic = errors.New("login must contain only cyrillic letters")

	ErrDisplayNameInvalid = errors.New("display name must contain only cyrillic words")
)

package identity

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// MinLoginLength is the minimal number of characters in a trimmed login.
	MinLoginLength = 6
	// MaxStemLength bounds the transliterated part of a derived identity.
	MaxStemLength = 22

	fallbackStem = "user"
	separator    = "-"
)

var (
	loginPattern       = regexp.MustCompile(`^[А-ЯЁа-яё]+(?: [А-ЯЁа-яё]+)*$`)
	displayNamePattern = regexp.MustCompile(`^[А-ЯЁа-яё]+(?:\s+[А-ЯЁа-яё]+)*$`)
)

// Normalize trims surrounding whitespace and lower-cases the login.
// Interior whitespace is kept as is.
func Normalize(raw string) string {
	// a Caser keeps state between calls, so each call gets its own
	return cases.Lower(language.Und).String(strings.TrimSpace(raw))
}

// ValidateLogin reports why raw is not an acceptable Cyrillic login.
// It returns nil for a trimmed login made of Cyrillic letters, optionally
// split into words by single spaces, that is at least MinLoginLength
// characters long.
func ValidateLogin(raw string) error {
	login := strings.TrimSpace(raw)
	if login == "" {
		return ErrLoginEmpty
	}
	if !loginPattern.MatchString(login) {
		return ErrLoginNotCyrillic
	}
	if utf8.RuneCountInString(login) < MinLoginLength {
		return ErrLoginTooShort
	}
	return nil
}

// ValidateLoginShape is the boolean form of [ValidateLogin] used as a
// pre-submission gate.
func ValidateLoginShape(raw string) bool {
	return ValidateLogin(raw) == nil
}

// ValidateDisplayName reports whether fio is one or more Cyrillic words
// separated by whitespace runs.
func ValidateDisplayName(fio string) bool {
	return displayNamePattern.MatchString(strings.TrimSpace(fio))
}

// DeriveIdentity maps a raw login to the ASCII identity stored as the
// record store's username.
//
// The stem is the transliterated normalized login restricted to [a-z0-9]
// and cut to MaxStemLength characters, or "user" when nothing is left.
// The suffix is the [Fingerprint] of the normalized (not transliterated)
// login, so logins that transliterate alike still differ by suffix.
func DeriveIdentity(raw string) string {
	normalized := Normalize(raw)

	stem := stemOf(Transliterate(normalized))
	if len(stem) > MaxStemLength {
		stem = stem[:MaxStemLength]
	}
	if stem == "" {
		stem = fallbackStem
	}

	return stem + separator + Fingerprint(normalized)
}

func stemOf(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isStemRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

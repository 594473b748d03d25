// Package utils provides general-purpose helpers shared across the client:
// the resty-based HTTP client wrapper, trace id generation and unverified
// JWT inspection for the auth session.
package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken is returned by [ParseTokenExpiry] for an empty token string.
var ErrEmptyToken = errors.New("empty token")

// ParseTokenExpiry decodes tokenString without verifying its signature and
// returns the "exp" claim.
//
// The client never holds the store's signing key, so only the payload is
// inspected. hasExpiry is false when the token carries no "exp" claim.
// An error is returned when the token cannot be decoded at all.
//
// Example usage:
//
//	exp, ok, err := utils.ParseTokenExpiry(token)
//	if err == nil && ok && exp.Before(time.Now()) {
//	    // token expired
//	}
func ParseTokenExpiry(tokenString string) (exp time.Time, hasExpiry bool, err error) {
	if tokenString == "" {
		return time.Time{}, false, ErrEmptyToken
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false, fmt.Errorf("error occurred parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || len(claims) == 0 {
		return time.Time{}, false, errors.New("invalid token claims")
	}

	numericDate, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("error occurred reading token expiry: %w", err)
	}
	if numericDate == nil {
		return time.Time{}, false, nil
	}

	return numericDate.Time, true, nil
}

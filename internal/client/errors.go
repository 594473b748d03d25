package client

import "errors"

var (
	// ErrUnknownCommand is returned for a sub-command the client does not know.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage is returned when a sub-command gets the wrong arguments.
	ErrUsage = errors.New("usage")
	// ErrNotAuthenticated is returned by commands that need a valid session.
	ErrNotAuthenticated = errors.New("not authenticated, run login first")
)

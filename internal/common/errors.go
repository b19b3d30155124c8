// Package common holds error values shared across layers so that services,
// repositories, and controllers can agree on outcomes via errors.Is without
// importing each other.
package common

import "errors"

var (
	// ErrDuplicateEmail is returned when registering an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateUsername is returned when registering a username that is
	// already taken.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// Callers must never learn which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmptyWaypoints is returned when a path submission contains no
	// waypoints to ingest.
	ErrEmptyWaypoints = errors.New("waypoints must be a non-empty list")

	// ErrNotFound is the generic row-absent error surfaced by repositories.
	ErrNotFound = errors.New("not found")
)

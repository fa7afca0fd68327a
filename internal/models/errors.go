package models

import "errors"

// The four expected failure kinds of the user core. Operations wrap
// these with context via fmt.Errorf("...: %w", ...); callers branch
// with errors.Is. Anything not wrapping one of these is an internal
// fault and must not be mapped to a client error.
var (
	// ErrDuplicateEntity signals a signup for an already-taken username.
	ErrDuplicateEntity = errors.New("entity already exists")

	// ErrEntityNotFound signals a lookup or update against an absent user.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrUnauthorized signals a credential mismatch during login.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrBadParameters signals malformed or missing input.
	ErrBadParameters = errors.New("bad parameters")
)

package services

import "errors"

// Expected business outcomes. Handlers translate these into HTTP statuses;
// anything else coming out of a service is an internal error.
var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden indicates the principal lacks the required role.
	ErrForbidden = errors.New("not authorized")
	// ErrUnauthenticated indicates a missing, invalid, or orphaned token.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrTokenExpired indicates the token's expiry has passed.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenMalformed indicates a bad signature, structure, or missing subject.
	ErrTokenMalformed = errors.New("token is malformed")
)

// Package common defines shared constants, helpers, and sentinel errors used
// across gatekeeper components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorAlreadyExists = errors.New("already exists")

	// Login failures. Unknown user and wrong password intentionally share
	// this single kind so that a failed login never reveals whether the
	// account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token parse failure kinds reported by the codec.
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenExpired          = errors.New("token expired")

	// Session resolution failures. A token that is forged, expired, or
	// refers to an account that no longer exists all collapse into
	// ErrInvalidToken; only a deactivated account is reported separately.
	ErrInvalidToken    = errors.New("invalid token")
	ErrInactiveAccount = errors.New("inactive account")

	// Authorization failure: resolved identity lacks every required role.
	ErrInsufficientRole = errors.New("insufficient role")

	// Hashing/encoding failure, e.g. a secret over bcrypt's byte limit.
	ErrEncoding = errors.New("encoding error")
)

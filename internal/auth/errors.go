package auth

import "errors"

// Token validation outcomes. The messages are stable contract strings
// surfaced verbatim to API clients.
var (
	ErrTokenInvalid     = errors.New("Invalid token. Please log in again.")
	ErrTokenExpired     = errors.New("Signature expired. Please log in again.")
	ErrTokenBlacklisted = errors.New("Token blacklisted. Please log in again.")
)

// ErrPasswordEncoding reports a plaintext password that bcrypt cannot
// process (for example, input over the algorithm's length ceiling).
var ErrPasswordEncoding = errors.New("password cannot be encoded")

// Contract messages for outcomes that are not token errors.
const (
	MsgBearerMalformed  = "Bearer token malformed"
	MsgPermissionDenied = "Permission denied, Please Login as Admin"
)

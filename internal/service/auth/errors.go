package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidToken indicates the token format is invalid or the
	// signature doesn't match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim
	// in the future).
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrStaleToken indicates the token was once valid but has been
	// superseded: a logout or a later login replaced the user's stored
	// session token. At most one credential per user is valid at a time.
	ErrStaleToken = errors.New("authentication token has been revoked")

	// ErrWrongPassword indicates a login attempt with a password that does
	// not match the stored hash.
	ErrWrongPassword = errors.New("password does not match")

	// ErrNotVerified indicates a login attempt on an account that has not
	// completed email verification.
	ErrNotVerified = errors.New("email not verified")
)

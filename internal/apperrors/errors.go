// Package apperrors defines the error taxonomy shared by services and
// handlers. Services return these; the HTTP layer maps them to status codes.
package apperrors

import "errors"

var (
	// ErrValidation marks user-correctable input errors. Wrap it with
	// fmt.Errorf("%w: ...") to carry the field detail.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned when a username is already taken.
	ErrConflict = errors.New("username already exists")

	// ErrNotFound is returned by lookups for absent records.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials covers both unknown username and wrong
	// password so callers cannot enumerate registered usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenMissing means no bearer token was presented.
	ErrTokenMissing = errors.New("authorization token missing")

	// ErrTokenInvalid means the token failed signature or structural checks.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired means the token was well-formed and correctly
	// signed but its expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrInternal marks unexpected failures in hashing, signing or
	// storage. The message shown to callers stays generic.
	ErrInternal = errors.New("internal error")
)

package service

import "errors"

// Errors crossing the service boundary. Handlers map these onto HTTP
// responses; nothing else escapes the services as a typed condition.
var (
	// ErrNotFound covers both a missing record and a record owned by a
	// different user. The two cases are deliberately indistinguishable so
	// that ownership scoping never leaks existence of other users' boats.
	ErrNotFound = errors.New("not found")
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, deliberately without distinction.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

package repository

import "errors"

// Sentinel errors returned by repository implementations.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

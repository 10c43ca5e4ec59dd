package domain

import "errors"

// Sentinel errors for repository-level error discrimination.
// Repositories wrap these; services translate them into typed Failures.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

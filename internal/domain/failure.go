package domain

import (
	"fmt"
	"strings"
)

// Failure is a request-processing failure that the HTTP edge knows how to
// render. The set of implementations is closed: only types in this package
// satisfy it.
type Failure interface {
	error
	failure()
}

// Duplicate names a resource whose uniqueness constraint was violated.
type Duplicate string

const (
	DuplicateEmail    Duplicate = "email"
	DuplicateNickname Duplicate = "nickname"
	DuplicateMemo     Duplicate = "memo"
)

// Missing names a resource kind that a lookup failed to find.
type Missing string

const (
	MissingAuthority Missing = "authority"
	MissingUser      Missing = "user"
	MissingTeam      Missing = "team"
	MissingSystem    Missing = "system"
	MissingMemo      Missing = "memo"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string
	Message string
}

// ValidationFailure carries field errors in the order the validator reported them.
type ValidationFailure struct {
	Fields []FieldError
}

func (f *ValidationFailure) Error() string {
	parts := make([]string, len(f.Fields))
	for i, fe := range f.Fields {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// DuplicateFailure reports that a resource with the same unique key exists.
type DuplicateFailure struct {
	Resource Duplicate
}

func (f *DuplicateFailure) Error() string { return fmt.Sprintf("duplicate %s", f.Resource) }

// NotFoundFailure reports a lookup of a resource that does not exist.
type NotFoundFailure struct {
	Resource Missing
}

func (f *NotFoundFailure) Error() string { return fmt.Sprintf("%s not found", f.Resource) }

// AuthFailure reports an unauthenticated or no-longer-authorized caller.
type AuthFailure struct {
	Reason string
}

func (f *AuthFailure) Error() string { return "unauthorized: " + f.Reason }

// CredentialMismatch reports a password that does not match the stored hash.
type CredentialMismatch struct{}

func (f *CredentialMismatch) Error() string { return "bad credentials" }

func (*ValidationFailure) failure()  {}
func (*DuplicateFailure) failure()   {}
func (*NotFoundFailure) failure()    {}
func (*AuthFailure) failure()        {}
func (*CredentialMismatch) failure() {}

// Invalid builds a single-field ValidationFailure.
func Invalid(field, message string) *ValidationFailure {
	return &ValidationFailure{Fields: []FieldError{{Field: field, Message: message}}}
}

func Duplicated(r Duplicate) *DuplicateFailure { return &DuplicateFailure{Resource: r} }

func NotFound(r Missing) *NotFoundFailure { return &NotFoundFailure{Resource: r} }

func Unauthorized(reason string) *AuthFailure { return &AuthFailure{Reason: reason} }

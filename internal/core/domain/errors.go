package domain

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error leaving the core unwraps to one of these.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid username/email or password")
)

// ResourceError ties a failure kind to the resource (and optionally the field)
// it concerns, so the transport layer can render a precise message without
// inspecting strings.
type ResourceError struct {
	Kind     error
	Resource string
	Field    string
	Value    string
	Detail   string
}

func (e *ResourceError) Error() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case errors.Is(e.Kind, ErrConflict) && e.Field != "":
		return fmt.Sprintf("%s with %s %q already exists", e.Resource, e.Field, e.Value)
	case errors.Is(e.Kind, ErrNotFound):
		return e.Resource + " not found"
	case e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Resource, e.Kind)
}

func (e *ResourceError) Unwrap() error { return e.Kind }

// NotFound reports a missing record of the given resource.
func NotFound(resource string) error {
	return &ResourceError{Kind: ErrNotFound, Resource: resource}
}

// Conflict reports a unique key already held by another record.
func Conflict(resource string, key Key) error {
	return &ResourceError{Kind: ErrConflict, Resource: resource, Field: key.Field, Value: key.Value}
}

// Invalid reports a malformed or missing field.
func Invalid(field, detail string) error {
	return &ResourceError{Kind: ErrInvalidInput, Field: field, Detail: detail}
}

package domain

import (
	"errors"
	"fmt"
)

// NotFoundError marks lookups for records that do not exist.
type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError is a business-rule rejection caught before any mutation.
// No partial state change has happened when one is returned.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// ConfigError reports a setting value that cannot be coerced to the type the
// caller asked for. Numeric consumers must surface it, never fall back to zero.
type ConfigError struct {
	Key   string
	Value string
	Want  string
}

func (e ConfigError) Error() string {
	if e.Key == "" {
		return "malformed setting"
	}
	return fmt.Sprintf("setting %s: value %q is not a valid %s", e.Key, e.Value, e.Want)
}

// PersistenceError wraps storage failures. Callers must assume the write did
// not happen and must not advance any in-memory projection.
type PersistenceError struct {
	Op  string
	Err error
}

func (e PersistenceError) Error() string {
	if e.Op == "" {
		return "persistence failure"
	}
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e PersistenceError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConfig(err error) bool {
	var target ConfigError
	return errors.As(err, &target)
}

func IsPersistence(err error) bool {
	var target PersistenceError
	return errors.As(err, &target)
}

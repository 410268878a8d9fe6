package domain

import (
	"fmt"
	"strings"
)

// NotFoundError reports a lookup that matched nothing.
type NotFoundError struct {
	ResourceType string
	ResourceID   any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", strings.ToLower(e.ResourceType), e.ResourceID)
}

// BodyUnreadableError reports a request body that could not be decoded.
type BodyUnreadableError struct {
	Message string
	Cause   error
}

func (e *BodyUnreadableError) Error() string {
	return e.Message
}

func (e *BodyUnreadableError) Unwrap() error {
	return e.Cause
}

// ValidationError aggregates every failed field rule of one request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// TypeMismatchError reports a path or query parameter of the wrong type.
type TypeMismatchError struct {
	Param        string
	Value        string
	ExpectedType string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("parameter %s: cannot convert %q to %s", e.Param, e.Value, e.ExpectedType)
}

// ConstraintViolationError reports a broken uniqueness or integrity rule.
type ConstraintViolationError struct {
	Message string
	Cause   error
}

func (e *ConstraintViolationError) Error() string {
	return e.Message
}

func (e *ConstraintViolationError) Unwrap() error {
	return e.Cause
}

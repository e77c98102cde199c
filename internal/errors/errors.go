package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// DefaultMessage is shown when an error carries no public message of its own
const DefaultMessage = "Something went wrong"

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// FieldViolation is a single failed rule on a single payload field
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError represents a rejected payload. It carries every violated
// field, not only the first one.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return strings.Join(msgs, ",")
}

// Fields returns the names of the violated fields in report order
func (e *ValidationError) Fields() []string {
	fields := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		fields[i] = v.Field
	}
	return fields
}

// StoreError wraps a failure of the underlying persistence layer
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to %s", e.Op)
	}
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrCampgroundNotFound = &NotFoundError{Entity: "campground"}
	ErrReviewNotFound     = &NotFoundError{Entity: "review"}
	ErrPageNotFound       = &NotFoundError{Entity: "page"}
)

// Configuration Errors
var (
	ErrUnknownDriver = errors.New("unknown database driver")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsStore checks if an error is a StoreError
func IsStore(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a ValidationError with a single violation
func NewValidationError(field, message string) error {
	return &ValidationError{Violations: []FieldViolation{{Field: field, Message: message}}}
}

// NewStoreError wraps err as a StoreError for the named operation.
// Typed not-found errors pass through untouched.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsNotFound(err) || IsStore(err) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

// HTTPStatus maps an error to the status code the error responder sends
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message that may be shown to the client.
// Store errors expose only the failed operation, never the cause.
func PublicMessage(err error) string {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
		storeErr      *StoreError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.As(err, &notFoundErr):
		return notFoundErr.Error()
	case errors.As(err, &storeErr):
		return fmt.Sprintf("failed to %s", storeErr.Op)
	default:
		return DefaultMessage
	}
}

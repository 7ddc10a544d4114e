package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a dayplan error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrCorruptData    ErrorCode = "CORRUPT_DATA"    // 422
	ErrInternal       ErrorCode = "INTERNAL"        // 500
	ErrSuggestFailed  ErrorCode = "SUGGEST_FAILED"  // 502
)

// PlanError represents a structured error with code, status, and details.
type PlanError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *PlanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *PlanError {
	return &PlanError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for when an activity cannot be found.
func NewNotFound(id string) *PlanError {
	return &PlanError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("activity not found: %s", id),
		Details: map[string]any{"id": id},
	}
}

// NewCorruptData creates a 422 error for an unreadable persisted document.
func NewCorruptData(slot string, cause error) *PlanError {
	details := map[string]any{"slot": slot}
	if cause != nil {
		details["parse_error"] = cause.Error()
	}
	return &PlanError{
		Code:    ErrCorruptData,
		Status:  422,
		Message: fmt.Sprintf("stored document in slot %q is not valid JSON", slot),
		Details: details,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
// The message is generic; the underlying error is kept in Details for logging.
func NewInternal(err error) *PlanError {
	details := map[string]any{}
	if err != nil {
		details["internal_error"] = err.Error()
	}
	return &PlanError{
		Code:    ErrInternal,
		Status:  500,
		Message: "an internal error occurred",
		Details: details,
	}
}

// NewSuggestFailed creates a 502 error for title-suggestion collaborator failures.
func NewSuggestFailed(msg string) *PlanError {
	return &PlanError{
		Code:    ErrSuggestFailed,
		Status:  502,
		Message: msg,
	}
}

// Is checks if an error (possibly wrapped) is a PlanError with the given code.
func Is(err error, code ErrorCode) bool {
	var pErr *PlanError
	if stderrors.As(err, &pErr) {
		return pErr.Code == code
	}
	return false
}

// Package errors provides standardized error handling for the responder.
//
// The routing/handler boundary never lets one of these escape to the
// caller as a fault: every failure mode is translated into user-facing
// response text before return. The structured form exists for logging,
// metrics and for tests that assert on the failure class.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeStoreUnavailable     ErrorCode = "STORE_UNAVAILABLE"
	ErrCodeQueryExecutionFailed ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeRecordNotFound       ErrorCode = "RECORD_NOT_FOUND"

	ErrCodeClassifierFailed  ErrorCode = "CLASSIFIER_FAILED"
	ErrCodeClassifierTimeout ErrorCode = "CLASSIFIER_TIMEOUT"

	ErrCodeInvalidCategory ErrorCode = "INVALID_CATEGORY"

	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// Error Constructors
// ==========================

// NewStoreUnavailableError marks a failed connection acquisition. Terminal
// for the request, never retried automatically.
func NewStoreUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreUnavailable,
		Message:   "Record store connection error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryExecutionFailedError marks a lookup that failed after the
// connection was established.
func NewQueryExecutionFailedError(table string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Record store query error",
		Details:   fmt.Sprintf("table: %s, error: %s", table, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRecordNotFoundError marks an empty lookup result. Handlers recover it
// into the not-found response variant.
func NewRecordNotFoundError(table, field, value string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRecordNotFound,
		Message:   "No record matched the extracted identifier",
		Details:   fmt.Sprintf("table: %s, %s = %s", table, field, value),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewClassifierFailedError marks a completion-service call failure. The
// router recovers it by falling back to the catch-all category.
func NewClassifierFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeClassifierFailed,
		Message:   "Classification service error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewClassifierTimeoutError marks a completion-service timeout.
func NewClassifierTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeClassifierTimeout,
		Message:   "Classification service timeout",
		Details:   "completion call exceeded timeout threshold",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidCategoryError marks a dispatch request for a label outside the
// closed category set.
func NewInvalidCategoryError(category string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidCategory,
		Message:   "Unknown query category",
		Details:   fmt.Sprintf("category: %s", category),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError marks a reply-delivery or escalation
// failure. Delivery is best-effort and never alters the response text.
func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// Utility Functions
// ==========================

// CodeOf extracts the ErrorCode from an error chain, or "" if the chain
// carries no StandardError.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// IsCode reports whether the error chain carries a StandardError with the
// given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// Package errors provides structured error handling for the quill backend.
// It defines error types with codes, messages, causes, and contextual
// information so failures can be traced across the application layers.
package errors

import (
	"fmt"
	"log/slog"

	"quill/domain"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

// Error code constants for categorizing application errors.
const (
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeUnauthorized  ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden     ErrorCode = "FORBIDDEN"
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeNotConfigured ErrorCode = "NOT_CONFIGURED"
	ErrCodeExternalAPI   ErrorCode = "EXTERNAL_API_ERROR"
	ErrCodeTimeout       ErrorCode = "TIMEOUT_ERROR"
	ErrCodeDatabase      ErrorCode = "DATABASE_ERROR"
	ErrCodeUnknown       ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code, message,
// cause, and context. It implements the error interface and supports
// error unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns a string representation of the AppError.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is maps error codes onto the sentinel errors so errors.Is and the
// Is* helpers recognize constructed AppErrors.
func (e *AppError) Is(target error) bool {
	switch target {
	case domain.ErrPostNotFound, domain.ErrArticleNotFound:
		return e.Code == ErrCodeNotFound
	case domain.ErrUnauthorized:
		return e.Code == ErrCodeUnauthorized
	case domain.ErrForbidden:
		return e.Code == ErrCodeForbidden
	case domain.ErrRemoteNotConfigured:
		return e.Code == ErrCodeNotConfigured
	case ErrRemoteUnavailable:
		return e.Code == ErrCodeExternalAPI
	case ErrOperationTimeout:
		return e.Code == ErrCodeTimeout
	case ErrInvalidInput:
		return e.Code == ErrCodeValidation
	}
	return false
}

// ValidationError creates an AppError for input validation failures.
func ValidationError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Context: context,
	}
}

// UnauthorizedError creates an AppError for missing or invalid sessions.
func UnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeUnauthorized,
		Message: message,
	}
}

// ForbiddenError creates an AppError for ownership or role mismatches.
func ForbiddenError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeForbidden,
		Message: message,
	}
}

// NotFoundError creates an AppError for absent entities.
func NotFoundError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: message,
		Context: context,
	}
}

// NotConfiguredError creates an AppError for operations that need the
// remote workspace integration when it is not set up.
func NotConfiguredError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeNotConfigured,
		Message: message,
	}
}

// ExternalAPIError creates an AppError for remote workspace call failures.
func ExternalAPIError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeExternalAPI,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// TimeoutError creates an AppError for timeout-related errors.
func TimeoutError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeTimeout,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// DatabaseError creates an AppError for user-store failures.
func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeDatabase,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// UnknownError creates an AppError for unclassified errors.
func UnknownError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeUnknown,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// LogError logs an AppError with structured logging and context.
func LogError(logger *slog.Logger, err error, operation string) {
	if logger == nil {
		return
	}

	if appErr, ok := err.(*AppError); ok {
		args := []interface{}{
			"operation", operation,
			"error_code", string(appErr.Code),
			"error_message", appErr.Message,
		}

		if appErr.Context != nil {
			for key, value := range appErr.Context {
				args = append(args, key, value)
			}
		}

		if appErr.Cause != nil {
			args = append(args, "cause", appErr.Cause.Error())
		}

		logger.Error("application error occurred", args...)
	} else {
		logger.Error("unknown error occurred",
			"operation", operation,
			"error", err.Error(),
		)
	}
}

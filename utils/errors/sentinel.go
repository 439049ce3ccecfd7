package errors

import (
	"errors"

	"quill/domain"
)

// Sentinel errors usable with errors.Is() and errors.As() across
// layers. Entity sentinels live in domain; only conditions with no
// domain counterpart are declared here.
var (
	ErrRemoteUnavailable = errors.New("remote workspace unavailable")
	ErrOperationTimeout  = errors.New("operation timeout")
	ErrInvalidInput      = errors.New("invalid input")
)

// IsPostNotFound checks if an error represents a "post not found" condition.
func IsPostNotFound(err error) bool {
	return errors.Is(err, domain.ErrPostNotFound) || errors.Is(err, domain.ErrArticleNotFound)
}

// IsRemoteUnavailable checks if an error represents a remote workspace outage.
func IsRemoteUnavailable(err error) bool {
	return errors.Is(err, ErrRemoteUnavailable)
}

// IsNotConfigured checks if an error means the remote integration lacks credentials.
func IsNotConfigured(err error) bool {
	return errors.Is(err, domain.ErrRemoteNotConfigured)
}

// IsTimeoutError checks if an error represents a timeout condition.
func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrOperationTimeout)
}

// IsValidationError checks if an error represents invalid input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsRetryableError determines if an error represents a condition that can be retried.
func IsRetryableError(err error) bool {
	return IsRemoteUnavailable(err) || IsTimeoutError(err)
}

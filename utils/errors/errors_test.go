package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"quill/domain"
)

func TestHelpersMatchConstructedErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		matches func(error) bool
	}{
		{
			name:    "validation error",
			err:     ValidationError("title is required", nil),
			matches: IsValidationError,
		},
		{
			name:    "not configured error",
			err:     NotConfiguredError("remote store is not configured"),
			matches: IsNotConfigured,
		},
		{
			name:    "not found error",
			err:     NotFoundError("article not found", nil),
			matches: IsPostNotFound,
		},
		{
			name:    "timeout error",
			err:     TimeoutError("query timed out", context.DeadlineExceeded, nil),
			matches: IsTimeoutError,
		},
		{
			name:    "external API error",
			err:     ExternalAPIError("remote query failed", errors.New("boom"), nil),
			matches: IsRemoteUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.matches(tt.err))
		})
	}
}

func TestHelpersMatchDomainSentinels(t *testing.T) {
	assert.True(t, IsPostNotFound(domain.ErrPostNotFound))
	assert.True(t, IsPostNotFound(domain.ErrArticleNotFound))
	assert.True(t, IsNotConfigured(domain.ErrRemoteNotConfigured))
	assert.False(t, IsPostNotFound(domain.ErrRemoteNotConfigured))
}

func TestHelpersMatchWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("list articles: %w", NotFoundError("article not found", nil))
	assert.True(t, IsPostNotFound(wrapped))

	chained := ExternalAPIError("remote query failed", domain.ErrArticleNotFound, nil)
	assert.True(t, errors.Is(chained, domain.ErrArticleNotFound))
}

func TestHelpersRejectOtherCodes(t *testing.T) {
	err := UnauthorizedError("session expired")
	assert.False(t, IsValidationError(err))
	assert.False(t, IsPostNotFound(err))
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	assert.True(t, errors.Is(ForbiddenError("not yours"), domain.ErrForbidden))
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, IsRetryableError(TimeoutError("slow", nil, nil)))
	assert.True(t, IsRetryableError(ExternalAPIError("down", nil, nil)))
	assert.False(t, IsRetryableError(ValidationError("bad", nil)))
}

package rate_limiter

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RemoteAPILimiter throttles outbound calls to the workspace API. The
// vendor enforces roughly three requests per second per integration, so
// every driver call waits here before going out.
type RemoteAPILimiter struct {
	limiter *rate.Limiter
}

// NewRemoteAPILimiter creates a limiter that allows one call per interval
// with a single-token burst.
func NewRemoteAPILimiter(interval time.Duration) *RemoteAPILimiter {
	return &RemoteAPILimiter{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Wait blocks until the next call is allowed or the context is done.
func (l *RemoteAPILimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

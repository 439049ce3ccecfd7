package rate_limiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemoteAPILimiter_FirstCallIsImmediate(t *testing.T) {
	limiter := NewRemoteAPILimiter(time.Second)

	start := time.Now()
	err := limiter.Wait(context.Background())

	assert.NoError(t, err)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestRemoteAPILimiter_SecondCallWaits(t *testing.T) {
	limiter := NewRemoteAPILimiter(200 * time.Millisecond)

	assert.NoError(t, limiter.Wait(context.Background()))

	start := time.Now()
	assert.NoError(t, limiter.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
}

func TestRemoteAPILimiter_RespectsContextCancellation(t *testing.T) {
	limiter := NewRemoteAPILimiter(time.Hour)

	assert.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx)
	assert.Error(t, err)
}

package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindowLimiter_AllowsUnderLimit(t *testing.T) {
	rl := NewFixedWindowLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		ok, _ := rl.Allow("10.0.0.1")
		assert.True(t, ok, "request %d should be allowed", i+1)
	}
}

func TestFixedWindowLimiter_BlocksOverLimit(t *testing.T) {
	rl := NewFixedWindowLimiter(2, time.Minute)

	rl.Allow("10.0.0.2")
	rl.Allow("10.0.0.2")

	ok, retryAfter := rl.Allow("10.0.0.2")
	assert.False(t, ok)
	assert.Equal(t, time.Minute, retryAfter)
}

func TestFixedWindowLimiter_PerClientCounters(t *testing.T) {
	rl := NewFixedWindowLimiter(1, time.Minute)

	ok, _ := rl.Allow("10.0.0.3")
	assert.True(t, ok)

	ok, _ = rl.Allow("10.0.0.3")
	assert.False(t, ok)

	// a different client still has budget
	ok, _ = rl.Allow("10.0.0.4")
	assert.True(t, ok)
}

func TestFixedWindowLimiter_WindowReset(t *testing.T) {
	rl := NewFixedWindowLimiter(1, 20*time.Millisecond)

	ok, _ := rl.Allow("10.0.0.5")
	assert.True(t, ok)
	ok, _ = rl.Allow("10.0.0.5")
	assert.False(t, ok)

	time.Sleep(50 * time.Millisecond)

	ok, _ = rl.Allow("10.0.0.5")
	assert.True(t, ok)
}

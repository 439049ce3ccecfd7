package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpiring_GetMissesWhenEmpty(t *testing.T) {
	c := NewExpiring[[]string](time.Minute)

	value, ok := c.Get()
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestExpiring_SetThenGet(t *testing.T) {
	c := NewExpiring[[]string](time.Minute)
	c.Set([]string{"a", "b"})

	value, ok := c.Get()
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, value)
}

func TestExpiring_ExpiresAfterTTL(t *testing.T) {
	current := time.Now()
	c := NewExpiring[int](60 * time.Second)
	c.now = func() time.Time { return current }

	c.Set(42)

	current = current.Add(59 * time.Second)
	_, ok := c.Get()
	assert.True(t, ok, "value should still be fresh within the TTL")

	current = current.Add(2 * time.Second)
	_, ok = c.Get()
	assert.False(t, ok, "value should expire once the TTL has elapsed")
}

func TestExpiring_ClearMakesNextGetMiss(t *testing.T) {
	c := NewExpiring[int](time.Hour)
	c.Set(7)

	c.Clear()

	_, ok := c.Get()
	assert.False(t, ok)
}

func TestKeyed_IndependentEntries(t *testing.T) {
	current := time.Now()
	c := NewKeyed[string, int](time.Minute)
	c.now = func() time.Time { return current }

	c.Set("db-1", 1)
	current = current.Add(45 * time.Second)
	c.Set("db-2", 2)

	current = current.Add(30 * time.Second)

	_, ok := c.Get("db-1")
	assert.False(t, ok, "older entry should have expired")

	value, ok := c.Get("db-2")
	assert.True(t, ok)
	assert.Equal(t, 2, value)
}

func TestKeyed_GetStaleServesExpiredEntry(t *testing.T) {
	current := time.Now()
	c := NewKeyed[string, []string](time.Second)
	c.now = func() time.Time { return current }

	c.Set("db-1", []string{"post"})
	current = current.Add(time.Hour)

	_, ok := c.Get("db-1")
	assert.False(t, ok)

	value, ok := c.GetStale("db-1")
	assert.True(t, ok)
	assert.Equal(t, []string{"post"}, value)
}

func TestKeyed_Clear(t *testing.T) {
	c := NewKeyed[string, int](time.Hour)
	c.Set("db-1", 1)

	c.Clear()

	_, ok := c.GetStale("db-1")
	assert.False(t, ok)
}

package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_EmptyMisses(t *testing.T) {
	cache := NewCache(time.Minute)

	_, _, ok := cache.Get()
	assert.False(t, ok)
}

func TestCache_HitWithinTTL(t *testing.T) {
	cache := NewCache(time.Minute)
	cache.Set("a,b\nc,d\n", SourceExport)

	csv, source, ok := cache.Get()
	assert.True(t, ok)
	assert.Equal(t, "a,b\nc,d\n", csv)
	assert.Equal(t, SourceExport, source)
}

func TestCache_ExpiresAfterTTL(t *testing.T) {
	now := time.Now()
	cache := NewCache(30 * time.Minute)
	cache.now = func() time.Time { return now }

	cache.Set("a,b\nc,d\n", SourceAPI)

	now = now.Add(29 * time.Minute)
	_, _, ok := cache.Get()
	assert.True(t, ok, "entry should still be fresh at 29m")

	now = now.Add(time.Minute)
	_, _, ok = cache.Get()
	assert.False(t, ok, "entry should expire at 30m")
}

func TestCache_SetRefreshesExpiry(t *testing.T) {
	now := time.Now()
	cache := NewCache(10 * time.Minute)
	cache.now = func() time.Time { return now }

	cache.Set("old", SourceAPI)
	now = now.Add(9 * time.Minute)
	cache.Set("new", SourceExport)
	now = now.Add(9 * time.Minute)

	csv, source, ok := cache.Get()
	assert.True(t, ok)
	assert.Equal(t, "new", csv)
	assert.Equal(t, SourceExport, source)
}

func TestCache_NonPositiveTTLUsesDefault(t *testing.T) {
	cache := NewCache(0)
	assert.Equal(t, DefaultCacheTTL, cache.ttl)
}

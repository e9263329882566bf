package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheProvider_SetGetDel(t *testing.T) {
	conf := validTestConfig(t.TempDir())
	c := NewCacheProvider(conf, &mockLogger{})

	_, ok := c.Get("view:default")
	assert.False(t, ok)

	c.Set("view:default", []byte("payload"))
	val, ok := c.Get("view:default")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), val)

	c.Del("view:default")
	_, ok = c.Get("view:default")
	assert.False(t, ok)
}

func TestCacheProvider_DisabledReturnsNoop(t *testing.T) {
	conf := validTestConfig(t.TempDir())
	conf.Cache.Enabled = false
	c := NewCacheProvider(conf, &mockLogger{})

	c.Set("key", []byte("payload"))
	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestCacheProvider_ZeroSizeReturnsNoop(t *testing.T) {
	conf := validTestConfig(t.TempDir())
	conf.Cache.Size = 0
	c := NewCacheProvider(conf, &mockLogger{})

	c.Set("key", []byte("payload"))
	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestInstrumentedCacheProvider_CountsHitsAndMisses(t *testing.T) {
	conf := validTestConfig(t.TempDir())
	metrics := newMockMetrics()
	c := NewInstrumentedCacheProvider(conf, &mockLogger{}, metrics)

	_, ok := c.Get("key")
	assert.False(t, ok)
	assert.Equal(t, 1, metrics.misses)

	c.Set("key", []byte("payload"))
	_, ok = c.Get("key")
	assert.True(t, ok)
	assert.Equal(t, 1, metrics.hits)
	assert.Equal(t, 1, metrics.misses)
}

func TestInstrumentedCacheProvider_DisabledStaysUninstrumented(t *testing.T) {
	conf := validTestConfig(t.TempDir())
	conf.Cache.Enabled = false
	metrics := newMockMetrics()
	c := NewInstrumentedCacheProvider(conf, &mockLogger{}, metrics)

	_, ok := c.Get("key")
	assert.False(t, ok)
	assert.Zero(t, metrics.misses)
}

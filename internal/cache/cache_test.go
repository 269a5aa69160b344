package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGetDelete(t *testing.T) {
	c := New(true)

	etag := c.Set("k", []byte(`{"a":1}`), time.Minute)
	require.NotEmpty(t, etag)

	data, gotETag, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), data)
	assert.Equal(t, etag, gotETag)

	c.Delete("k")
	_, _, ok = c.Get("k")
	assert.False(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	c := New(true)
	c.Set("k", []byte("v"), -time.Second)
	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCache_Disabled(t *testing.T) {
	c := New(false)
	etag := c.Set("k", []byte("v"), time.Minute)
	assert.NotEmpty(t, etag, "disabled cache still computes ETags")

	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestComputeETag_Deterministic(t *testing.T) {
	a := ComputeETag([]byte("payload"))
	b := ComputeETag([]byte("payload"))
	other := ComputeETag([]byte("different"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, other)
	assert.Contains(t, a, `W/"`)
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("payload"))

	assert.True(t, CheckETagMatch(etag, etag))
	assert.True(t, CheckETagMatch("*", etag))
	assert.False(t, CheckETagMatch("", etag))
	assert.False(t, CheckETagMatch(`W/"other"`, etag))
}

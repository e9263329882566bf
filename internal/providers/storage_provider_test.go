package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*FileStorageProvider, *mockLogger) {
	t.Helper()
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	t.Cleanup(compressor.Close)

	logger := &mockLogger{}
	conf := validTestConfig(t.TempDir())
	provider, err := NewStorageProvider(conf, compressor, logger)
	require.NoError(t, err)
	return provider.(*FileStorageProvider), logger
}

func TestStorage_PutGetRoundTrip(t *testing.T) {
	fs, _ := newTestStorage(t)

	require.NoError(t, fs.Put("roster:default", []byte(`{"entries":[]}`), 0))
	val, ok, err := fs.Get("roster:default")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"entries":[]}`), val)
}

func TestStorage_MissingKey(t *testing.T) {
	fs, _ := newTestStorage(t)

	_, ok, err := fs.Get("nothing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorage_OverwriteReplacesValue(t *testing.T) {
	fs, _ := newTestStorage(t)

	require.NoError(t, fs.Put("key", []byte("first"), 0))
	require.NoError(t, fs.Put("key", []byte("second"), 0))

	val, ok, err := fs.Get("key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("second"), val)
}

func TestStorage_Delete(t *testing.T) {
	fs, _ := newTestStorage(t)

	require.NoError(t, fs.Put("key", []byte("value"), 0))
	require.NoError(t, fs.Delete("key"))

	_, ok, err := fs.Get("key")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is not an error.
	assert.NoError(t, fs.Delete("key"))
}

func TestStorage_TTLEnforcedLazilyOnRead(t *testing.T) {
	fs, _ := newTestStorage(t)

	base := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	fs.now = func() time.Time { return base }
	require.NoError(t, fs.Put("view:default", []byte("doc"), time.Minute))

	fs.now = func() time.Time { return base.Add(59 * time.Second) }
	_, ok, err := fs.Get("view:default")
	require.NoError(t, err)
	assert.True(t, ok)

	fs.now = func() time.Time { return base.Add(61 * time.Second) }
	_, ok, err = fs.Get("view:default")
	require.NoError(t, err)
	assert.False(t, ok)

	// The expired file was dropped, not just hidden.
	fs.now = func() time.Time { return base }
	_, ok, err = fs.Get("view:default")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorage_ZeroTTLNeverExpires(t *testing.T) {
	fs, _ := newTestStorage(t)

	fs.now = func() time.Time { return time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC) }
	require.NoError(t, fs.Put("installations", []byte("{}"), 0))

	fs.now = func() time.Time { return time.Date(2035, time.January, 15, 12, 0, 0, 0, time.UTC) }
	_, ok, err := fs.Get("installations")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStorage_KeysWithSeparatorsShareNoFile(t *testing.T) {
	fs, _ := newTestStorage(t)

	require.NoError(t, fs.Put("roster:a", []byte("A"), 0))
	require.NoError(t, fs.Put("view:a", []byte("B"), 0))

	val, ok, err := fs.Get("roster:a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("A"), val)
}

func TestStorage_PathTraversalNeutralized(t *testing.T) {
	fs, _ := newTestStorage(t)

	require.NoError(t, fs.Put("../../etc/passwd", []byte("x"), 0))
	val, ok, err := fs.Get("../../etc/passwd")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("x"), val)
}

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBackendContract exercises the [Backend] interface the same way
// against any implementation, so LocalBackend and MemoryBackend both prove
// they satisfy identical read/write/list/delete semantics. SQLiteBackend is
// tested separately against sqlmock and does not run this contract.
func testBackendContract(t *testing.T, newBackend func(t *testing.T) Backend) {
	t.Helper()
	ctx := context.Background()

	t.Run("read missing returns ErrNotFound", func(t *testing.T) {
		b := newBackend(t)
		_, err := b.ReadFile(ctx, "channels/abc/evt-1.json")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("write then read round trips", func(t *testing.T) {
		b := newBackend(t)
		data := []byte(`{"hello":"world"}`)
		require.NoError(t, b.WriteFile(ctx, "channels/abc/evt-1.json", data))

		got, err := b.ReadFile(ctx, "channels/abc/evt-1.json")
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("write overwrites existing path", func(t *testing.T) {
		b := newBackend(t)
		require.NoError(t, b.WriteFile(ctx, "blocks/aa/aa11.bin", []byte("first")))
		require.NoError(t, b.WriteFile(ctx, "blocks/aa/aa11.bin", []byte("second")))

		got, err := b.ReadFile(ctx, "blocks/aa/aa11.bin")
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), got)
	})

	t.Run("exists reflects presence", func(t *testing.T) {
		b := newBackend(t)
		ok, err := b.Exists(ctx, "channels/abc/evt-2.json")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, b.WriteFile(ctx, "channels/abc/evt-2.json", []byte("x")))
		ok, err = b.Exists(ctx, "channels/abc/evt-2.json")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("delete removes the file", func(t *testing.T) {
		b := newBackend(t)
		require.NoError(t, b.WriteFile(ctx, "channels/abc/evt-3.json", []byte("x")))
		require.NoError(t, b.DeleteFile(ctx, "channels/abc/evt-3.json"))

		_, err := b.ReadFile(ctx, "channels/abc/evt-3.json")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete of missing path is not an error", func(t *testing.T) {
		b := newBackend(t)
		assert.NoError(t, b.DeleteFile(ctx, "channels/abc/never-existed.json"))
	})

	t.Run("list returns only direct children", func(t *testing.T) {
		b := newBackend(t)
		require.NoError(t, b.WriteFile(ctx, "channels/xyz/evt-1.json", []byte("1")))
		require.NoError(t, b.WriteFile(ctx, "channels/xyz/evt-2.json", []byte("2")))
		require.NoError(t, b.WriteFile(ctx, "channels/other/evt-9.json", []byte("9")))

		names, err := b.ListFiles(ctx, "channels/xyz")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"evt-1.json", "evt-2.json"}, names)
	})

	t.Run("list of empty directory returns empty slice", func(t *testing.T) {
		b := newBackend(t)
		names, err := b.ListFiles(ctx, "channels/never-written")
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}

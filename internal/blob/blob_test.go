package blob

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	info, err := st.Put(ctx, "backups/daoteng_backup_2026-08-28.json", strings.NewReader(`{"version":"1.1"}`), "application/json")
	require.NoError(t, err)
	assert.Equal(t, int64(17), info.Size)

	_, err = st.Put(ctx, "backups/daoteng_backup_2026-08-28.json", strings.NewReader(`{}`), "application/json")
	require.NoError(t, err)

	got, body, err := st.Get(ctx, "backups/daoteng_backup_2026-08-28.json")
	require.NoError(t, err)
	defer body.Close()
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
	assert.Equal(t, int64(2), got.Size)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	_, _, err := NewMemory().Get(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStore_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()
	for _, key := range []string{"backups/b.json", "backups/a.json", "other/c.json"} {
		_, err := st.Put(ctx, key, strings.NewReader("x"), "")
		require.NoError(t, err)
	}

	infos, err := st.List(ctx, "backups/")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "backups/a.json", infos[0].Key)
	assert.Equal(t, "backups/b.json", infos[1].Key)

	ok, err := st.Delete(ctx, "backups/a.json")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = st.Delete(ctx, "backups/a.json")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFilesystemStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st, err := NewFilesystem(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DriverFilesystem, st.Driver())

	_, err = st.Put(ctx, "daoteng_backup_2026-08-28.json", strings.NewReader(`{"version":"1.1"}`), "application/json")
	require.NoError(t, err)

	info, body, err := st.Get(ctx, "daoteng_backup_2026-08-28.json")
	require.NoError(t, err)
	defer body.Close()
	assert.Equal(t, int64(17), info.Size)

	infos, err := st.List(ctx, "daoteng_backup_")
	require.NoError(t, err)
	require.Len(t, infos, 1)

	ok, err := st.Delete(ctx, "daoteng_backup_2026-08-28.json")
	require.NoError(t, err)
	assert.True(t, ok)

	_, _, err = st.Get(ctx, "daoteng_backup_2026-08-28.json")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFilesystemStore_RejectsTraversal(t *testing.T) {
	st, err := NewFilesystem(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "/abs.json", "../escape.json", "a/../../escape.json"} {
		_, err := st.Put(context.Background(), key, strings.NewReader("x"), "")
		assert.Error(t, err, "key %q", key)
	}
}

func TestOpen_SelectsDriver(t *testing.T) {
	ctx := context.Background()

	st, err := Open(ctx, Config{})
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, st.Driver())

	st, err = Open(ctx, Config{Driver: DriverFilesystem, Root: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, DriverFilesystem, st.Driver())

	_, err = Open(ctx, Config{Driver: "tape"})
	assert.Error(t, err)

	_, err = Open(ctx, Config{Driver: DriverS3})
	assert.Error(t, err) // bucket required
}

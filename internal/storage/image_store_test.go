package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, now time.Time) *LocalImageStoreImpl {
	t.Helper()
	store, err := NewLocalImageStore(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	impl := store.(*LocalImageStoreImpl)
	impl.now = func() time.Time { return now }
	return impl
}

func TestLocalImageStore_Save(t *testing.T) {
	ctx := context.Background()
	now := time.UnixMilli(1718000000000)

	t.Run("NamedByUploadTime", func(t *testing.T) {
		store := newTestStore(t, now)

		ref, err := store.Save(ctx, "Flyer.PNG", []byte("png-bytes"))

		require.NoError(t, err)
		assert.Equal(t, "/uploads/1718000000000.png", ref)
		data, err := os.ReadFile(filepath.Join(store.Dir(), "1718000000000.png"))
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))
	})

	t.Run("CollisionGetsSuffix", func(t *testing.T) {
		store := newTestStore(t, now)

		first, err := store.Save(ctx, "a.jpg", []byte("1"))
		require.NoError(t, err)
		second, err := store.Save(ctx, "b.jpg", []byte("2"))
		require.NoError(t, err)

		assert.Equal(t, "/uploads/1718000000000.jpg", first)
		assert.Equal(t, "/uploads/1718000000000-1.jpg", second)
	})

	t.Run("PathInNameIgnored", func(t *testing.T) {
		store := newTestStore(t, now)

		ref, err := store.Save(ctx, "../../etc/passwd.gif", []byte("x"))

		require.NoError(t, err)
		assert.Equal(t, "/uploads/1718000000000.gif", ref)
	})
}

func TestLocalImageStore_RemoveAndList(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, time.UnixMilli(1718000000000))

	ref, err := store.Save(ctx, "a.png", []byte("x"))
	require.NoError(t, err)

	files, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, ref, files[0].Ref)

	require.NoError(t, store.Remove(ctx, ref))
	// 已不存在的檔案視為成功
	require.NoError(t, store.Remove(ctx, ref))

	files, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLocalImageStore_RemoveRejectsTraversal(t *testing.T) {
	store := newTestStore(t, time.Now())

	for _, ref := range []string{"", "/uploads/", "/uploads/../secret", "/etc/passwd", "/uploads/a/b.png"} {
		assert.Error(t, store.Remove(context.Background(), ref), ref)
	}
}

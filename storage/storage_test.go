package storage

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080/storage/")
	require.NoError(t, err)
	return store
}

func TestLocalStoreUploadAndList(t *testing.T) {
	store := newLocalStore(t)

	require.NoError(t, store.Upload("wedding-photos", "1/a.jpg", bytes.NewReader([]byte("aaa"))))
	require.NoError(t, store.Upload("wedding-photos", "1/b.jpg", bytes.NewReader([]byte("bbbb"))))
	require.NoError(t, store.Upload("wedding-photos", "2/c.jpg", bytes.NewReader([]byte("c"))))

	all, err := store.List("wedding-photos", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "1/a.jpg", all[0].Key)
	assert.EqualValues(t, 3, all[0].Size)

	mine, err := store.List("wedding-photos", "1/")
	require.NoError(t, err)
	require.Len(t, mine, 2)

	data, err := os.ReadFile(filepath.Join(store.Root(), "wedding-photos", "1", "b.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("bbbb"), data)
}

func TestLocalStoreListMissingBucket(t *testing.T) {
	store := newLocalStore(t)

	objects, err := store.List("empty-bucket", "")
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestLocalStorePublicURL(t *testing.T) {
	store := newLocalStore(t)
	url := store.PublicURL("our-photos", "1/a.jpg")
	assert.Equal(t, "http://localhost:8080/storage/our-photos/1/a.jpg", url)
}

func TestLocalStoreDelete(t *testing.T) {
	store := newLocalStore(t)

	require.NoError(t, store.Upload("wedding-photos", "1/a.jpg", bytes.NewReader([]byte("aaa"))))
	require.NoError(t, store.Delete("wedding-photos", "1/a.jpg"))

	objects, err := store.List("wedding-photos", "")
	require.NoError(t, err)
	assert.Empty(t, objects)

	// Deleting an absent object is not an error
	require.NoError(t, store.Delete("wedding-photos", "1/a.jpg"))
}

func TestLocalStoreRejectsTraversalKeys(t *testing.T) {
	store := newLocalStore(t)

	err := store.Upload("wedding-photos", "../../evil.jpg", bytes.NewReader([]byte("x")))
	assert.Error(t, err)
}

func TestMakeThumbnail(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 960, 720))))

	thumb, err := MakeThumbnail(buf.Bytes())
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(thumb))
	require.NoError(t, err)
	assert.Equal(t, 480, img.Bounds().Dx())
	assert.Equal(t, 360, img.Bounds().Dy())
}

func TestMakeThumbnailRejectsGarbage(t *testing.T) {
	_, err := MakeThumbnail([]byte("not an image"))
	assert.Error(t, err)
}

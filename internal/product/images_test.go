package product

import (
	"bytes"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeaders builds real multipart headers for the given file names.
func fileHeaders(t *testing.T, names ...string) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, n := range names {
		w, err := mw.CreateFormFile("images", n)
		require.NoError(t, err)
		_, _ = w.Write([]byte("img:" + n))
	}
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["images"]
}

func TestCheckFiles(t *testing.T) {
	assert.NoError(t, CheckFiles(fileHeaders(t, "a.jpg", "b.PNG", "c.webp")))
	assert.Error(t, CheckFiles(fileHeaders(t, "a.gif")))
	assert.Error(t, CheckFiles(fileHeaders(t, "1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg", "7.jpg", "8.jpg", "9.jpg")))
}

func TestImageStore_SaveAllAndRemove(t *testing.T) {
	root := t.TempDir()
	st, err := NewImageStore(root)
	require.NoError(t, err)

	paths, err := st.SaveAll(fileHeaders(t, "front.jpg", "back.png"))
	require.NoError(t, err)
	require.Len(t, paths, 2)

	for _, p := range paths {
		assert.Equal(t, "/uploads/products", path.Dir(p))
		b, err := os.ReadFile(filepath.Join(root, "products", path.Base(p)))
		require.NoError(t, err)
		assert.Contains(t, string(b), "img:")
	}

	st.Remove(append(paths, "/uploads/products/missing.jpg"))
	for _, p := range paths {
		_, err := os.Stat(filepath.Join(root, "products", path.Base(p)))
		assert.True(t, os.IsNotExist(err))
	}
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("order_received")
	require.NoError(t, err)
	assert.Equal(t, StatusOrderReceived, s)

	_, err = ParseStatus("reserved")
	assert.Error(t, err)
}

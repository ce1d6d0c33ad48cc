package services_test

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwelldev/inkwell/pkg/internal/services"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

func makeFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["image"][0]
}

func TestStoreImage(t *testing.T) {
	uploads := t.TempDir()
	viper.Set("content.uploads_path", uploads)

	path, err := services.StoreImage(makeFileHeader(t, "picture.png", pngSignature))
	require.NoError(t, err)
	assert.Equal(t, "posts", filepath.Dir(path))

	_, err = os.Stat(filepath.Join(uploads, path))
	assert.NoError(t, err)
}

func TestStoreImageRejectsNonImage(t *testing.T) {
	uploads := t.TempDir()
	viper.Set("content.uploads_path", uploads)

	_, err := services.StoreImage(makeFileHeader(t, "not_image.txt", []byte("definitely plain text")))
	require.ErrorIs(t, err, services.ErrNotImage)

	// Nothing may be written for a rejected upload
	entries, err := os.ReadDir(uploads)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, "en", services.DetectLanguage("the quick brown fox jumps over the lazy dog"))
	assert.Equal(t, "ru", services.DetectLanguage("съешь же ещё этих мягких французских булок"))
}

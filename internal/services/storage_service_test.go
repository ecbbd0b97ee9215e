// internal/services/storage_service_test.go
package services

import (
	"mime/multipart"
	"net/textproto"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierkado/boutique-backend/internal/config"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func newLocalStorage(t *testing.T) *StorageService {
	t.Helper()
	cfg := &config.Config{
		Upload: config.UploadConfig{
			Dir:     t.TempDir(),
			BaseURL: "http://localhost:8080",
			MaxSize: 1 << 20,
		},
	}
	svc, err := NewStorageService(cfg)
	require.NoError(t, err)
	return svc
}

func TestGenerateKey(t *testing.T) {
	svc := newLocalStorage(t)

	key := svc.generateKey("photo.PNG")
	assert.True(t, strings.HasPrefix(key, "uploads/"), "key %q", key)
	assert.True(t, strings.HasSuffix(key, ".png"), "key %q", key)

	// Keys must be unique per upload
	assert.NotEqual(t, key, svc.generateKey("photo.PNG"))
}

func TestIsValidImageType(t *testing.T) {
	assert.True(t, isValidImageType(pngHeader))
	assert.True(t, isValidImageType([]byte{0xFF, 0xD8, 0xFF, 0xE0}))
	assert.True(t, isValidImageType([]byte("GIF89a0000")))
	assert.False(t, isValidImageType([]byte("%PDF-1.4")))
	assert.False(t, isValidImageType([]byte{}))
}

func TestUploadAndDeleteLocal(t *testing.T) {
	svc := newLocalStorage(t)

	src := filepath.Join(t.TempDir(), "in.png")
	require.NoError(t, os.WriteFile(src, append(pngHeader, []byte("data")...), 0o644))

	file, err := os.Open(src)
	require.NoError(t, err)
	defer file.Close()

	info, err := file.Stat()
	require.NoError(t, err)

	header := newFileHeader("in.png", info.Size())

	result, err := svc.Upload(file, header)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Key, "uploads/"))

	stored := filepath.Join(svc.config.Upload.Dir, path.Base(result.Key))
	_, err = os.Stat(stored)
	require.NoError(t, err, "uploaded file should exist on disk")

	require.NoError(t, svc.Delete(result.Key))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))

	// Deleting a missing key stays silent
	assert.NoError(t, svc.Delete(result.Key))
}

func TestUploadRejectsBadExtension(t *testing.T) {
	svc := newLocalStorage(t)

	src := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF-1.4"), 0o644))

	file, err := os.Open(src)
	require.NoError(t, err)
	defer file.Close()

	_, err = svc.Upload(file, newFileHeader("doc.pdf", 8))
	assert.Error(t, err)
}

func TestUploadRejectsNonImageContent(t *testing.T) {
	svc := newLocalStorage(t)

	src := filepath.Join(t.TempDir(), "fake.png")
	require.NoError(t, os.WriteFile(src, []byte("not an image at all"), 0o644))

	file, err := os.Open(src)
	require.NoError(t, err)
	defer file.Close()

	_, err = svc.Upload(file, newFileHeader("fake.png", 19))
	assert.Error(t, err)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc := newLocalStorage(t)
	svc.config.Upload.MaxSize = 4

	src := filepath.Join(t.TempDir(), "big.png")
	require.NoError(t, os.WriteFile(src, pngHeader, 0o644))

	file, err := os.Open(src)
	require.NoError(t, err)
	defer file.Close()

	_, err = svc.Upload(file, newFileHeader("big.png", int64(len(pngHeader))))
	assert.Error(t, err)
}

func newFileHeader(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size, Header: textproto.MIMEHeader{}}
}

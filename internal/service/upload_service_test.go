package service

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "nordstudio/internal/errors"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func pngContent(size int) []byte {
	content := make([]byte, size)
	copy(content, pngMagic)
	return content
}

// fileHeader builds a real *multipart.FileHeader by writing and re-parsing
// a multipart body, the same way the HTTP layer produces them.
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func newTestUploadService(t *testing.T) (UploadService, string) {
	t.Helper()
	dir := t.TempDir()
	svc, err := NewUploadService(dir)
	require.NoError(t, err)
	return svc, dir
}

func TestUploadService_StoreImage(t *testing.T) {
	svc, dir := newTestUploadService(t)
	ctx := context.Background()

	uploaded, err := svc.StoreImage(ctx, fileHeader(t, "shoot.png", "image/png", pngContent(2<<20)))
	require.NoError(t, err)

	assert.Equal(t, "shoot.png", uploaded.OriginalName)
	assert.Equal(t, int64(2<<20), uploaded.Size)
	assert.True(t, strings.HasPrefix(uploaded.Filename, "image-"))
	assert.True(t, strings.HasSuffix(uploaded.Filename, ".png"))
	assert.Equal(t, "/api/upload/files/"+uploaded.Filename, uploaded.URL)

	info, err := os.Stat(filepath.Join(dir, uploaded.Filename))
	require.NoError(t, err)
	assert.Equal(t, int64(2<<20), info.Size())
}

func TestUploadService_RejectsBadUploads(t *testing.T) {
	svc, dir := newTestUploadService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		file    *multipart.FileHeader
		wantErr error
	}{
		{"disallowed extension", fileHeader(t, "notes.txt", "text/plain", []byte("hello")), apperrors.ErrUnsupportedMedia},
		{"disallowed declared type", fileHeader(t, "fake.png", "text/plain", []byte("hello")), apperrors.ErrUnsupportedMedia},
		{"sniffed non-image", fileHeader(t, "fake.png", "", []byte("plain text payload")), apperrors.ErrUnsupportedMedia},
		{"oversize image", fileHeader(t, "big.png", "image/png", pngContent(15<<20)), apperrors.ErrFileTooLarge},
		{"nil file", nil, apperrors.ErrNoFileUploaded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.StoreImage(ctx, tt.file)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// nothing was written
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadService_SniffsWhenTypeUndeclared(t *testing.T) {
	svc, _ := newTestUploadService(t)

	uploaded, err := svc.StoreImage(context.Background(), fileHeader(t, "shoot.png", "", pngContent(1024)))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(uploaded.Filename, ".png"))
}

func TestUploadService_GeneratedNamesDiffer(t *testing.T) {
	svc, _ := newTestUploadService(t)
	ctx := context.Background()

	first, err := svc.StoreImage(ctx, fileHeader(t, "a.png", "image/png", pngContent(64)))
	require.NoError(t, err)
	second, err := svc.StoreImage(ctx, fileHeader(t, "a.png", "image/png", pngContent(64)))
	require.NoError(t, err)

	assert.NotEqual(t, first.Filename, second.Filename)
}

func TestUploadService_StoreImagesDropsRejectedFiles(t *testing.T) {
	svc, dir := newTestUploadService(t)

	stored, err := svc.StoreImages(context.Background(), []*multipart.FileHeader{
		fileHeader(t, "ok.png", "image/png", pngContent(128)),
		fileHeader(t, "notes.txt", "text/plain", []byte("rejected")),
		fileHeader(t, "also-ok.jpg", "image/jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}),
	})
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "ok.png", stored[0].OriginalName)
	assert.Equal(t, "also-ok.jpg", stored[1].OriginalName)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestUploadService_StoreImagesAllRejected(t *testing.T) {
	svc, _ := newTestUploadService(t)

	_, err := svc.StoreImages(context.Background(), []*multipart.FileHeader{
		fileHeader(t, "notes.txt", "text/plain", []byte("nope")),
	})
	assert.ErrorIs(t, err, apperrors.ErrNoFilesUploaded)

	_, err = svc.StoreImages(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrNoFilesUploaded)
}

func TestUploadService_Resolve(t *testing.T) {
	svc, _ := newTestUploadService(t)

	uploaded, err := svc.StoreImage(context.Background(), fileHeader(t, "a.png", "image/png", pngContent(64)))
	require.NoError(t, err)

	path, err := svc.Resolve(uploaded.Filename)
	require.NoError(t, err)
	assert.FileExists(t, path)

	for _, name := range []string{"", "missing.png", "../secrets", "a/b.png", ".."} {
		_, err := svc.Resolve(name)
		assert.ErrorIs(t, err, apperrors.ErrFileNotFound, "name %q must not resolve", name)
	}
}

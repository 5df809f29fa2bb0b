package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	apperrors "nordstudio/internal/errors"
	"nordstudio/internal/model"
)

const (
	// maxUploadSize caps a single image at 10 MiB.
	maxUploadSize = 10 << 20
	// MaxBatchFiles caps the multi-file endpoint per request.
	MaxBatchFiles = 10

	uploadURLPrefix = "/api/upload/files"
)

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedImageMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadService stores uploaded images on local disk under generated
// collision-resistant filenames.
type UploadService interface {
	// StoreImage validates and writes one uploaded image.
	StoreImage(ctx context.Context, file *multipart.FileHeader) (*model.UploadedFile, error)
	// StoreImages writes a batch. Files failing the type or size filter
	// are dropped before storage; the call errors only when no file
	// survives the filter.
	StoreImages(ctx context.Context, files []*multipart.FileHeader) ([]model.UploadedFile, error)
	// Resolve maps a stored filename to its on-disk path, refusing
	// names that escape the upload directory.
	Resolve(name string) (string, error)
}

type uploadService struct {
	dir string
}

// NewUploadService creates the upload directory if needed and returns a
// service writing into it.
func NewUploadService(dir string) (UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &uploadService{dir: dir}, nil
}

func (s *uploadService) StoreImage(ctx context.Context, file *multipart.FileHeader) (*model.UploadedFile, error) {
	if file == nil {
		return nil, apperrors.ErrNoFileUploaded
	}
	if err := checkImage(file); err != nil {
		return nil, err
	}
	return s.write(file)
}

func (s *uploadService) StoreImages(ctx context.Context, files []*multipart.FileHeader) ([]model.UploadedFile, error) {
	if len(files) > MaxBatchFiles {
		files = files[:MaxBatchFiles]
	}

	accepted := make([]*multipart.FileHeader, 0, len(files))
	for _, file := range files {
		if err := checkImage(file); err == nil {
			accepted = append(accepted, file)
		}
	}
	if len(accepted) == 0 {
		return nil, apperrors.ErrNoFilesUploaded
	}

	stored := make([]model.UploadedFile, 0, len(accepted))
	for _, file := range accepted {
		uploaded, err := s.write(file)
		if err != nil {
			return nil, err
		}
		stored = append(stored, *uploaded)
	}
	return stored, nil
}

func (s *uploadService) Resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		return "", apperrors.ErrFileNotFound
	}
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", apperrors.ErrFileNotFound
	}
	return path, nil
}

// checkImage enforces the extension and MIME allowlist and the size
// ceiling without touching the disk.
func checkImage(file *multipart.FileHeader) error {
	if file.Size > maxUploadSize {
		return apperrors.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return apperrors.ErrUnsupportedMedia
	}

	declared := file.Header.Get("Content-Type")
	if declared == "" || declared == "application/octet-stream" {
		sniffed, err := sniffMIME(file)
		if err != nil {
			return err
		}
		declared = sniffed
	}
	if !allowedImageMIMEs[strings.ToLower(declared)] {
		return apperrors.ErrUnsupportedMedia
	}
	return nil
}

// sniffMIME detects the content type from the payload when the client
// declared none.
func sniffMIME(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("detect content type: %w", err)
	}
	return mtype.String(), nil
}

func (s *uploadService) write(file *multipart.FileHeader) (*model.UploadedFile, error) {
	name, err := generateFilename(file.Filename)
	if err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	return &model.UploadedFile{
		Filename:     name,
		OriginalName: file.Filename,
		Size:         written,
		URL:          fmt.Sprintf("%s/%s", uploadURLPrefix, name),
	}, nil
}

// generateFilename builds image-<unix ms>-<random hex><ext>, keeping the
// original extension.
func generateFilename(original string) (string, error) {
	suffix := make([]byte, 6)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("generate filename: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("image-%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(suffix), ext), nil
}

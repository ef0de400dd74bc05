// Package storage provides file storage for uploaded team assets.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/facturo/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrFileNotFound is returned when a stored file reference cannot be resolved
var ErrFileNotFound = errors.New("file not found")

// allowed logo extensions, lowercase
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// LocalFileStorage stores uploaded files on the local filesystem. File
// references handed back to callers are opaque generated names, never
// caller-controlled paths.
type LocalFileStorage struct {
	baseDir string
	logger  *zap.Logger
}

// NewLocalFileStorage creates the storage, ensuring the base directory exists
func NewLocalFileStorage(cfg *config.StorageConfig, logger *zap.Logger) (*LocalFileStorage, error) {
	if cfg == nil || cfg.UploadsDir == "" {
		return nil, errors.New("storage configuration is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalFileStorage{baseDir: cfg.UploadsDir, logger: logger}, nil
}

// AllowedExtension reports whether the file name carries a supported image
// extension
func AllowedExtension(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// Save stores the file content and returns the generated reference. The
// original name contributes only its extension.
func (s *LocalFileStorage) Save(ctx context.Context, originalName string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("unsupported file type %q", ext)
	}

	ref := uuid.New().String() + ext
	path := filepath.Join(s.baseDir, ref)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	s.logger.Debug("File stored", zap.String("ref", ref))
	return ref, nil
}

// Read returns the content of a stored file
func (s *LocalFileStorage) Read(ctx context.Context, ref string) ([]byte, error) {
	path, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return data, nil
}

// Delete removes a stored file. Deleting a missing file is not an error.
func (s *LocalFileStorage) Delete(ctx context.Context, ref string) error {
	path, err := s.resolve(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// resolve maps a reference to a path inside the base directory, rejecting
// references that try to escape it
func (s *LocalFileStorage) resolve(ref string) (string, error) {
	if ref == "" || ref != filepath.Base(ref) {
		return "", ErrFileNotFound
	}
	return filepath.Join(s.baseDir, ref), nil
}

// ContentType returns the MIME type for a stored reference based on its
// extension
func ContentType(ref string) string {
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

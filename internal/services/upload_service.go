package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"marlink_backend/internal/config"
	"marlink_backend/internal/storage"
	"marlink_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type UploadService interface {
	// SaveFile validates and stores a multipart upload under subdir,
	// returning the storage-relative path.
	SaveFile(ctx context.Context, header *multipart.FileHeader, subdir string) (string, error)

	// DeleteFile removes a previously stored file. Missing files are ignored.
	DeleteFile(ctx context.Context, path string) error

	// URL resolves the public URL of a stored file.
	URL(ctx context.Context, path string) string
}

type UploadServiceImpl struct {
	store storage.Storage
	cfg   *config.Config
}

func NewUploadService(store storage.Storage, cfg *config.Config) UploadService {
	return &UploadServiceImpl{
		store: store,
		cfg:   cfg,
	}
}

func (s *UploadServiceImpl) SaveFile(ctx context.Context, header *multipart.FileHeader, subdir string) (string, error) {
	if header.Size > s.cfg.Upload.MaxSize {
		return "", apperrors.NewBadRequestError(fmt.Sprintf(
			"File too large: %d bytes (limit %d)", header.Size, s.cfg.Upload.MaxSize))
	}

	contentType := header.Header.Get("Content-Type")
	if !s.typeAllowed(contentType) {
		return "", apperrors.NewBadRequestError("Unsupported file type: " + contentType)
	}

	file, err := header.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer file.Close()

	// uuid name keeps uploads collision-free and unguessable
	ext := strings.ToLower(filepath.Ext(header.Filename))
	path := filepath.Join(subdir, uuid.NewString()+ext)

	if err := s.store.Save(ctx, path, file, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	return path, nil
}

func (s *UploadServiceImpl) DeleteFile(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	if err := s.store.Delete(ctx, path); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UploadServiceImpl) URL(ctx context.Context, path string) string {
	if path == "" {
		return ""
	}
	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return ""
	}
	return url
}

func (s *UploadServiceImpl) typeAllowed(contentType string) bool {
	for _, allowed := range s.cfg.Upload.AllowedTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

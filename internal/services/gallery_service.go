package services

import (
	"context"
	"mime/multipart"

	"marlink_backend/internal/models"
	"marlink_backend/internal/repositories"
	"marlink_backend/internal/services/dto"
	"marlink_backend/pkg/apperrors"
)

type GalleryService interface {
	List(category string) ([]models.GalleryItem, error)
	Get(id string) (*models.GalleryItem, error)
	Create(ctx context.Context, req *dto.GalleryItemRequest, image *multipart.FileHeader, uploaderID string) (*models.GalleryItem, error)
	Update(ctx context.Context, id string, req *dto.GalleryItemRequest, image *multipart.FileHeader) (*models.GalleryItem, error)
	Delete(ctx context.Context, id string) error
}

type GalleryServiceImpl struct {
	galleryRepo repositories.GalleryRepository
	uploads     UploadService
}

func NewGalleryService(galleryRepo repositories.GalleryRepository, uploads UploadService) GalleryService {
	return &GalleryServiceImpl{
		galleryRepo: galleryRepo,
		uploads:     uploads,
	}
}

func (s *GalleryServiceImpl) List(category string) ([]models.GalleryItem, error) {
	items, err := s.galleryRepo.FindAll(category)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range items {
		items[i].ImageURL = s.uploads.URL(context.Background(), items[i].ImagePath)
	}
	return items, nil
}

func (s *GalleryServiceImpl) Get(id string) (*models.GalleryItem, error) {
	item, err := s.galleryRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrGalleryItemNotFound) {
			return nil, apperrors.NewNotFoundError("gallery", "Gallery item not found")
		}
		return nil, apperrors.InternalError(err)
	}
	item.ImageURL = s.uploads.URL(context.Background(), item.ImagePath)
	return item, nil
}

func (s *GalleryServiceImpl) Create(ctx context.Context, req *dto.GalleryItemRequest, image *multipart.FileHeader, uploaderID string) (*models.GalleryItem, error) {
	if image == nil {
		return nil, apperrors.ValidationError(map[string]string{"image": "This field is required"})
	}

	path, err := s.uploads.SaveFile(ctx, image, "gallery")
	if err != nil {
		return nil, err
	}

	item := &models.GalleryItem{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImagePath:   path,
		UploadedBy:  uploaderID,
	}

	if err := s.galleryRepo.Create(item); err != nil {
		// The metadata write failed; don't leave the file orphaned.
		_ = s.uploads.DeleteFile(ctx, path)
		return nil, apperrors.InternalError(err)
	}

	item.ImageURL = s.uploads.URL(ctx, item.ImagePath)
	return item, nil
}

func (s *GalleryServiceImpl) Update(ctx context.Context, id string, req *dto.GalleryItemRequest, image *multipart.FileHeader) (*models.GalleryItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	oldPath := item.ImagePath
	if image != nil {
		path, err := s.uploads.SaveFile(ctx, image, "gallery")
		if err != nil {
			return nil, err
		}
		item.ImagePath = path
	}

	item.Title = req.Title
	item.Description = req.Description
	item.Category = req.Category

	if err := s.galleryRepo.Update(item); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if image != nil && oldPath != item.ImagePath {
		_ = s.uploads.DeleteFile(ctx, oldPath)
	}

	item.ImageURL = s.uploads.URL(ctx, item.ImagePath)
	return item, nil
}

func (s *GalleryServiceImpl) Delete(ctx context.Context, id string) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.galleryRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}

	_ = s.uploads.DeleteFile(ctx, item.ImagePath)
	return nil
}

package repositories

import (
	"errors"

	"marlink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrGalleryItemNotFound = errors.New("gallery item not found")

type GalleryRepository interface {
	FindAll(category string) ([]models.GalleryItem, error)
	FindByID(id string) (*models.GalleryItem, error)
	Create(item *models.GalleryItem) error
	Update(item *models.GalleryItem) error
	Delete(id string) error
}

type GalleryRepositoryImpl struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &GalleryRepositoryImpl{db: db}
}

func (r *GalleryRepositoryImpl) FindAll(category string) ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	query := r.db.Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *GalleryRepositoryImpl) FindByID(id string) (*models.GalleryItem, error) {
	var item models.GalleryItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *GalleryRepositoryImpl) Create(item *models.GalleryItem) error {
	return r.db.Create(item).Error
}

func (r *GalleryRepositoryImpl) Update(item *models.GalleryItem) error {
	result := r.db.Model(&models.GalleryItem{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"title":       item.Title,
		"description": item.Description,
		"category":    item.Category,
		"image_path":  item.ImagePath,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGalleryItemNotFound
	}
	return nil
}

func (r *GalleryRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.GalleryItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGalleryItemNotFound
	}
	return nil
}

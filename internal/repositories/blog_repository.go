package repositories

import (
	"errors"

	"marlink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBlogPostNotFound = errors.New("blog post not found")

type BlogRepository interface {
	FindAll(category string) ([]models.BlogPost, error)
	FindByID(id string) (*models.BlogPost, error)
	Create(post *models.BlogPost) error
	Update(post *models.BlogPost) error
	Delete(id string) error
}

type BlogRepositoryImpl struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &BlogRepositoryImpl{db: db}
}

func (r *BlogRepositoryImpl) FindAll(category string) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	query := r.db.Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Find(&posts).Error
	return posts, err
}

func (r *BlogRepositoryImpl) FindByID(id string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepositoryImpl) Create(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

func (r *BlogRepositoryImpl) Update(post *models.BlogPost) error {
	result := r.db.Model(&models.BlogPost{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
		"title":     post.Title,
		"content":   post.Content,
		"category":  post.Category,
		"image_url": post.ImageURL,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBlogPostNotFound
	}
	return nil
}

func (r *BlogRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.BlogPost{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBlogPostNotFound
	}
	return nil
}

package services

import (
	"marlink_backend/internal/models"
	"marlink_backend/internal/repositories"
	"marlink_backend/internal/services/dto"
	"marlink_backend/pkg/apperrors"
)

type BlogService interface {
	List(category string) ([]models.BlogPost, error)
	Get(id string) (*models.BlogPost, error)
	Create(req *dto.BlogPostRequest, authorID string) (*models.BlogPost, error)
	Update(id string, req *dto.BlogPostRequest) (*models.BlogPost, error)
	Delete(id string) error
}

type BlogServiceImpl struct {
	blogRepo repositories.BlogRepository
}

func NewBlogService(blogRepo repositories.BlogRepository) BlogService {
	return &BlogServiceImpl{blogRepo: blogRepo}
}

func (s *BlogServiceImpl) List(category string) ([]models.BlogPost, error) {
	posts, err := s.blogRepo.FindAll(category)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return posts, nil
}

func (s *BlogServiceImpl) Get(id string) (*models.BlogPost, error) {
	post, err := s.blogRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBlogPostNotFound) {
			return nil, apperrors.NewNotFoundError("blogs", "Blog post not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return post, nil
}

func (s *BlogServiceImpl) Create(req *dto.BlogPostRequest, authorID string) (*models.BlogPost, error) {
	post := &models.BlogPost{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		ImageURL: req.ImageURL,
		AuthorID: authorID,
	}
	if err := s.blogRepo.Create(post); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return post, nil
}

func (s *BlogServiceImpl) Update(id string, req *dto.BlogPostRequest) (*models.BlogPost, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Content = req.Content
	post.Category = req.Category
	post.ImageURL = req.ImageURL

	if err := s.blogRepo.Update(post); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return post, nil
}

func (s *BlogServiceImpl) Delete(id string) error {
	if err := s.blogRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrBlogPostNotFound) {
			return apperrors.NewNotFoundError("blogs", "Blog post not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

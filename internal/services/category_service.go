package services

import (
	"marlink_backend/internal/models"
	"marlink_backend/internal/repositories"
	"marlink_backend/internal/services/dto"
	"marlink_backend/pkg/apperrors"
)

type CategoryService interface {
	List() ([]models.Category, error)
	Get(slug string) (*models.Category, error)
	Create(req *dto.CategoryRequest) (*models.Category, error)
	Update(slug string, req *dto.CategoryUpdateRequest) (*models.Category, error)
	Delete(slug string) error
}

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *CategoryServiceImpl) List() ([]models.Category, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

func (s *CategoryServiceImpl) Get(slug string) (*models.Category, error) {
	category, err := s.categoryRepo.FindBySlug(slug)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.NewNotFoundError("categories", "Category not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) Create(req *dto.CategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name: req.Name,
		Slug: req.Slug,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return nil, apperrors.NewConflictError("categories", "A category with this slug already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) Update(slug string, req *dto.CategoryUpdateRequest) (*models.Category, error) {
	category := &models.Category{
		Name: req.Name,
		Slug: slug,
	}
	if err := s.categoryRepo.Update(category); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.NewNotFoundError("categories", "Category not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.Get(slug)
}

func (s *CategoryServiceImpl) Delete(slug string) error {
	if err := s.categoryRepo.DeleteBySlug(slug); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.NewNotFoundError("categories", "Category not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

package service

import (
	"context"
	"errors"

	"reviewhub/internal/api/dto"
	"reviewhub/internal/api/models"
	"reviewhub/internal/api/repository"
	"reviewhub/internal/api/validation"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrSlugInUse        = errors.New("slug already in use")
)

type CategoryService struct {
	categoryRepo *repository.CategoryRepo
}

func NewCategoryService(categoryRepo *repository.CategoryRepo) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) List(ctx context.Context, search string, page, pageSize int) ([]models.Category, int64, error) {
	return s.categoryRepo.List(ctx, search, page, pageSize)
}

func (s *CategoryService) Create(ctx context.Context, req *dto.CreateTaxonomyRequest) (*models.Category, error) {
	if err := validation.ValidateSlug(req.Slug); err != nil {
		return nil, NewFieldError("slug", err.Error())
	}
	category := &models.Category{Name: req.Name, Slug: req.Slug}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, NewFieldError("slug", ErrSlugInUse.Error())
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, slug string) error {
	if err := s.categoryRepo.DeleteBySlug(ctx, slug); err != nil {
		if repository.IsNotFound(err) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}

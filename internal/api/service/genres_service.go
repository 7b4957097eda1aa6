package service

import (
	"context"
	"errors"

	"reviewhub/internal/api/dto"
	"reviewhub/internal/api/models"
	"reviewhub/internal/api/repository"
	"reviewhub/internal/api/validation"
)

var ErrGenreNotFound = errors.New("genre not found")

type GenreService struct {
	genreRepo *repository.GenreRepo
}

func NewGenreService(genreRepo *repository.GenreRepo) *GenreService {
	return &GenreService{genreRepo: genreRepo}
}

func (s *GenreService) List(ctx context.Context, search string, page, pageSize int) ([]models.Genre, int64, error) {
	return s.genreRepo.List(ctx, search, page, pageSize)
}

func (s *GenreService) Create(ctx context.Context, req *dto.CreateTaxonomyRequest) (*models.Genre, error) {
	if err := validation.ValidateSlug(req.Slug); err != nil {
		return nil, NewFieldError("slug", err.Error())
	}
	genre := &models.Genre{Name: req.Name, Slug: req.Slug}
	if err := s.genreRepo.Create(ctx, genre); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, NewFieldError("slug", ErrSlugInUse.Error())
		}
		return nil, err
	}
	return genre, nil
}

func (s *GenreService) Delete(ctx context.Context, slug string) error {
	if err := s.genreRepo.DeleteBySlug(ctx, slug); err != nil {
		if repository.IsNotFound(err) {
			return ErrGenreNotFound
		}
		return err
	}
	return nil
}

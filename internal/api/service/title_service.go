package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reviewhub/internal/api/dto"
	"reviewhub/internal/api/models"
	"reviewhub/internal/api/repository"
	"reviewhub/internal/api/validation"
)

// Titles from before year 0 make no sense in the catalog.
const MinTitleYear = 0

var (
	ErrTitleNotFound  = errors.New("title not found")
	ErrYearOutOfRange = errors.New("year must be between 0 and the current year")
)

type TitleService struct {
	titleRepo    *repository.TitleRepo
	categoryRepo *repository.CategoryRepo
	genreRepo    *repository.GenreRepo
}

func NewTitleService(
	titleRepo *repository.TitleRepo,
	categoryRepo *repository.CategoryRepo,
	genreRepo *repository.GenreRepo,
) *TitleService {
	return &TitleService{
		titleRepo:    titleRepo,
		categoryRepo: categoryRepo,
		genreRepo:    genreRepo,
	}
}

func (s *TitleService) List(ctx context.Context, filters repository.TitleFilters, page, pageSize int) ([]models.Title, int64, error) {
	return s.titleRepo.List(ctx, filters, page, pageSize)
}

func (s *TitleService) Get(ctx context.Context, id int64) (*models.Title, error) {
	title, err := s.titleRepo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrTitleNotFound
		}
		return nil, err
	}
	return title, nil
}

func (s *TitleService) Create(ctx context.Context, req *dto.CreateTitleRequest) (*models.Title, error) {
	if err := validation.ValidateTitleName(req.Name); err != nil {
		return nil, NewFieldError("name", err.Error())
	}
	if err := validateYear(req.Year); err != nil {
		return nil, NewFieldError("year", err.Error())
	}

	title := &models.Title{
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
	}

	if req.Category != "" {
		category, err := s.categoryRepo.GetBySlug(ctx, req.Category)
		if err != nil {
			if repository.IsNotFound(err) {
				return nil, NewFieldError("category", ErrCategoryNotFound.Error())
			}
			return nil, err
		}
		title.CategoryID = &category.ID
	}

	genres, err := s.resolveGenres(ctx, req.Genres)
	if err != nil {
		return nil, err
	}
	title.Genres = genres

	if err := s.titleRepo.Create(ctx, title); err != nil {
		return nil, fmt.Errorf("create title: %w", err)
	}
	return s.Get(ctx, title.ID)
}

func (s *TitleService) Update(ctx context.Context, id int64, req *dto.UpdateTitleRequest) (*models.Title, error) {
	title, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := validation.ValidateTitleName(*req.Name); err != nil {
			return nil, NewFieldError("name", err.Error())
		}
		title.Name = *req.Name
	}
	if req.Year != nil {
		if err := validateYear(*req.Year); err != nil {
			return nil, NewFieldError("year", err.Error())
		}
		title.Year = *req.Year
	}
	if req.Description != nil {
		title.Description = *req.Description
	}
	if req.Category != nil {
		if *req.Category == "" {
			title.CategoryID = nil
		} else {
			category, err := s.categoryRepo.GetBySlug(ctx, *req.Category)
			if err != nil {
				if repository.IsNotFound(err) {
					return nil, NewFieldError("category", ErrCategoryNotFound.Error())
				}
				return nil, err
			}
			title.CategoryID = &category.ID
		}
	}
	if req.Genres != nil {
		genres, err := s.resolveGenres(ctx, *req.Genres)
		if err != nil {
			return nil, err
		}
		title.Genres = genres
	}

	if err := s.titleRepo.Update(ctx, title); err != nil {
		return nil, fmt.Errorf("update title: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *TitleService) Delete(ctx context.Context, id int64) error {
	if err := s.titleRepo.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrTitleNotFound
		}
		return err
	}
	return nil
}

func (s *TitleService) resolveGenres(ctx context.Context, slugs []string) ([]models.Genre, error) {
	genres, err := s.genreRepo.GetBySlugs(ctx, slugs)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, NewFieldError("genre", ErrGenreNotFound.Error())
		}
		return nil, err
	}
	return genres, nil
}

func validateYear(year int) error {
	if year < MinTitleYear || year > time.Now().Year() {
		return ErrYearOutOfRange
	}
	return nil
}

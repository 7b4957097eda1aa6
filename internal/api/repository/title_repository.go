package repository

import (
	"context"
	"fmt"

	"reviewhub/internal/api/models"

	"gorm.io/gorm"
)

// ratingSelect annotates each title row with the mean review score. AVG over
// an empty set is NULL, which is exactly the absent-rating contract.
const ratingSelect = "titles.*, (SELECT AVG(score) FROM reviews WHERE reviews.title_id = titles.id) AS rating"

// TitleFilters narrows a title listing. Zero values mean "no filter".
type TitleFilters struct {
	CategorySlug string
	GenreSlug    string
	Name         string
	Year         *int
}

type TitleRepo struct {
	db *gorm.DB
}

func NewTitleRepo(db *gorm.DB) *TitleRepo {
	return &TitleRepo{db: db}
}

// Create inserts the title and its genre join rows. Associations are written
// through the explicit join model, never through GORM's association upserts.
func (r *TitleRepo) Create(ctx context.Context, t *models.Title) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genres := t.Genres
		if err := tx.Omit("Genres", "Category").Create(t).Error; err != nil {
			return fmt.Errorf("create title: %w", err)
		}
		return replaceGenres(tx, t.ID, genres)
	})
}

func (r *TitleRepo) GetByID(ctx context.Context, id int64) (*models.Title, error) {
	var t models.Title
	err := r.db.WithContext(ctx).
		Select(ratingSelect).
		Preload("Category").
		Preload("Genres").
		First(&t, "titles.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Exists is a cheap parent-resource check for the nested review routes.
func (r *TitleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Title{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *TitleRepo) List(ctx context.Context, filters TitleFilters, page, pageSize int) ([]models.Title, int64, error) {
	var list []models.Title
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Title{})

	if filters.CategorySlug != "" {
		query = query.
			Joins("JOIN categories ON categories.id = titles.category_id").
			Where("categories.slug = ?", filters.CategorySlug)
	}
	if filters.GenreSlug != "" {
		query = query.
			Joins("JOIN title_genres tg ON tg.title_id = titles.id").
			Joins("JOIN genres ON genres.id = tg.genre_id").
			Where("genres.slug = ?", filters.GenreSlug)
	}
	if filters.Name != "" {
		query = query.Where("titles.name LIKE ?", "%"+filters.Name+"%")
	}
	if filters.Year != nil {
		query = query.Where("titles.year = ?", *filters.Year)
	}

	if err := query.Distinct("titles.id").Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count titles: %w", err)
	}

	offset := (page - 1) * pageSize
	err := query.
		Select(ratingSelect).
		Group("titles.id").
		Preload("Category").
		Preload("Genres").
		Order("titles.name asc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("get titles: %w", err)
	}

	return list, total, nil
}

// Update saves the mutable columns and rewrites the genre set.
func (r *TitleRepo) Update(ctx context.Context, t *models.Title) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":        t.Name,
			"year":        t.Year,
			"description": t.Description,
			"category_id": t.CategoryID,
		}
		if err := tx.Model(&models.Title{}).Where("id = ?", t.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("update title: %w", err)
		}
		return replaceGenres(tx, t.ID, t.Genres)
	})
}

func (r *TitleRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("title_id = ?", id).Delete(&models.TitleGenre{}).Error; err != nil {
			return fmt.Errorf("detach genres: %w", err)
		}
		result := tx.Delete(&models.Title{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func replaceGenres(tx *gorm.DB, titleID int64, genres []models.Genre) error {
	if err := tx.Where("title_id = ?", titleID).Delete(&models.TitleGenre{}).Error; err != nil {
		return fmt.Errorf("clear genres: %w", err)
	}
	for _, g := range genres {
		if err := tx.Create(&models.TitleGenre{TitleID: titleID, GenreID: g.ID}).Error; err != nil {
			return fmt.Errorf("attach genre: %w", err)
		}
	}
	return nil
}

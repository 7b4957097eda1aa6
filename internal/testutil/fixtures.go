package testutil

import (
	"fmt"
	"testing"

	"gorm.io/gorm"

	"reviewhub/internal/api/models"
)

// CreateUser inserts a user with the given role and a derived unique email.
func CreateUser(t *testing.T, db *gorm.DB, username string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func CreateCategory(t *testing.T, db *gorm.DB, name, slug string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Slug: slug}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create category %s: %v", slug, err)
	}
	return category
}

func CreateGenre(t *testing.T, db *gorm.DB, name, slug string) *models.Genre {
	t.Helper()
	genre := &models.Genre{Name: name, Slug: slug}
	if err := db.Create(genre).Error; err != nil {
		t.Fatalf("failed to create genre %s: %v", slug, err)
	}
	return genre
}

// CreateTitle inserts a title with optional category and genres attached
// through the join table.
func CreateTitle(t *testing.T, db *gorm.DB, name string, year int, category *models.Category, genres ...*models.Genre) *models.Title {
	t.Helper()
	title := &models.Title{Name: name, Year: year}
	if category != nil {
		title.CategoryID = &category.ID
	}
	if err := db.Omit("Genres", "Category").Create(title).Error; err != nil {
		t.Fatalf("failed to create title %s: %v", name, err)
	}
	for _, g := range genres {
		if err := db.Create(&models.TitleGenre{TitleID: title.ID, GenreID: g.ID}).Error; err != nil {
			t.Fatalf("failed to attach genre %s: %v", g.Slug, err)
		}
	}
	return title
}

func CreateReview(t *testing.T, db *gorm.DB, title *models.Title, author *models.User, score int) *models.Review {
	t.Helper()
	review := &models.Review{
		TitleID:  title.ID,
		AuthorID: author.ID,
		Text:     "fixture review",
		Score:    score,
	}
	if err := db.Create(review).Error; err != nil {
		t.Fatalf("failed to create review: %v", err)
	}
	return review
}

func CreateComment(t *testing.T, db *gorm.DB, review *models.Review, author *models.User) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		ReviewID: review.ID,
		AuthorID: author.ID,
		Text:     "fixture comment",
	}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}
	return comment
}

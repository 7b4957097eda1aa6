package dto

import "reviewhub/internal/api/models"

// CreateTitleRequest references taxonomy entities by slug, response embeds
// them as objects.
type CreateTitleRequest struct {
	Name        string   `json:"name" binding:"required,max=256"`
	Year        int      `json:"year" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"omitempty,slug"`
	Genres      []string `json:"genre" binding:"omitempty,dive,slug"`
}

// UpdateTitleRequest: partial update, nil means "leave unchanged".
type UpdateTitleRequest struct {
	Name        *string   `json:"name" binding:"omitempty,max=256"`
	Year        *int      `json:"year"`
	Description *string   `json:"description"`
	Category    *string   `json:"category" binding:"omitempty,slug"`
	Genres      *[]string `json:"genre" binding:"omitempty,dive,slug"`
}

type TitleResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Year        int                `json:"year"`
	Rating      *float64           `json:"rating"`
	Description string             `json:"description"`
	Genres      []TaxonomyResponse `json:"genre"`
	Category    *TaxonomyResponse  `json:"category"`
}

// FromModelToTitleResponse converts a Title model to TitleResponse DTO
func FromModelToTitleResponse(t *models.Title) *TitleResponse {
	resp := &TitleResponse{
		ID:          t.ID,
		Name:        t.Name,
		Year:        t.Year,
		Rating:      t.Rating,
		Description: t.Description,
		Genres:      make([]TaxonomyResponse, 0, len(t.Genres)),
	}
	for _, g := range t.Genres {
		resp.Genres = append(resp.Genres, *FromModelToGenreResponse(&g))
	}
	if t.Category != nil {
		resp.Category = FromModelToCategoryResponse(t.Category)
	}
	return resp
}

package dto

import "reviewhub/internal/api/models"

// CreateTaxonomyRequest covers both Category and Genre creation.
type CreateTaxonomyRequest struct {
	Name string `json:"name" binding:"required,max=256"`
	Slug string `json:"slug" binding:"required,max=50,slug"`
}

// TaxonomyResponse is the public shape of a Category or Genre.
type TaxonomyResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func FromModelToCategoryResponse(c *models.Category) *TaxonomyResponse {
	return &TaxonomyResponse{Name: c.Name, Slug: c.Slug}
}

func FromModelToGenreResponse(g *models.Genre) *TaxonomyResponse {
	return &TaxonomyResponse{Name: g.Name, Slug: g.Slug}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewhub/internal/api/middleware"
)

// Handlers bundles every resource handler for route registration.
type Handlers struct {
	Auth     *AuthHandler
	User     *UserHandler
	Category *CategoryHandler
	Genre    *GenreHandler
	Title    *TitleHandler
	Review   *ReviewHandler
	Comment  *CommentHandler
}

// SetupRouter builds the full /v1 route table. Read-only endpoints live on
// the public group; everything mutating goes through the JWT middleware.
// authLimiter, when non-nil, shields the signup/token endpoints.
func SetupRouter(jwtSecret string, h *Handlers, authLimiter gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public := r.Group("/v1")
	if authLimiter != nil {
		h.Auth.RegisterRoutes(public.Group("", authLimiter))
	} else {
		h.Auth.RegisterRoutes(public)
	}

	protected := r.Group("/v1")
	protected.Use(middleware.AuthMiddleware(jwtSecret))

	h.User.RegisterRoutes(protected)
	h.Category.RegisterRoutes(public, protected)
	h.Genre.RegisterRoutes(public, protected)
	h.Title.RegisterRoutes(public, protected)
	h.Review.RegisterRoutes(public, protected)
	h.Comment.RegisterRoutes(public, protected)

	return r
}

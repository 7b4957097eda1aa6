package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"reviewhub/database"
	"reviewhub/internal/api/handler"
	"reviewhub/internal/api/middleware"
	"reviewhub/internal/api/repository"
	"reviewhub/internal/api/service"
	"reviewhub/internal/api/validation"
	"reviewhub/internal/config"
	"reviewhub/internal/mailer"
	"reviewhub/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	zapLogger, err := logger.New(cfg.IsDevelopment(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := validation.RegisterBindingValidators(); err != nil {
		zapLogger.Fatal("could not register binding validators", zap.Error(err))
	}

	db, err := database.ConnectDB(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("could not connect to database", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepo(db)
	genreRepo := repository.NewGenreRepo(db)
	titleRepo := repository.NewTitleRepo(db)
	reviewRepo := repository.NewReviewRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Services
	smtpMailer := mailer.NewSMTPMailer(cfg, zapLogger)
	authService := service.NewAuthService(userRepo, smtpMailer, cfg)
	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	genreService := service.NewGenreService(genreRepo)
	titleService := service.NewTitleService(titleRepo, categoryRepo, genreRepo)
	reviewService := service.NewReviewService(reviewRepo, titleRepo)
	commentService := service.NewCommentService(commentRepo, reviewRepo, titleRepo)

	// Rate limiter on the auth endpoints
	var authLimiter gin.HandlerFunc
	if cfg.RateLimitEnabled {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			zapLogger.Fatal("invalid redis url", zap.Error(err))
		}
		if cfg.RedisPassword != "" {
			opts.Password = cfg.RedisPassword
		}
		limiter := middleware.NewRateLimiter(redis.NewClient(opts), middleware.RateLimiterConfig{
			MaxRequests: cfg.RateLimitMax,
			Window:      cfg.RateLimitWindow,
		})
		authLimiter = limiter.Middleware()
	}

	router := handler.SetupRouter(cfg.JWTSecret, &handler.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		User:     handler.NewUserHandler(userService),
		Category: handler.NewCategoryHandler(categoryService),
		Genre:    handler.NewGenreHandler(genreService),
		Title:    handler.NewTitleHandler(titleService),
		Review:   handler.NewReviewHandler(reviewService),
		Comment:  handler.NewCommentHandler(commentService),
	}, authLimiter)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	zapLogger.Info("server starting", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

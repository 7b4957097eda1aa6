package service

import (
	"context"
	"errors"
	"fmt"

	"reviewhub/internal/api/dto"
	"reviewhub/internal/api/models"
	"reviewhub/internal/api/repository"
)

var (
	ErrReviewNotFound   = errors.New("review not found")
	ErrDuplicateReview  = errors.New("you have already reviewed this title")
	ErrScoreOutOfRange  = fmt.Errorf("score must be between %d and %d", models.MinScore, models.MaxScore)
	ErrNotResourceOwner = errors.New("changing someone else's content is forbidden")
)

type ReviewService interface {
	ListByTitle(ctx context.Context, titleID int64, page, pageSize int) ([]models.Review, int64, error)
	Get(ctx context.Context, titleID, reviewID int64) (*models.Review, error)
	Create(ctx context.Context, titleID int64, author *models.User, req *dto.CreateReviewRequest) (*models.Review, error)
	Update(ctx context.Context, titleID, reviewID int64, caller *models.User, req *dto.UpdateReviewRequest) (*models.Review, error)
	Delete(ctx context.Context, titleID, reviewID int64, caller *models.User) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	titleRepo  *repository.TitleRepo
}

func NewReviewService(reviewRepo repository.ReviewRepository, titleRepo *repository.TitleRepo) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, titleRepo: titleRepo}
}

func (s *reviewService) ListByTitle(ctx context.Context, titleID int64, page, pageSize int) ([]models.Review, int64, error) {
	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, 0, err
	}
	return s.reviewRepo.ListByTitle(titleID, page, pageSize)
}

func (s *reviewService) Get(ctx context.Context, titleID, reviewID int64) (*models.Review, error) {
	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}
	review, err := s.reviewRepo.GetByID(titleID, reviewID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

// Create posts a new review. The pre-check gives a clean field error in the
// common case; the unique index decides races, so its violation is translated
// to the same error.
func (s *reviewService) Create(ctx context.Context, titleID int64, author *models.User, req *dto.CreateReviewRequest) (*models.Review, error) {
	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}
	if req.Score < models.MinScore || req.Score > models.MaxScore {
		return nil, NewFieldError("score", ErrScoreOutOfRange.Error())
	}

	exists, err := s.reviewRepo.ExistsByTitleAndAuthor(titleID, author.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateReview
	}

	review := &models.Review{
		TitleID:  titleID,
		AuthorID: author.ID,
		Text:     req.Text,
		Score:    req.Score,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	// Reload with the author preloaded for the response.
	return s.reviewRepo.GetByID(titleID, review.ID)
}

// Update modifies an existing review, identified by id, so the uniqueness
// pre-check does not apply.
func (s *reviewService) Update(ctx context.Context, titleID, reviewID int64, caller *models.User, req *dto.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.Get(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}
	if !CanModifyAuthored(caller, review.AuthorID) {
		return nil, ErrNotResourceOwner
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		if *req.Score < models.MinScore || *req.Score > models.MaxScore {
			return nil, NewFieldError("score", ErrScoreOutOfRange.Error())
		}
		review.Score = *req.Score
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, titleID, reviewID int64, caller *models.User) error {
	review, err := s.Get(ctx, titleID, reviewID)
	if err != nil {
		return err
	}
	if !CanModifyAuthored(caller, review.AuthorID) {
		return ErrNotResourceOwner
	}
	return s.reviewRepo.Delete(review)
}

func (s *reviewService) requireTitle(ctx context.Context, titleID int64) error {
	exists, err := s.titleRepo.Exists(ctx, titleID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrTitleNotFound
	}
	return nil
}

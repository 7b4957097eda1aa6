package service

import (
	"context"
	"errors"
	"fmt"

	"reviewhub/internal/api/dto"
	"reviewhub/internal/api/models"
	"reviewhub/internal/api/repository"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentService interface {
	ListByReview(ctx context.Context, titleID, reviewID int64, page, pageSize int) ([]models.Comment, int64, error)
	Get(ctx context.Context, titleID, reviewID, commentID int64) (*models.Comment, error)
	Create(ctx context.Context, titleID, reviewID int64, author *models.User, req *dto.CreateCommentRequest) (*models.Comment, error)
	Update(ctx context.Context, titleID, reviewID, commentID int64, caller *models.User, req *dto.UpdateCommentRequest) (*models.Comment, error)
	Delete(ctx context.Context, titleID, reviewID, commentID int64, caller *models.User) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	reviewRepo  repository.ReviewRepository
	titleRepo   *repository.TitleRepo
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	reviewRepo repository.ReviewRepository,
	titleRepo *repository.TitleRepo,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
		titleRepo:   titleRepo,
	}
}

func (s *commentService) ListByReview(ctx context.Context, titleID, reviewID int64, page, pageSize int) ([]models.Comment, int64, error) {
	if err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, 0, err
	}
	return s.commentRepo.ListByReview(reviewID, page, pageSize)
}

func (s *commentService) Get(ctx context.Context, titleID, reviewID, commentID int64) (*models.Comment, error) {
	if err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}
	comment, err := s.commentRepo.GetByID(reviewID, commentID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Create(ctx context.Context, titleID, reviewID int64, author *models.User, req *dto.CreateCommentRequest) (*models.Comment, error) {
	if err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ReviewID: reviewID,
		AuthorID: author.ID,
		Text:     req.Text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return s.commentRepo.GetByID(reviewID, comment.ID)
}

func (s *commentService) Update(ctx context.Context, titleID, reviewID, commentID int64, caller *models.User, req *dto.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.Get(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}
	if !CanModifyAuthored(caller, comment.AuthorID) {
		return nil, ErrNotResourceOwner
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, titleID, reviewID, commentID int64, caller *models.User) error {
	comment, err := s.Get(ctx, titleID, reviewID, commentID)
	if err != nil {
		return err
	}
	if !CanModifyAuthored(caller, comment.AuthorID) {
		return ErrNotResourceOwner
	}
	return s.commentRepo.Delete(comment)
}

// requireReview 404s the nested routes when the parent chain is broken,
// including a review id that belongs to a different title.
func (s *commentService) requireReview(ctx context.Context, titleID, reviewID int64) error {
	exists, err := s.titleRepo.Exists(ctx, titleID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrTitleNotFound
	}
	if _, err := s.reviewRepo.GetByID(titleID, reviewID); err != nil {
		if repository.IsNotFound(err) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}

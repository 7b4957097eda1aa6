package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reviewhub/internal/api/models"
	"reviewhub/internal/api/repository"
	"reviewhub/internal/api/security"
	"reviewhub/internal/api/validation"
	"reviewhub/internal/config"
)

var (
	ErrNameInUse   = errors.New("username already in use")
	ErrEmailInUse  = errors.New("email already in use")
	ErrUserUnknown = errors.New("user not found")
	ErrInvalidCode = errors.New("invalid confirmation code")
)

// Mailer delivers the confirmation code. Implemented by internal/mailer; tests
// supply a mock.
type Mailer interface {
	SendConfirmationCode(ctx context.Context, email, username, code string) error
}

type AuthService interface {
	SignUp(ctx context.Context, username, email string) (*models.User, error)
	IssueToken(ctx context.Context, username, code string) (string, error)
}

type authService struct {
	userRepo  repository.UserRepository
	mailer    Mailer
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(userRepo repository.UserRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		userRepo:  userRepo,
		mailer:    mailer,
		jwtSecret: cfg.JWTSecret,
		tokenTTL:  cfg.TokenTTL,
	}
}

// SignUp creates the user (or reuses the matching record) and emails a fresh
// confirmation code. Repeating the call with the same (username, email) pair
// re-issues the code without creating a duplicate; a partial collision with a
// different record is an identity conflict.
func (s *authService) SignUp(ctx context.Context, username, email string) (*models.User, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, NewFieldError("username", err.Error())
	}

	user, err := s.userRepo.FindByUsernameAndEmail(username, email)
	if err != nil && !repository.IsNotFound(err) {
		return nil, err
	}

	if user == nil {
		if existing, err := s.userRepo.FindByUsername(username); err == nil && existing != nil {
			return nil, ErrNameInUse
		} else if err != nil && !repository.IsNotFound(err) {
			return nil, err
		}
		if existing, err := s.userRepo.FindByEmail(email); err == nil && existing != nil {
			return nil, ErrEmailInUse
		} else if err != nil && !repository.IsNotFound(err) {
			return nil, err
		}

		user = &models.User{
			Username: username,
			Email:    email,
			Role:     models.RoleUser,
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
	}

	code := security.GenerateConfirmationCode()
	hash, err := security.HashConfirmationCode(code)
	if err != nil {
		return nil, fmt.Errorf("hash confirmation code: %w", err)
	}
	user.ConfirmationCode = &hash
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("store confirmation code: %w", err)
	}

	// Synchronous and fail-fast: a lost email means a failed signup, not a
	// silently unconfirmable account.
	if err := s.mailer.SendConfirmationCode(ctx, email, username, code); err != nil {
		return nil, fmt.Errorf("send confirmation email: %w", err)
	}

	return user, nil
}

// IssueToken exchanges a confirmation code for a session token and activates
// the user. The stored code hash is kept, so re-submitting the same valid code
// keeps working until the next signup replaces it.
func (s *authService) IssueToken(ctx context.Context, username, code string) (string, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if repository.IsNotFound(err) {
			return "", ErrUserUnknown
		}
		return "", err
	}

	if user.ConfirmationCode == nil {
		return "", ErrInvalidCode
	}
	if err := security.VerifyConfirmationCode(*user.ConfirmationCode, code); err != nil {
		return "", ErrInvalidCode
	}

	if !user.IsActive {
		user.IsActive = true
		if err := s.userRepo.Update(user); err != nil {
			return "", fmt.Errorf("activate user: %w", err)
		}
	}

	return security.GenerateToken(user, s.jwtSecret, s.tokenTTL)
}

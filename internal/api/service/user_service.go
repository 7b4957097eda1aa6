package service

import (
	"errors"
	"fmt"

	"reviewhub/internal/api/dto"
	"reviewhub/internal/api/models"
	"reviewhub/internal/api/repository"
	"reviewhub/internal/api/validation"
)

var ErrInvalidRole = errors.New("unknown role")

type UserService interface {
	List(search string, page, pageSize int) ([]models.User, int64, error)
	GetByUsername(username string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	Create(req *dto.CreateUserRequest) (*models.User, error)
	// Update applies a partial update. Role/staff changes only take effect
	// when allowRoleChange is set; the self-service path passes false so a
	// caller-submitted role is discarded in favor of the stored one.
	Update(user *models.User, req *dto.UpdateUserRequest, allowRoleChange bool) (*models.User, error)
	Delete(username string) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(search string, page, pageSize int) ([]models.User, int64, error) {
	return s.userRepo.List(search, page, pageSize)
}

func (s *userService) GetByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserUnknown
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserUnknown
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Create(req *dto.CreateUserRequest) (*models.User, error) {
	if err := validation.ValidateUsername(req.Username); err != nil {
		return nil, NewFieldError("username", err.Error())
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidRole(role) {
		return nil, NewFieldError("role", ErrInvalidRole.Error())
	}

	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, ErrNameInUse
	} else if !repository.IsNotFound(err) {
		return nil, err
	}
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailInUse
	} else if !repository.IsNotFound(err) {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      role,
		IsStaff:   req.IsStaff,
	}
	if err := s.userRepo.Create(user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrNameInUse
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) Update(user *models.User, req *dto.UpdateUserRequest, allowRoleChange bool) (*models.User, error) {
	if req.Email != nil && *req.Email != user.Email {
		if existing, err := s.userRepo.FindByEmail(*req.Email); err == nil && existing.ID != user.ID {
			return nil, ErrEmailInUse
		} else if err != nil && !repository.IsNotFound(err) {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if allowRoleChange {
		if req.Role != nil {
			if !models.ValidRole(*req.Role) {
				return nil, NewFieldError("role", ErrInvalidRole.Error())
			}
			user.Role = *req.Role
		}
		if req.IsStaff != nil {
			user.IsStaff = *req.IsStaff
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) Delete(username string) error {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrUserUnknown
		}
		return err
	}
	return s.userRepo.Delete(user)
}

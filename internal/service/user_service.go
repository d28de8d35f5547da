package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
)

// UserService creates and lists users.
type UserService interface {
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// userService implements the UserService interface.
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// CreateUser stores a new user with an empty log unless the username is taken.
func (s *userService) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	user := &domain.User{Username: username, Log: []domain.Exercise{}}
	if err := validate.Struct(user); err != nil {
		return nil, fmt.Errorf("%w: username is required", ErrValidationFailed)
	}

	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	// The lookup and the insert are separate round trips; the unique index
	// catches a concurrent create of the same name.
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

// ListUsers returns every stored user in storage order.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

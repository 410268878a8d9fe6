package service

import (
	"context"
	"errors"
	"fmt"

	"mylibrary-user/internal/domain"
	"mylibrary-user/internal/repository"
)

const userResourceType = "User"

// UserService describes user lifecycle operations.
type UserService interface {
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetUsers(ctx context.Context, req domain.PageRequest) (domain.Page[domain.User], error)
	CreateUser(ctx context.Context, input domain.UserInput) (*domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &domain.NotFoundError{ResourceType: userResourceType, ResourceID: id}
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

func (s *userService) GetUsers(ctx context.Context, req domain.PageRequest) (domain.Page[domain.User], error) {
	page, err := s.users.FindPage(ctx, req)
	if err != nil {
		return domain.Page[domain.User]{}, fmt.Errorf("list users: %w", err)
	}
	return page, nil
}

func (s *userService) CreateUser(ctx context.Context, input domain.UserInput) (*domain.User, error) {
	if errs := input.Validate(); len(errs) > 0 {
		return nil, &domain.ValidationError{Fields: errs}
	}

	user := input.User()
	if user.ID > 0 {
		_, err := s.users.GetByID(ctx, user.ID)
		switch {
		case err == nil:
			return nil, &domain.ConstraintViolationError{
				Message: fmt.Sprintf("User with id %d already exists", user.ID),
			}
		case !errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("check user %d: %w", user.ID, err)
		}
	}

	if _, err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &domain.ConstraintViolationError{
				Message: "User already exists",
				Cause:   err,
			}
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

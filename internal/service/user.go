package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/DanYankho/equipResourceBooking/internal/domain"
	"github.com/DanYankho/equipResourceBooking/internal/service/ports"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Department == "" {
		return nil, fmt.Errorf("%w: department is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	role := domain.UserRole(input.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: role must be individual or dept", domain.ErrValidation)
	}

	id := input.ID
	if id == "" {
		id = uuid.New().String()
	}

	user := &domain.User{
		ID:         id,
		Name:       input.Name,
		Department: input.Department,
		Role:       role,
		Email:      input.Email,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Update(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.User, error) {
	if input.Role != nil && !domain.UserRole(*input.Role).Valid() {
		return nil, fmt.Errorf("%w: role must be individual or dept", domain.ErrValidation)
	}
	return s.repo.Update(ctx, id, input)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

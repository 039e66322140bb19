package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/DanYankho/equipResourceBooking/internal/domain"
	"github.com/DanYankho/equipResourceBooking/internal/service/ports"
)

type ResourceService struct {
	repo ports.ResourceRepo
}

func NewResourceService(repo ports.ResourceRepo) *ResourceService {
	return &ResourceService{repo: repo}
}

func (s *ResourceService) Create(ctx context.Context, input domain.CreateResourceInput) (*domain.Resource, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Type == "" {
		return nil, fmt.Errorf("%w: type is required", domain.ErrValidation)
	}

	id := input.ID
	if id == "" {
		id = uuid.New().String()
	}

	res := &domain.Resource{
		ID:   id,
		Name: input.Name,
		Type: input.Type,
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (s *ResourceService) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ResourceService) List(ctx context.Context) ([]*domain.Resource, error) {
	return s.repo.List(ctx)
}

func (s *ResourceService) Update(ctx context.Context, id string, input domain.UpdateResourceInput) (*domain.Resource, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *ResourceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

package ports

import (
	"context"

	"github.com/DanYankho/equipResourceBooking/internal/domain"
)

type ResourceRepo interface {
	Create(ctx context.Context, res *domain.Resource) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context) ([]*domain.Resource, error)
	Update(ctx context.Context, id string, input domain.UpdateResourceInput) (*domain.Resource, error)
	Delete(ctx context.Context, id string) error
}

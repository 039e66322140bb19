package ports

import (
	"context"

	"github.com/DanYankho/equipResourceBooking/internal/domain"
)

type AdminRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
	List(ctx context.Context) ([]*domain.Admin, error)
}

package ports

import (
	"context"

	"github.com/DanYankho/equipResourceBooking/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByResourceDate(ctx context.Context, resource, date string) ([]*domain.Booking, error)
	Update(ctx context.Context, id string, input domain.UpdateBookingInput) (*domain.Booking, error)
	Delete(ctx context.Context, id string) (*domain.Booking, error)
}

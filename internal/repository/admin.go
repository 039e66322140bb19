package repository

import (
	"context"
	"fmt"

	"github.com/DanYankho/equipResourceBooking/internal/domain"
	"github.com/DanYankho/equipResourceBooking/internal/storage/flatfile"
)

type AdminRepository struct {
	store *flatfile.Store
}

func NewAdminRepo(store *flatfile.Store) *AdminRepository {
	return &AdminRepository{store: store}
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	records, err := r.store.Load(flatfile.CollectionAdmins)
	if err != nil {
		return nil, fmt.Errorf("load admins: %w", err)
	}

	for _, rec := range records {
		if rec["username"] == username {
			return adminFromRecord(rec), nil
		}
	}

	return nil, domain.ErrAdminNotFound
}

func (r *AdminRepository) List(ctx context.Context) ([]*domain.Admin, error) {
	records, err := r.store.Load(flatfile.CollectionAdmins)
	if err != nil {
		return nil, fmt.Errorf("load admins: %w", err)
	}

	res := make([]*domain.Admin, 0, len(records))
	for _, rec := range records {
		res = append(res, adminFromRecord(rec))
	}

	return res, nil
}

func adminFromRecord(rec flatfile.Record) *domain.Admin {
	return &domain.Admin{
		Username: rec["username"],
		Password: rec["password"],
		Name:     rec["name"],
	}
}

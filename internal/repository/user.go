package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanYankho/equipResourceBooking/internal/domain"
	"github.com/DanYankho/equipResourceBooking/internal/storage/flatfile"
)

type UserRepository struct {
	store *flatfile.Store
}

func NewUserRepo(store *flatfile.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.store.Update(flatfile.CollectionUsers, func(records []flatfile.Record) ([]flatfile.Record, error) {
		for _, rec := range records {
			if rec["id"] == user.ID {
				return nil, domain.ErrIDTaken
			}
		}
		return append(records, userToRecord(user)), nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrIDTaken) {
			return err
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	records, err := r.store.Load(flatfile.CollectionUsers)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	for _, rec := range records {
		if rec["id"] == id {
			return userFromRecord(rec), nil
		}
	}

	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	records, err := r.store.Load(flatfile.CollectionUsers)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	res := make([]*domain.User, 0, len(records))
	for _, rec := range records {
		res = append(res, userFromRecord(rec))
	}

	return res, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.User, error) {
	var updated *domain.User
	err := r.store.Update(flatfile.CollectionUsers, func(records []flatfile.Record) ([]flatfile.Record, error) {
		for i, rec := range records {
			if rec["id"] != id {
				continue
			}
			mergeField(rec, "name", input.Name)
			mergeField(rec, "department", input.Department)
			mergeField(rec, "role", input.Role)
			mergeField(rec, "email", input.Email)
			records[i] = rec
			updated = userFromRecord(rec)
			return records, nil
		}
		return nil, domain.ErrUserNotFound
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	err := r.store.Update(flatfile.CollectionUsers, func(records []flatfile.Record) ([]flatfile.Record, error) {
		kept := records[:0]
		for _, rec := range records {
			if rec["id"] != id {
				kept = append(kept, rec)
			}
		}
		if len(kept) == len(records) {
			return nil, domain.ErrUserNotFound
		}
		return kept, nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}

func userToRecord(u *domain.User) flatfile.Record {
	return flatfile.Record{
		"id":         u.ID,
		"name":       u.Name,
		"department": u.Department,
		"role":       string(u.Role),
		"email":      u.Email,
	}
}

func userFromRecord(rec flatfile.Record) *domain.User {
	return &domain.User{
		ID:         rec["id"],
		Name:       rec["name"],
		Department: rec["department"],
		Role:       domain.UserRole(rec["role"]),
		Email:      rec["email"],
	}
}

// mergeField overwrites one record field when the caller supplied a value.
func mergeField(rec flatfile.Record, field string, value *string) {
	if value != nil {
		rec[field] = *value
	}
}

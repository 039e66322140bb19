package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanYankho/equipResourceBooking/internal/domain"
	"github.com/DanYankho/equipResourceBooking/internal/storage/flatfile"
)

type ResourceRepository struct {
	store *flatfile.Store
}

func NewResourceRepo(store *flatfile.Store) *ResourceRepository {
	return &ResourceRepository{store: store}
}

func (r *ResourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	err := r.store.Update(flatfile.CollectionResources, func(records []flatfile.Record) ([]flatfile.Record, error) {
		for _, rec := range records {
			if rec["id"] == res.ID {
				return nil, domain.ErrIDTaken
			}
		}
		return append(records, resourceToRecord(res)), nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrIDTaken) {
			return err
		}
		return fmt.Errorf("insert resource: %w", err)
	}

	return nil
}

func (r *ResourceRepository) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	records, err := r.store.Load(flatfile.CollectionResources)
	if err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}

	for _, rec := range records {
		if rec["id"] == id {
			return resourceFromRecord(rec), nil
		}
	}

	return nil, domain.ErrResourceNotFound
}

func (r *ResourceRepository) List(ctx context.Context) ([]*domain.Resource, error) {
	records, err := r.store.Load(flatfile.CollectionResources)
	if err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}

	res := make([]*domain.Resource, 0, len(records))
	for _, rec := range records {
		res = append(res, resourceFromRecord(rec))
	}

	return res, nil
}

func (r *ResourceRepository) Update(ctx context.Context, id string, input domain.UpdateResourceInput) (*domain.Resource, error) {
	var updated *domain.Resource
	err := r.store.Update(flatfile.CollectionResources, func(records []flatfile.Record) ([]flatfile.Record, error) {
		for i, rec := range records {
			if rec["id"] != id {
				continue
			}
			mergeField(rec, "name", input.Name)
			mergeField(rec, "type", input.Type)
			records[i] = rec
			updated = resourceFromRecord(rec)
			return records, nil
		}
		return nil, domain.ErrResourceNotFound
	})
	if err != nil {
		if errors.Is(err, domain.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update resource: %w", err)
	}

	return updated, nil
}

func (r *ResourceRepository) Delete(ctx context.Context, id string) error {
	err := r.store.Update(flatfile.CollectionResources, func(records []flatfile.Record) ([]flatfile.Record, error) {
		kept := records[:0]
		for _, rec := range records {
			if rec["id"] != id {
				kept = append(kept, rec)
			}
		}
		if len(kept) == len(records) {
			return nil, domain.ErrResourceNotFound
		}
		return kept, nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrResourceNotFound) {
			return err
		}
		return fmt.Errorf("delete resource: %w", err)
	}

	return nil
}

func resourceToRecord(res *domain.Resource) flatfile.Record {
	return flatfile.Record{
		"id":   res.ID,
		"name": res.Name,
		"type": res.Type,
	}
}

func resourceFromRecord(rec flatfile.Record) *domain.Resource {
	return &domain.Resource{
		ID:   rec["id"],
		Name: rec["name"],
		Type: rec["type"],
	}
}

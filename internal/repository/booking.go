package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanYankho/equipResourceBooking/internal/domain"
	"github.com/DanYankho/equipResourceBooking/internal/storage/flatfile"
)

type BookingRepository struct {
	store *flatfile.Store
}

func NewBookingRepo(store *flatfile.Store) *BookingRepository {
	return &BookingRepository{store: store}
}

// Create appends the booking unless its id is taken or it overlaps an
// existing booking for the same resource and date. Both checks run inside
// the locked load-mutate-save cycle, after the load and before the save.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	err := r.store.Update(flatfile.CollectionBookings, func(records []flatfile.Record) ([]flatfile.Record, error) {
		existing := make([]domain.Booking, 0, len(records))
		for _, rec := range records {
			if rec["id"] == b.ID {
				return nil, domain.ErrIDTaken
			}
			existing = append(existing, *bookingFromRecord(rec))
		}
		if domain.HasConflict(existing, *b) {
			return nil, domain.ErrBookingConflict
		}
		return append(records, bookingToRecord(b)), nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrIDTaken) || errors.Is(err, domain.ErrBookingConflict) {
			return err
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	records, err := r.store.Load(flatfile.CollectionBookings)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	for _, rec := range records {
		if rec["id"] == id {
			return bookingFromRecord(rec), nil
		}
	}

	return nil, domain.ErrBookingNotFound
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	records, err := r.store.Load(flatfile.CollectionBookings)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	res := make([]*domain.Booking, 0, len(records))
	for _, rec := range records {
		res = append(res, bookingFromRecord(rec))
	}

	return res, nil
}

func (r *BookingRepository) ListByResourceDate(ctx context.Context, resource, date string) ([]*domain.Booking, error) {
	records, err := r.store.Load(flatfile.CollectionBookings)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	var res []*domain.Booking
	for _, rec := range records {
		if rec["resource"] == resource && rec["date"] == date {
			res = append(res, bookingFromRecord(rec))
		}
	}

	return res, nil
}

// Update merges the provided fields over the stored booking and re-runs
// the overlap check for the merged result against every other booking.
func (r *BookingRepository) Update(ctx context.Context, id string, input domain.UpdateBookingInput) (*domain.Booking, error) {
	var updated *domain.Booking
	err := r.store.Update(flatfile.CollectionBookings, func(records []flatfile.Record) ([]flatfile.Record, error) {
		idx := -1
		others := make([]domain.Booking, 0, len(records))
		for i, rec := range records {
			if rec["id"] == id {
				idx = i
				continue
			}
			others = append(others, *bookingFromRecord(rec))
		}
		if idx < 0 {
			return nil, domain.ErrBookingNotFound
		}

		rec := records[idx]
		mergeField(rec, "resource", input.Resource)
		mergeField(rec, "date", input.Date)
		mergeField(rec, "startTime", input.StartTime)
		mergeField(rec, "endTime", input.EndTime)
		mergeField(rec, "user", input.User)
		mergeField(rec, "department", input.Department)
		mergeField(rec, "type", input.Type)
		mergeField(rec, "purpose", input.Purpose)
		mergeField(rec, "invitees", input.Invitees)

		merged := bookingFromRecord(rec)
		if domain.HasConflict(others, *merged) {
			return nil, domain.ErrBookingConflict
		}

		records[idx] = rec
		updated = merged
		return records, nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) || errors.Is(err, domain.ErrBookingConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("update booking: %w", err)
	}

	return updated, nil
}

// Delete removes the booking and returns the removed record.
func (r *BookingRepository) Delete(ctx context.Context, id string) (*domain.Booking, error) {
	var removed *domain.Booking
	err := r.store.Update(flatfile.CollectionBookings, func(records []flatfile.Record) ([]flatfile.Record, error) {
		kept := records[:0]
		for _, rec := range records {
			if rec["id"] == id {
				removed = bookingFromRecord(rec)
				continue
			}
			kept = append(kept, rec)
		}
		if removed == nil {
			return nil, domain.ErrBookingNotFound
		}
		return kept, nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("delete booking: %w", err)
	}

	return removed, nil
}

func bookingToRecord(b *domain.Booking) flatfile.Record {
	return flatfile.Record{
		"id":         b.ID,
		"resource":   b.Resource,
		"date":       b.Date,
		"startTime":  b.StartTime,
		"endTime":    b.EndTime,
		"user":       b.User,
		"department": b.Department,
		"type":       b.Type,
		"purpose":    b.Purpose,
		"invitees":   b.Invitees,
	}
}

func bookingFromRecord(rec flatfile.Record) *domain.Booking {
	return &domain.Booking{
		ID:         rec["id"],
		Resource:   rec["resource"],
		Date:       rec["date"],
		StartTime:  rec["startTime"],
		EndTime:    rec["endTime"],
		User:       rec["user"],
		Department: rec["department"],
		Type:       rec["type"],
		Purpose:    rec["purpose"],
		Invitees:   rec["invitees"],
	}
}

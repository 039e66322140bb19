package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/DanYankho/equipResourceBooking/internal/domain"
	"github.com/DanYankho/equipResourceBooking/internal/service/ports"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.Resource == "" {
		return nil, fmt.Errorf("%w: resource is required", domain.ErrValidation)
	}
	if input.User == "" {
		return nil, fmt.Errorf("%w: user is required", domain.ErrValidation)
	}
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}
	if err := validateTime("startTime", input.StartTime); err != nil {
		return nil, err
	}
	if err := validateTime("endTime", input.EndTime); err != nil {
		return nil, err
	}

	id := input.ID
	if id == "" {
		id = uuid.New().String()
	}

	booking := &domain.Booking{
		ID:         id,
		Resource:   input.Resource,
		Date:       input.Date,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		User:       input.User,
		Department: input.Department,
		Type:       input.Type,
		Purpose:    input.Purpose,
		Invitees:   input.Invitees,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("resource", booking.Resource),
		logger.String("date", booking.Date),
		logger.String("user", booking.User),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

// List returns all bookings, or only those for one resource and date when
// both filters are set.
func (s *BookingService) List(ctx context.Context, resource, date string) ([]*domain.Booking, error) {
	if resource != "" && date != "" {
		return s.bookingRepo.ListByResourceDate(ctx, resource, date)
	}
	return s.bookingRepo.List(ctx)
}

func (s *BookingService) Update(ctx context.Context, id string, input domain.UpdateBookingInput) (*domain.Booking, error) {
	if input.Date != nil {
		if err := validateDate(*input.Date); err != nil {
			return nil, err
		}
	}
	if input.StartTime != nil {
		if err := validateTime("startTime", *input.StartTime); err != nil {
			return nil, err
		}
	}
	if input.EndTime != nil {
		if err := validateTime("endTime", *input.EndTime); err != nil {
			return nil, err
		}
	}

	booking, err := s.bookingRepo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking updated",
		logger.String("booking_id", booking.ID),
		logger.String("resource", booking.Resource),
		logger.String("date", booking.Date),
	)

	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	booking, err := s.bookingRepo.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.logger.Info("booking deleted",
		logger.String("booking_id", booking.ID),
		logger.String("resource", booking.Resource),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking)

	return nil
}

func validateDate(value string) error {
	if value == "" {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	// time.Parse is lenient about padding, so require the canonical form
	// back out: stored dates must sort lexically.
	parsed, err := time.Parse(domain.DateLayout, value)
	if err != nil || parsed.Format(domain.DateLayout) != value {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	return nil
}

func validateTime(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
	}
	parsed, err := time.Parse(domain.TimeLayout, value)
	if err != nil || parsed.Format(domain.TimeLayout) != value {
		return fmt.Errorf("%w: %s must be HH:MM", domain.ErrValidation, field)
	}
	return nil
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/DanYankho/equipResourceBooking/internal/domain"
	"github.com/DanYankho/equipResourceBooking/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func waitNotified(t *testing.T, notified <-chan struct{}) {
	t.Helper()
	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

func validInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		Resource:  "boardroom",
		Date:      "2024-01-10",
		StartTime: "09:00",
		EndTime:   "10:00",
		User:      "1",
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(repo, notifier, newTestLogger(t))

	notified := make(chan struct{})
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.Booking) { close(notified) }).Return()

	booking, err := svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, "boardroom", booking.Resource)
	assert.NotEmpty(t, booking.ID)

	waitNotified(t, notified)
}

func TestBookingService_Create_KeepsProvidedID(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(repo, notifier, newTestLogger(t))

	notified := make(chan struct{})
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.Booking) { close(notified) }).Return()

	input := validInput()
	input.ID = "b1"

	booking, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "b1", booking.ID)

	waitNotified(t, notified)
}

func TestBookingService_Create_MissingResource(t *testing.T) {
	svc := NewBookingService(nil, nil, newTestLogger(t))

	input := validInput()
	input.Resource = ""

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_BadDate(t *testing.T) {
	svc := NewBookingService(nil, nil, newTestLogger(t))

	for _, date := range []string{"10.01.2024", "2024-1-10"} {
		input := validInput()
		input.Date = date

		_, err := svc.Create(context.Background(), input)

		require.Error(t, err, "date %q", date)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestBookingService_Create_BadTime(t *testing.T) {
	svc := NewBookingService(nil, nil, newTestLogger(t))

	// "9:00" without the leading zero sorts after "10:00" lexically, so
	// any stored value must be zero-padded HH:MM exactly.
	for _, start := range []string{"9:00", "25:61", "09:00:00"} {
		input := validInput()
		input.StartTime = start

		_, err := svc.Create(context.Background(), input)

		require.Error(t, err, "startTime %q", start)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestBookingService_Create_Conflict(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(repo, notifier, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrBookingConflict)

	_, err := svc.Create(context.Background(), validInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingConflict)
}

func TestBookingService_List_All(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(repo, nil, newTestLogger(t))

	bookings := []*domain.Booking{{ID: "b1"}, {ID: "b2"}}
	repo.EXPECT().List(mock.Anything).Return(bookings, nil)

	result, err := svc.List(context.Background(), "", "")

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestBookingService_List_Filtered(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(repo, nil, newTestLogger(t))

	bookings := []*domain.Booking{{ID: "b1"}}
	repo.EXPECT().ListByResourceDate(mock.Anything, "boardroom", "2024-01-10").Return(bookings, nil)

	result, err := svc.List(context.Background(), "boardroom", "2024-01-10")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestBookingService_Update_BadTime(t *testing.T) {
	svc := NewBookingService(nil, nil, newTestLogger(t))

	bad := "25:61"
	_, err := svc.Update(context.Background(), "b1", domain.UpdateBookingInput{EndTime: &bad})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(repo, nil, newTestLogger(t))

	user := "2"
	repo.EXPECT().Update(mock.Anything, "missing", mock.Anything).Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.UpdateBookingInput{User: &user})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Delete_Success(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(repo, notifier, newTestLogger(t))

	notified := make(chan struct{})
	removed := &domain.Booking{ID: "b1", Resource: "boardroom"}
	repo.EXPECT().Delete(mock.Anything, "b1").Return(removed, nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, removed).
		Run(func(context.Context, *domain.Booking) { close(notified) }).Return()

	err := svc.Delete(context.Background(), "b1")

	require.NoError(t, err)
	waitNotified(t, notified)
}

func TestBookingService_Delete_NotFound(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(repo, nil, newTestLogger(t))

	repo.EXPECT().Delete(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DanYankho/equipResourceBooking/internal/domain"
	"github.com/DanYankho/equipResourceBooking/internal/service/ports/mocks"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := domain.CreateUserInput{
		Name:       "Alice Banda",
		Department: "Engineering",
		Role:       "individual",
		Email:      "alice@example.com",
	}

	user, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "Alice Banda", user.Name)
	assert.Equal(t, domain.RoleIndividual, user.Role)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Create_MissingName(t *testing.T) {
	svc := NewUserService(nil)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Department: "Engineering",
		Role:       "individual",
		Email:      "a@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_BadRole(t *testing.T) {
	svc := NewUserService(nil)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:       "Alice",
		Department: "Engineering",
		Role:       "manager",
		Email:      "a@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_IDTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrIDTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		ID:         "1",
		Name:       "Clone",
		Department: "IT",
		Role:       "individual",
		Email:      "clone@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIDTaken)
}

func TestUserService_Update_BadRole(t *testing.T) {
	svc := NewUserService(nil)

	role := "boss"
	_, err := svc.Update(context.Background(), "1", domain.UpdateUserInput{Role: &role})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_List_Error(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("read error"))

	_, err := svc.List(context.Background())

	require.Error(t, err)
}

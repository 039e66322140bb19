package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DanYankho/equipResourceBooking/internal/domain"
	"github.com/DanYankho/equipResourceBooking/internal/service/ports/mocks"
)

func TestAuthService_Login_Success(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAuthService(repo, newTestLogger(t))

	admin := &domain.Admin{Username: "admin", Password: "admin123", Name: "Administrator"}
	repo.EXPECT().GetByUsername(mock.Anything, "admin").Return(admin, nil)

	result, err := svc.Login(context.Background(), "admin", "admin123")

	require.NoError(t, err)
	assert.Equal(t, "Administrator", result.Name)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAuthService(repo, newTestLogger(t))

	admin := &domain.Admin{Username: "admin", Password: "admin123"}
	repo.EXPECT().GetByUsername(mock.Anything, "admin").Return(admin, nil)

	_, err := svc.Login(context.Background(), "admin", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAuthService(repo, newTestLogger(t))

	repo.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, domain.ErrAdminNotFound)

	_, err := svc.Login(context.Background(), "ghost", "admin123")

	// Unknown usernames and wrong passwords are indistinguishable.
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

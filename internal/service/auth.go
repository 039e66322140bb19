package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/wb-go/wbf/logger"

	"github.com/DanYankho/equipResourceBooking/internal/domain"
	"github.com/DanYankho/equipResourceBooking/internal/service/ports"
)

type AuthService struct {
	repo   ports.AdminRepo
	logger logger.Logger
}

func NewAuthService(repo ports.AdminRepo, logger logger.Logger) *AuthService {
	return &AuthService{repo: repo, logger: logger}
}

// Login checks the credential against the admins collection. Passwords are
// stored in plaintext in the admins file; the constant-time compare only
// avoids a timing side channel, it does not make the storage safe.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Admin, error) {
	admin, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(admin.Password), []byte(password)) != 1 {
		s.logger.Warn("failed login attempt",
			logger.String("username", username),
		)
		return nil, domain.ErrInvalidCredentials
	}

	return admin, nil
}

package service

import (
	"context"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	adminRepo repository.AdminUserRepository
	tokens    security.TokenManager
}

func NewAuthService(adminRepo repository.AdminUserRepository, tokens security.TokenManager) AuthService {
	return &authService{adminRepo: adminRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.AdminUser, error) {
	user, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", nil, err
	}

	logger.Info("admin login", "user_id", user.ID, "email", user.Email)
	return token, user, nil
}

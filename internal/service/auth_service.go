package service

import (
	"context"
	"errors"
	"fmt"

	"socialfeed/internal/apperrors"
	"socialfeed/internal/config"
	"socialfeed/internal/hasher"
	"socialfeed/internal/models"
	"socialfeed/internal/repository"
	"socialfeed/internal/token"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

type authService struct {
	userRepo repository.UserRepository
	codec    *token.Codec
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, codec *token.Codec, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		codec:    codec,
		cfg:      cfg,
	}
}

// Register создаёт ровно одну учётную запись и выдаёт токен сессии.
// Проверка email и запись не атомарны: две одновременные регистрации с
// одним email могут обе пройти проверку, гонку закрывает уникальный
// индекс в хранилище.
func (s *authService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	existingUser, err := s.userRepo.GetUserByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, "", apperrors.ErrDuplicateAccount
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, "", fmt.Errorf("ошибка проверки email: %w", err)
	}

	passwordHash, err := hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateAccount) {
			return nil, "", apperrors.ErrDuplicateAccount
		}
		return nil, "", fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	tokenString, err := s.codec.Issue(user.UserID, s.cfg.TokenDuration)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка выпуска токена: %w", err)
	}

	return user, tokenString, nil
}

// Login ничего не пишет в хранилище. Несуществующий email и неверный
// пароль дают один и тот же ErrInvalidCredentials, чтобы нельзя было
// перебором выяснить, какие адреса зарегистрированы.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("ошибка аутентификации: %w", err)
	}

	if !hasher.Verify(password, user.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	tokenString, err := s.codec.Issue(user.UserID, s.cfg.TokenDuration)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка выпуска токена: %w", err)
	}

	return user, tokenString, nil
}

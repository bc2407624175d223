package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"socialfeed/internal/apperrors"
	"socialfeed/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	// create user id
	user.UserID = uuid.New().String()
	user.CreatedAt = time.Now()

	query := `
		INSERT INTO users (user_id, username, email, password_hash, created_at)
		VALUES (:user_id, :username, :email, :password_hash, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		// уникальный индекс по email страхует гонку check-then-act
		// между двумя одновременными регистрациями
		if strings.Contains(err.Error(), "duplicate key value") &&
			strings.Contains(err.Error(), "email") {
			return fmt.Errorf("создание пользователя: %w", apperrors.ErrDuplicateAccount)
		}
		return fmt.Errorf("ошибка при создании пользователя: %w: %w", apperrors.ErrStorage, err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с ID %s: %w", userID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w: %w", apperrors.ErrStorage, err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с email %s: %w", email, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по email: %w: %w", apperrors.ErrStorage, err)
	}

	return &user, nil
}

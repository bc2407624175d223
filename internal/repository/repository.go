package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"socialfeed/internal/models"
)

// UserRepository - хранилище учётных записей. Записи создаются один раз
// регистрацией и дальше только читаются, обновления и удаления нет.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID string) error
}

type TablesRepository interface {
	CountTablesDB() (int, error)
}

type Repository struct {
	User   UserRepository
	Post   PostRepository
	Tables TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:   NewUserRepository(db),
		Post:   NewPostRepository(db),
		Tables: NewTablesRepository(db),
	}
}

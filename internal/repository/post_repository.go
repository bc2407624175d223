package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"socialfeed/internal/apperrors"
	"socialfeed/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts
        (post_id, owner_id, content, image_url, created_at)
        VALUES
        (:post_id, :owner_id, :content, :image_url, :created_at)
    `

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	post.CreatedAt = time.Now()

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w: %w", apperrors.ErrStorage, err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `
        SELECT * FROM posts
        WHERE post_id = $1
    `

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %s: %w", postID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w: %w", apperrors.ErrStorage, err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetAll(ctx context.Context) ([]models.Post, error) {
	query := `SELECT * FROM posts`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w: %w", apperrors.ErrStorage, err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) GetByOwnerID(ctx context.Context, ownerID string) ([]models.Post, error) {
	query := `
        SELECT * FROM posts
        WHERE owner_id = $1
    `

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов пользователя: %w: %w", apperrors.ErrStorage, err)
	}

	return posts, nil
}

// Update меняет только content. Владелец, картинка и время создания
// неизменяемы после создания поста.
func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			content = :content
		WHERE post_id = :post_id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w: %w", apperrors.ErrStorage, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %s: %w", post.PostID, apperrors.ErrNotFound)
	}

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	_, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w: %w", apperrors.ErrStorage, err)
	}

	return nil
}

package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"socialfeed/internal/apperrors"
	"socialfeed/internal/models"
)

// Фейковые хранилища в памяти. Позволяют гонять сервисы целиком,
// без Postgres и MinIO.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User // by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	// уникальный индекс по email, как в миграции
	for _, u := range f.users {
		if u.Email == user.Email {
			return fmt.Errorf("создание пользователя: %w", apperrors.ErrDuplicateAccount)
		}
	}

	user.UserID = uuid.New().String()
	user.CreatedAt = time.Now()

	stored := *user
	f.users[user.UserID] = &stored
	return nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[userID]
	if !ok {
		return nil, fmt.Errorf("пользователь с ID %s: %w", userID, apperrors.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("пользователь с email %s: %w", email, apperrors.ErrNotFound)
}

type fakePostRepo struct {
	mu    sync.Mutex
	posts map[string]*models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*models.Post)}
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	post.CreatedAt = time.Now()

	stored := *post
	f.posts[post.PostID] = &stored
	return nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[postID]
	if !ok {
		return nil, fmt.Errorf("пост с ID %s: %w", postID, apperrors.ErrNotFound)
	}
	copied := *post
	return &copied, nil
}

func (f *fakePostRepo) GetAll(ctx context.Context) ([]models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	posts := make([]models.Post, 0, len(f.posts))
	for _, p := range f.posts {
		posts = append(posts, *p)
	}
	return posts, nil
}

func (f *fakePostRepo) GetByOwnerID(ctx context.Context, ownerID string) ([]models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var posts []models.Post
	for _, p := range f.posts {
		if p.OwnerID == ownerID {
			posts = append(posts, *p)
		}
	}
	return posts, nil
}

func (f *fakePostRepo) Update(ctx context.Context, post *models.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.posts[post.PostID]
	if !ok {
		return fmt.Errorf("пост с ID %s: %w", post.PostID, apperrors.ErrNotFound)
	}
	existing.Content = post.Content
	return nil
}

func (f *fakePostRepo) Delete(ctx context.Context, postID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.posts, postID)
	return nil
}

type fakeStorage struct {
	mu        sync.Mutex
	deleted   []string
	deleteErr error
}

func (f *fakeStorage) UploadImage(ctx context.Context, ownerID, fileName string, file io.Reader, size int64) (string, string, error) {
	objectName := "posts/" + ownerID + "/" + fileName
	return objectName, "http://localhost:9000/images/" + objectName, nil
}

func (f *fakeStorage) DeleteImage(ctx context.Context, objectName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, objectName)
	return nil
}

package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"socialfeed/internal/apperrors"
	"socialfeed/internal/config"
	"socialfeed/internal/models"
	"socialfeed/internal/repository"
	"socialfeed/internal/storage"
)

type PostService interface {
	CreatePost(ctx context.Context, ownerID, content string, imageURL *string) (*models.Post, error)
	GetFeed(ctx context.Context) ([]models.FeedPost, error)
	GetOwnPosts(ctx context.Context, ownerID string) ([]models.Post, error)
	UpdatePost(ctx context.Context, postID, actorID, content string) (*models.Post, error)
	DeletePost(ctx context.Context, postID, actorID string) error
	UploadImage(ctx context.Context, ownerID, fileName string, file io.Reader, size int64) (string, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

// CreatePost пишет пост от имени ownerID. Идентификатор владельца всегда
// приходит из контекста авторизации, из тела запроса он не читается.
func (p *postService) CreatePost(ctx context.Context, ownerID, content string, imageURL *string) (*models.Post, error) {
	post := &models.Post{
		OwnerID:  ownerID,
		Content:  content,
		ImageURL: imageURL,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

// GetFeed отдаёт все посты, дополняя каждый именем владельца.
// Пользователи читаются по одному разу на запрос.
func (p *postService) GetFeed(ctx context.Context) ([]models.FeedPost, error) {
	posts, err := p.postRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	usernames := make(map[string]string)

	feed := make([]models.FeedPost, 0, len(posts))
	for _, post := range posts {
		username, ok := usernames[post.OwnerID]
		if !ok {
			user, err := p.userRepo.GetUserByID(ctx, post.OwnerID)
			if err != nil {
				return nil, fmt.Errorf("ошибка получения автора поста: %w", err)
			}
			username = user.Username
			usernames[post.OwnerID] = username
		}

		feed = append(feed, models.FeedPost{
			Post:          post,
			OwnerUsername: username,
		})
	}

	return feed, nil
}

func (p *postService) GetOwnPosts(ctx context.Context, ownerID string) ([]models.Post, error) {
	return p.postRepo.GetByOwnerID(ctx, ownerID)
}

// UpdatePost редактирует текст поста. Сначала загрузка, потом проверка
// владельца, и только после неё мутация.
func (p *postService) UpdatePost(ctx context.Context, postID, actorID, content string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.OwnerID != actorID {
		return nil, apperrors.ErrForbidden
	}

	post.Content = content

	err = p.postRepo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, postID, actorID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.OwnerID != actorID {
		return apperrors.ErrForbidden
	}

	// вместе с постом подчищаем его картинку; ошибка хранилища
	// не блокирует удаление самого поста
	if post.ImageURL != nil {
		if objectName := p.objectNameFromURL(*post.ImageURL); objectName != "" {
			if err := p.storage.DeleteImage(ctx, objectName); err != nil {
				log.Printf("не удалось удалить изображение поста %s: %v", postID, err)
			}
		}
	}

	return p.postRepo.Delete(ctx, postID)
}

// objectNameFromURL восстанавливает имя объекта из публичной ссылки.
// Для ссылок вне нашего bucket возвращает пустую строку.
func (p *postService) objectNameFromURL(imageURL string) string {
	prefix := fmt.Sprintf("%s/%s/",
		strings.TrimSuffix(p.cfg.MinIO.PublicURL, "/"),
		p.cfg.MinIO.BucketName)

	if !strings.HasPrefix(imageURL, prefix) {
		return ""
	}
	return strings.TrimPrefix(imageURL, prefix)
}

func (p *postService) UploadImage(ctx context.Context, ownerID, fileName string, file io.Reader, size int64) (string, error) {
	_, imageURL, err := p.storage.UploadImage(ctx, ownerID, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки изображения в MinIO: %w", err)
	}

	return imageURL, nil
}

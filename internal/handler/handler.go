package handlers

import (
	"github.com/go-playground/validator/v10"
	"socialfeed/internal/config"
	"socialfeed/internal/repository"
	"socialfeed/internal/service"
)

type contextKey string

// UserIDKey - ключ контекста, под которым middleware авторизации хранит
// идентификатор пользователя. Типизированный, чтобы не пересекаться
// с чужими строковыми ключами.
const UserIDKey contextKey = "userID"

type Handlers struct {
	AuthService   service.AuthService
	PostService   service.PostService
	UserRepo      repository.UserRepository
	PostRepo      repository.PostRepository
	TablesRepo    repository.TablesRepository
	TablesService service.TablesService
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:   service.Auth,
		PostService:   service.Post,
		UserRepo:      repo.User,
		PostRepo:      repo.Post,
		TablesRepo:    repo.Tables,
		TablesService: service.Tables,
		Cfg:           config,
		Validate:      validator.New(),
	}
}

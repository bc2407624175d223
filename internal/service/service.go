package service

import (
	"socialfeed/internal/config"
	"socialfeed/internal/repository"
	"socialfeed/internal/storage"
	"socialfeed/internal/token"
)

type Service struct {
	Auth   AuthService
	Post   PostService
	Tables TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, codec *token.Codec) *Service {
	return &Service{
		Auth:   NewAuthService(rep.User, codec, cfg),
		Post:   NewPostService(rep.Post, rep.User, storage, cfg),
		Tables: NewTablesService(rep.Tables),
	}
}

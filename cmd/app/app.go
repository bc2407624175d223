package app

import (
	"log"

	"socialfeed/internal/config"
	"socialfeed/internal/database"
	"socialfeed/internal/repository"
	"socialfeed/internal/service"
	"socialfeed/internal/storage"
	"socialfeed/internal/token"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, *token.Codec) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// кодек токенов общий для сервиса аутентификации и middleware
	codec := token.NewCodec(cfg.JWTSecretKey)

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient, codec)

	return db, repo, services, codec
}

package main

import (
	"fmt"
	"log"
	"net/http"

	"socialfeed/cmd/app"
	"socialfeed/internal/config"
	handlers "socialfeed/internal/handler"
	"socialfeed/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services, codec := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	mux := http.NewServeMux()

	// setting up routes
	mux.HandleFunc("/", handlers.HomeHandler)
	mux.HandleFunc("/health", handlers.HealthHandler)
	mux.HandleFunc("/tables", handler.TablesHandler)

	mux.HandleFunc("/api/auth/register", handler.Register)
	mux.HandleFunc("/api/auth/login", handler.Login)

	mux.HandleFunc("/api/me", handler.GetCurrentUser)

	mux.HandleFunc("/api/posts", handler.GetPosts)
	mux.HandleFunc("/api/posts/my", handler.GetMyPosts)
	mux.HandleFunc("/api/posts/", handler.CreatePost)

	handlerChain := middleware.Chain(
		mux,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(codec),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

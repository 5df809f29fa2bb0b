package main

import (
	"context"
	"log"
	"net/http"

	_ "nordstudio/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"nordstudio/internal/cache"
	"nordstudio/internal/config"
	"nordstudio/internal/handler"
	"nordstudio/internal/router"
	"nordstudio/internal/service"
	"nordstudio/internal/store"
)

// @title NORD STUDIO API
// @version 1.0
// @description Backend API for the NORD STUDIO photography site: portfolio CRUD, image uploads and demo sign-in.
// @host localhost:5000
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Store selection happens exactly once, based on configuration
	// presence. No lazy singleton anywhere.
	var st store.Store
	if cfg.FirestoreProjectID != "" {
		fs, err := store.NewFirestore(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
		if err != nil {
			log.Fatalf("firestore init: %v", err)
		}
		defer fs.Close()
		st = fs
		log.Printf("Using Firestore project %q", cfg.FirestoreProjectID)
	} else {
		st = store.NewMemory()
		log.Println("FIRESTORE_PROJECT_ID not set, using in-memory store")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize services
	portfolioService := service.NewPortfolioService(st, cacheClient)
	uploadService, err := service.NewUploadService(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload init: %v", err)
	}
	authService := service.NewAuthService()

	// Initialize handlers
	portfolioHandler := handler.NewPortfolioHandler(portfolioService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	authHandler := handler.NewAuthHandler(authService)

	e := echo.New()
	router.Register(e, cfg, portfolioHandler, uploadHandler, authHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

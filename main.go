package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"hackboard-backend/internal/auth"
	"hackboard-backend/internal/cards"
	"hackboard-backend/internal/config"
	"hackboard-backend/internal/dashboard"
	"hackboard-backend/internal/drive"
	"hackboard-backend/internal/middleware"
	"hackboard-backend/internal/teams"
	"hackboard-backend/internal/thumbnail"
)

func main() {
	// Load .env file for local development (ignored in Docker)
	if os.Getenv("DOCKER_ENV") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using system environment variables")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	e := echo.New()
	if err := initialize(e, cfg); err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	log.Printf("Starting hackboard server on %s", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, e))
}

func initialize(e *echo.Echo, cfg *config.Config) error {
	// Team registry is static configuration, loaded once
	registry, err := teams.LoadRegistry(cfg.TeamsPath)
	if err != nil {
		return err
	}

	// Persistence backend: Redis when configured, local JSON files otherwise
	var store cards.Store
	if cfg.UseRedis() {
		redisStore, err := cards.NewRedisStore(cfg.RedisURL)
		if err != nil {
			return err
		}
		store = redisStore
		log.Println("Using Redis persistence backend")
	} else {
		store = cards.NewFileStore(cfg.HiddenIDsPath, cfg.CustomCardsPath)
		log.Println("Using local file persistence backend")
	}

	driveService := drive.NewService()

	authService := auth.NewService(cfg)
	authHandler := auth.NewHandler(authService, cfg.FrontendURL)
	authHandler.RegisterRoutes(e)

	cardService := cards.NewService(store)
	cardHandler := cards.NewHandler(cardService, authService)
	cardHandler.RegisterRoutes(e)

	dashboardService := dashboard.NewService(driveService, cardService, registry, cfg.RootFolderID, cfg.FolderName)
	dashboardHandler := dashboard.NewHandler(dashboardService, authService)
	dashboardHandler.RegisterRoutes(e)

	thumbnailHandler := thumbnail.NewHandler(authService, driveService)
	thumbnailHandler.RegisterRoutes(e)

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.SecurityHeaders(cfg.FrontendURL))
	e.Use(middleware.CORSConfig(cfg.FrontendURL))

	return nil
}

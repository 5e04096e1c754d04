package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/leo-lightfoot/travel-photo-album/internal/config"
	"github.com/leo-lightfoot/travel-photo-album/internal/handler"
	"github.com/leo-lightfoot/travel-photo-album/internal/middleware"
	"github.com/leo-lightfoot/travel-photo-album/internal/repository"
	"github.com/leo-lightfoot/travel-photo-album/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Missing backend credentials halt initialization rather than
	// degrade.
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		if cfg.Environment != "development" {
			log.Fatal("JWT_SECRET is required outside development")
		}
		log.Println("Warning: JWT_SECRET not set, using development default")
		cfg.JWTSecret = "travel-album-dev-secret"
	}

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v (photo upload requires object storage)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    12 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService service.AuthService, cfg *config.Config) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/logout", h.Auth.Logout)

	protected := v1.Group("", middleware.AuthRequired(authService))

	// The map widget credential is served to thin clients alongside the
	// pin data.
	protected.Get("/config", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"maptiler_api_key": cfg.MapTilerAPIKey})
	})

	pins := protected.Group("/pins")
	pins.Get("/", h.Pin.List)
	pins.Get("/:pinId", h.Pin.Get)

	mapGroup := protected.Group("/map")
	mapGroup.Get("/markers", h.Map.Markers)
	mapGroup.Get("/bounds", h.Map.Bounds)

	protected.Get("/timeline", h.Timeline.Get)

	protected.Get("/geocode/reverse", h.Geocode.Reverse)

	uploads := protected.Group("/uploads")
	uploads.Post("/", h.Upload.Start)
	uploads.Get("/:uploadId", h.Upload.Get)
	uploads.Post("/:uploadId/submit", h.Upload.Submit)
	uploads.Post("/:uploadId/skip", h.Upload.Skip)
}

package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/galeriaviva/gallery-api/internal/config"
	"github.com/galeriaviva/gallery-api/internal/constants"
	"github.com/galeriaviva/gallery-api/internal/database"
	apierrors "github.com/galeriaviva/gallery-api/internal/errors"
	"github.com/galeriaviva/gallery-api/internal/handlers"
	"github.com/galeriaviva/gallery-api/internal/middleware"
	"github.com/galeriaviva/gallery-api/internal/repository"
	"github.com/galeriaviva/gallery-api/internal/services"
	"github.com/galeriaviva/gallery-api/internal/storage"
	"github.com/galeriaviva/gallery-api/internal/token"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Image storage for uploaded artworks
	store, err := storage.NewLocalStorage(cfg.UploadDir, constants.UploadURLPath)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	tokens := token.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	// Repositories
	userRepo := repository.NewUserRepository(database.GetDB())
	artworkRepo := repository.NewArtworkRepository(database.GetDB())
	commentRepo := repository.NewCommentRepository(database.GetDB())

	// Services
	authService := services.NewAuthService(userRepo, tokens)
	artworkService := services.NewArtworkService(artworkRepo, store)
	userService := services.NewUserService(userRepo, artworkRepo)
	commentService := services.NewCommentService(commentRepo, artworkRepo, userRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	artworkHandler := handlers.NewArtworkHandler(artworkService)
	userHandler := handlers.NewUserHandler(userService, artworkService)
	commentHandler := handlers.NewCommentHandler(commentService)

	// Initialize Gin router
	r := gin.Default()

	// The browser frontend may be served from a different origin than the API
	corsConfig := cors.DefaultConfig()
	if cfg.CORSOrigin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Uniform JSON errors for unknown routes and wrong methods
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		apierrors.NotFound(c, "")
	})
	r.NoMethod(func(c *gin.Context) {
		apierrors.MethodNotAllowed(c, "")
	})

	// Uploaded images are served at the exact path stored in image_url
	r.Static("/"+constants.UploadURLPath, cfg.UploadDir)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Gallery API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		api.POST("/auth", authHandler.Handle)

		// Listing is public; get_like_status needs the optional token
		api.GET("/artworks", middleware.OptionalAuth(tokens), artworkHandler.HandleGet)
		api.POST("/artworks", middleware.RequireAuth(tokens), artworkHandler.HandlePost)

		api.GET("/users", middleware.RequireAuth(tokens), userHandler.HandleGet)
		api.POST("/users", middleware.RequireAuth(tokens), userHandler.HandlePost)

		api.GET("/comments", commentHandler.ListByArtwork)
		api.POST("/comments", middleware.RequireAuth(tokens), commentHandler.Create)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

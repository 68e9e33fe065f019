// Package main is the entry point for the blog service.
package main

import (
	"fmt"

	"github.com/Jeff114514/jeff-blog/internal/config"
	"github.com/Jeff114514/jeff-blog/internal/handlers"
	"github.com/Jeff114514/jeff-blog/internal/models"
	"github.com/Jeff114514/jeff-blog/internal/repository"
	"github.com/Jeff114514/jeff-blog/internal/routes"
	"github.com/Jeff114514/jeff-blog/internal/service"
	"github.com/Jeff114514/jeff-blog/pkg/database"
	"github.com/Jeff114514/jeff-blog/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.Environment)

	// Initialize database
	db, err := database.Connect(database.PostgresConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
		TimeZone: "UTC",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.AutoMigrate(&models.User{}, &models.Article{}, &models.Comment{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database schema")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Initialize services
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	authService := service.NewAuthService(userRepo, tokenService)
	articleService := service.NewArticleService(articleRepo)
	commentService := service.NewCommentService(commentRepo, articleRepo)
	chatService := service.NewChatService(service.ChatConfig{
		Endpoint:    cfg.AIURL,
		Model:       cfg.AIModel,
		APIKey:      cfg.AIAPIKey,
		Timeout:     cfg.AITimeout,
		MaxTokens:   cfg.AIMaxTokens,
		Temperature: cfg.AITemperature,
		TopP:        cfg.AITopP,
	}, log)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	commentHandler := handlers.NewCommentHandler(commentService)
	aiHandler := handlers.NewAIHandler(chatService)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	routes.Setup(router, authHandler, articleHandler, commentHandler, aiHandler, healthHandler, tokenService)

	// Start server
	log.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("starting blog service")
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

// Package routes defines HTTP routes for the blog service.
package routes

import (
	"net/http"

	"github.com/Jeff114514/jeff-blog/internal/handlers"
	"github.com/Jeff114514/jeff-blog/internal/middleware"
	"github.com/Jeff114514/jeff-blog/internal/service"
	"github.com/Jeff114514/jeff-blog/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup configures all HTTP routes for the application.
//
// The /api/auth, /api/articles, /api/comments and /api/ai groups are
// served without authentication; any other path goes through the bearer
// token gate before resolving (and 404s inside the envelope when it
// does resolve to nothing).
func Setup(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	articleHandler *handlers.ArticleHandler,
	commentHandler *handlers.CommentHandler,
	aiHandler *handlers.AIHandler,
	healthHandler *handlers.HealthHandler,
	tokens service.TokenService,
) {
	// Health check
	router.GET("/health", healthHandler.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/profile/:userId", authHandler.Profile)
	}

	articles := router.Group("/api/articles")
	{
		articles.POST("", articleHandler.Create)
		articles.GET("", articleHandler.List)
		articles.GET("/list", articleHandler.ListAll)
		articles.GET("/:id", articleHandler.Get)
		articles.PUT("/:id", articleHandler.Update)
		articles.DELETE("/:id", articleHandler.Delete)
	}

	comments := router.Group("/api/comments")
	{
		comments.POST("", commentHandler.Create)
		comments.GET("/article/:articleId", commentHandler.ListByArticle)
		comments.DELETE("/:id", commentHandler.Delete)
	}

	ai := router.Group("/api/ai")
	{
		ai.POST("/chat", aiHandler.Chat)
		ai.GET("/status", aiHandler.Status)
		ai.GET("/models", aiHandler.Models)
	}

	// Everything not registered above requires a valid token, mirroring
	// an authenticated-by-default boundary around the public groups.
	router.NoRoute(middleware.RequireAuth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.New(http.StatusNotFound, "resource not found", nil))
	})
}

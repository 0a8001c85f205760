package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-management-api/internal/config"
	authorhandler "book-management-api/internal/domains/author/handler"
	bookhandler "book-management-api/internal/domains/book/handler"
	"book-management-api/internal/shared/middleware"
)

func SetupRouter(
	cfg *config.Config,
	pool *pgxpool.Pool,
	authorHandler *authorhandler.AuthorHandler,
	bookHandler *bookhandler.BookHandler,
) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(cfg, pool))

		setupAuthorRoutes(v1, authorHandler)
		setupBookRoutes(v1, bookHandler)
	}

	return router
}

func setupAuthorRoutes(v1 *gin.RouterGroup, h *authorhandler.AuthorHandler) {
	authors := v1.Group("/authors")
	{
		authors.POST("", h.Create)
		authors.GET("", h.List)
		authors.PUT("/:id", h.Update)
		authors.GET("/:id/books", h.GetWithBooks)
	}
}

func setupBookRoutes(v1 *gin.RouterGroup, h *bookhandler.BookHandler) {
	books := v1.Group("/books")
	{
		books.POST("", h.Create)
		books.GET("", h.List)
		books.GET("/:id", h.Get)
		books.PUT("/:id", h.Update)
	}
}

func healthCheckHandler(cfg *config.Config, pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   cfg.App.Version,
		}

		dbStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := pool.Ping(ctx); err != nil {
			dbStatus = "error"
			health["status"] = "degraded"
		}
		health["database"] = dbStatus

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}

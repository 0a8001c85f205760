package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"book-management-api/internal/config"
	authorhandler "book-management-api/internal/domains/author/handler"
	authorrepo "book-management-api/internal/domains/author/repository"
	authorservice "book-management-api/internal/domains/author/service"
	bookhandler "book-management-api/internal/domains/book/handler"
	bookrepo "book-management-api/internal/domains/book/repository"
	bookservice "book-management-api/internal/domains/book/service"
	"book-management-api/internal/infrastructure/database"
	"book-management-api/internal/shared/clock"
)

// Serve wires the application together and runs the HTTP server until a
// termination signal arrives.
func Serve() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	authorRepository := authorrepo.NewPostgresRepository(pool)
	bookRepository := bookrepo.NewPostgresRepository(pool)
	timeProvider := clock.NewDatabaseTimeProvider(pool)

	authorService := authorservice.NewAuthorService(authorRepository, bookRepository, timeProvider)
	bookService := bookservice.NewBookService(bookRepository, authorRepository)

	authorHandler := authorhandler.NewAuthorHandler(authorService)
	bookHandler := bookhandler.NewBookHandler(bookService)

	router := SetupRouter(cfg, pool, authorHandler, bookHandler)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%s", cfg.App.Port),
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info().
			Str("port", cfg.App.Port).
			Str("environment", cfg.App.Environment).
			Msg("server starting")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

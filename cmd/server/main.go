package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"confessd/feed/application"
	"confessd/feed/moderation"
	"confessd/feed/persistence"
	"confessd/internal/config"
	"confessd/internal/middleware"
	"confessd/internal/rest"
	"confessd/shared/db/sqlite"
	"confessd/shared/feedclient"
	"confessd/shared/gemini"
	"confessd/shared/identity"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize dependencies
	database := sqlite.NewSQLiteDB(&sqlite.SQLiteConfig{Path: cfg.SQLitePath})
	if err := database.Connect(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	generator, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.SystemPrompt)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create generation client")
	}

	provider := identity.NewHTTPProvider(cfg.IdentityURL, cfg.IdentityAPIKey)
	selfClient := feedclient.NewClient(cfg.BaseURL)
	filter := moderation.NewFilter()

	postRepo := persistence.NewPostRepository(database.DB())
	profileRepo := persistence.NewProfileRepository(database.DB())
	commentRepo := persistence.NewCommentRepository(database.DB())

	dispatcher := application.NewDispatcher(selfClient)
	defer func() {
		if err := dispatcher.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to gracefully close dispatcher")
		}
	}()

	postService := application.NewPostService(database.DB(), filter, provider, postRepo, profileRepo, dispatcher)
	commentService := application.NewCommentService(filter, provider, commentRepo)
	replyService := application.NewReplyService(generator, selfClient)

	service := gin.New()
	service.Use(middleware.LoggingMiddleware())
	service.Use(gin.CustomRecovery(middleware.HandlePanics()))

	handler := rest.NewHandler(postService, commentService, replyService)
	handler.RegisterRoutes(service)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: service,
	}

	go func() {
		log.Info().Msg("Starting server on port :" + fmt.Sprint(cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Server stopped")
}

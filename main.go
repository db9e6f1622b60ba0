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

	"github.com/sellfurniture/marketplace-be/internal/api"
	"github.com/sellfurniture/marketplace-be/internal/auth"
	"github.com/sellfurniture/marketplace-be/internal/config"
	"github.com/sellfurniture/marketplace-be/internal/database"
	"github.com/sellfurniture/marketplace-be/internal/logger"
	"github.com/sellfurniture/marketplace-be/internal/services"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up database. The process must not accept requests before the
	// store is reachable.
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up token signing
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// Set up services
	userService := services.NewUserService(db)
	locationService := services.NewLocationService(db)
	itemService := services.NewItemService(db)
	visitService := services.NewVisitService(db)

	// Set up router
	router := api.NewRouter(tokens, userService, locationService, itemService, visitService, api.Options{
		AllowAnonymousLocations: cfg.AllowAnonymousLocations,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown: stop accepting, drain in-flight requests, then
	// release the database handle via the deferred Close.
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/onimix/artist-platform/internal/analytics"
	"github.com/onimix/artist-platform/internal/beat"
	"github.com/onimix/artist-platform/internal/catalog"
	"github.com/onimix/artist-platform/internal/config"
	"github.com/onimix/artist-platform/internal/db"
	"github.com/onimix/artist-platform/internal/order"
	"github.com/onimix/artist-platform/internal/store"
	"github.com/onimix/artist-platform/internal/transport"
	"github.com/onimix/artist-platform/internal/verse"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "artist-platform").Logger()

	log.Info().Msg("Artist platform starting...")

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	client, database, err := db.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect from database")
		}
	}()

	st := store.NewMongoStore(database)

	router := transport.NewRouter(transport.Services{
		Verses:    verse.NewService(st),
		Beats:     beat.NewService(st),
		Catalog:   catalog.NewService(st),
		Orders:    order.NewService(st),
		Analytics: analytics.NewService(st),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Shutdown failed")
	}
	log.Info().Msg("Server stopped")
}

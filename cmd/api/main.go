package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dvloznov/savings-projector/internal/api/handlers"
	"github.com/dvloznov/savings-projector/internal/api/middleware"
	"github.com/dvloznov/savings-projector/internal/config"
	"github.com/dvloznov/savings-projector/internal/logger"
	"github.com/dvloznov/savings-projector/internal/pipeline"
)

func main() {
	cfg := config.Load()

	// Flags override environment configuration
	var (
		port     = flag.String("port", cfg.ServerPort, "HTTP server port")
		logLevel = flag.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	log := logger.NewWithLevel(*logLevel)

	engine := pipeline.New(log)

	transactionsHandler := handlers.NewTransactionsHandler(engine, log)
	returnsHandler := handlers.NewReturnsHandler(engine, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORS)

	r.Route("/blackrock/challenge/v1", func(r chi.Router) {
		r.Post("/transactions:parse", transactionsHandler.Parse)
		r.Post("/transactions:validator", transactionsHandler.Validate)
		r.Post("/transactions:filter", transactionsHandler.Filter)
		r.Post("/returns:nps", returnsHandler.NPS)
		r.Post("/returns:index", returnsHandler.Index)
		r.Get("/performance", handlers.Performance)
	})

	r.Get("/health", handlers.Health)

	server := &http.Server{
		Addr:         ":" + *port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", *port).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

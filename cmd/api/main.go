package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exhibitlab/tour-engine/internal/config"
	"github.com/exhibitlab/tour-engine/internal/handlers"
	"github.com/exhibitlab/tour-engine/internal/logger"
	"github.com/exhibitlab/tour-engine/internal/middleware"
	"github.com/exhibitlab/tour-engine/internal/services"
	"github.com/exhibitlab/tour-engine/internal/storage"
	"github.com/exhibitlab/tour-engine/pkg/binder"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	log.Info("Starting Tour Engine API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"data_dir", cfg.DataDir,
		"default_language", cfg.DefaultLanguage)

	store := storage.NewRedisStore(cfg.RedisURL, cfg.DataDir, cfg.ContentCacheTTL, log)

	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()
	if err := store.Ping(storageCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}
	log.Info("Storage connection established successfully")

	catalog := services.NewAssetCatalog(cfg.DataDir, log)
	b := binder.New(log, nil)

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(store, log)
	mux.Handle("/health", healthHandler)

	tourHandler := handlers.NewTourHandler(log, store, catalog, b)
	mux.HandleFunc("/v1/instructions", tourHandler.HandleInstructions)
	mux.HandleFunc("/v1/checkpoints", tourHandler.HandleCheckpoints)
	mux.HandleFunc("/v1/learnmore", tourHandler.HandleLearnMore)

	quizHandler := handlers.NewQuizHandler(log, store, catalog, b)
	mux.Handle("/v1/quiz", quizHandler)
	mux.Handle("/v1/quiz/", quizHandler)

	sessionHandler := handlers.NewSessionHandler(log, store, cfg.DefaultLanguage)
	mux.Handle("/v1/sessions", sessionHandler)
	mux.Handle("/v1/sessions/", sessionHandler)

	handler := middleware.Logger(mux)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ghoOst57/genetic-miniapp/internal/config"
	"github.com/ghoOst57/genetic-miniapp/internal/db"
	"github.com/ghoOst57/genetic-miniapp/internal/doctor"
	"github.com/ghoOst57/genetic-miniapp/internal/logger"
	"github.com/ghoOst57/genetic-miniapp/internal/server"
)

func main() {
	logger.Init()
	defer logger.Sync()
	logger.Info("Starting Genetic MiniApp backend")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DevMode {
		logger.Warn("BOT_TOKEN is not set: /auth/verify will accept ANY payload (dev mode). Do not run like this in production.")
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	catalog := doctor.DefaultCatalog()
	srv := server.New(database, cfg, catalog)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpapi "rent-a-tool/internal/api/http"
	"rent-a-tool/internal/config"
	"rent-a-tool/internal/jobs"
	"rent-a-tool/internal/logger"
	"rent-a-tool/internal/scheduler"
	"rent-a-tool/internal/service"
	"rent-a-tool/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "", "Path to configuration file (defaults plus environment when empty)")
	envFile := flag.String("env-file", ".env", "Optional dotenv file loaded before configuration")
	flag.Parse()

	envErr := godotenv.Load(*envFile)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rent-A-Tool server...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	if envErr != nil {
		logger.Debug("No dotenv file loaded", "path", *envFile, logger.Err(envErr))
	}
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "storage", cfg.Storage.Type)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open tool storage", logger.Err(err))
		log.Fatalf("Failed to open tool storage: %v", err)
	}
	defer backend.Close()

	checkoutSvc := service.NewCheckoutService(backend.Tools)

	var cronScheduler *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		cronScheduler, err = scheduler.NewScheduler(jobs.NewJobRunner(backend.Tools, cfg))
		if err != nil {
			log.Fatalf("Failed to create scheduler: %v", err)
		}
		cronScheduler.Start()
	}

	srv := &http.Server{
		Addr: cfg.GetServerAddress(),
		Handler: httpapi.NewRouter(checkoutSvc, httpapi.NewMetrics(), httpapi.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			RateLimit:      cfg.Server.RateLimit,
			RateBurst:      cfg.Server.RateBurst,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       time.Minute,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("HTTP server error", logger.Err(err))
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", logger.Err(err))
	}
	if cronScheduler != nil {
		cronScheduler.Stop()
	}
	logger.Info("Rent-A-Tool server stopped. Goodbye!")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.FromEnvironment()
	}
	return config.Load(path)
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"rent-a-tool/internal/config"
	"rent-a-tool/internal/console"
	"rent-a-tool/internal/logger"
	"rent-a-tool/internal/rental"
	"rent-a-tool/internal/service"
	"rent-a-tool/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (defaults plus environment when empty)")
	envFile := flag.String("env-file", ".env", "Optional dotenv file loaded before configuration")
	flag.Parse()

	_ = godotenv.Load(*envFile)

	var (
		cfg *config.Config
		err error
	)
	if *configPath == "" {
		cfg, err = config.FromEnvironment()
	} else {
		cfg, err = config.Load(*configPath)
	}
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Logs go to stderr so they never interleave with the clerk prompt
	logger.InitializeWithWriter(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open tool storage: %v", err)
	}
	defer backend.Close()

	c := console.New(service.NewCheckoutService(backend.Tools), os.Stdin, os.Stdout)
	if err := c.Run(ctx); err != nil {
		var validationErr *rental.CheckoutValidationError
		if !errors.As(err, &validationErr) {
			fmt.Println("There was an unexpected issue with the system. Please restart the application or contact Support for further help.")
			logger.Error("Checkout session failed", logger.Err(err))
		}
		backend.Close()
		os.Exit(1)
	}
}

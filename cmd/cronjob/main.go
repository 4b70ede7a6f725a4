package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"rent-a-tool/internal/config"
	"rent-a-tool/internal/jobs"
	"rent-a-tool/internal/logger"
	"rent-a-tool/internal/scheduler"
	"rent-a-tool/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "", "Path to configuration file (defaults plus environment when empty)")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'inventory-audit', 'all')")
	flag.Parse()

	_ = godotenv.Load()

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

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rent-A-Tool cronjob runner...", "log_level", cfg.Log.Level, "storage", cfg.Storage.Type)

	backend, err := storage.Open(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to open tool storage", logger.Err(err))
		log.Fatalf("Failed to open tool storage: %v", err)
	}
	defer backend.Close()

	jobRunner := jobs.NewJobRunner(backend.Tools, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		if !runJobOnce(jobRunner, *runOnce) {
			backend.Close()
			os.Exit(1)
		}
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	cronScheduler, err := scheduler.NewScheduler(jobRunner)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.", "next_run", cronScheduler.NextRun())

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once; false means the name is unknown
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) bool {
	switch jobName {
	case "inventory-audit":
		jobRunner.AuditInventory()
	case "all":
		jobRunner.RunAll()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - inventory-audit\n")
		fmt.Printf("  - all\n")
		return false
	}
	return true
}

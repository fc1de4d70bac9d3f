package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/config"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/container"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/logging"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.Info("Starting Shopify products fetcher...")

	// Load configuration using viper
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logging.Setup(cfg.Log)
	log.Info("Configuration loaded successfully")

	// Initialize container with all dependencies
	app, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Run the application
	if err := app.Run(ctx); err != nil {
		log.Fatalf("Application exited with error: %v", err)
	}

	log.Info("Application finished successfully")
}

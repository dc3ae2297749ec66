// lootd serves loot table previews over WebSocket.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lawnchairsociety/lootscale/internal/config"
	"github.com/lawnchairsociety/lootscale/internal/logger"
	"github.com/lawnchairsociety/lootscale/internal/server"
)

func main() {
	configFile := flag.String("config", "data/lootscale.yaml", "Path to lootscale config YAML file")
	address := flag.String("addr", "", "Listen address (overrides config)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *address != "" {
		cfg.Preview.Address = *address
	}

	// Initialize logger first (before any logging)
	if err := logger.Initialize(cfg.Logging); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	logger.Info("Starting loot preview server", "config", *configFile)

	catalog, err := cfg.OpenCatalog(context.Background())
	if err != nil {
		log.Fatalf("Failed to load item catalog: %v", err)
	}

	if cfg.Preview.TokenHash == "" {
		logger.Warning("Preview token not configured - authentication disabled")
	}

	srv := server.NewServer(cfg.Preview, catalog)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Preview server failed: %v", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
}

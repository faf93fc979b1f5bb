package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/campuswatch/bugboard/internal/config"
	"github.com/campuswatch/bugboard/internal/engine"
	"github.com/campuswatch/bugboard/internal/server"
	"github.com/campuswatch/bugboard/internal/storage/memory"
)

func main() {
	// Load .env if present; real env vars still win
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	flag.Parse()

	// Load configuration
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadConfigFromFile(*configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the in-memory sighting collection. The board is
	// session-scoped: restarting the server starts empty.
	store := memory.NewStore()
	defer store.Close()

	// Initialize the submission engine
	eng := engine.New(store, engine.Config{
		MaxImageBytes: cfg.Limits.MaxImageBytes,
	})

	// Setup context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr, _ := server.Start(ctx, cfg, store, eng)
	log.Printf("Bugboard running at http://%s", addr)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")
	cancel()
	time.Sleep(1 * time.Second) // Give time for connections to close
}

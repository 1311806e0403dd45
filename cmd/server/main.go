package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"peliculas-service/internal/api"
	"peliculas-service/internal/config"
	"peliculas-service/internal/logging"
	"peliculas-service/internal/metrics"
	"peliculas-service/internal/storage"
)

// @title Peliculas API
// @version 1.0
// @description API for creating tenant-partitioned movie records
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Init Metrics
	metrics.Init()

	// Load Configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Println("Configuration loaded")

	if cfg.TableName == "" {
		// Not fatal: the handler reports the missing table per request.
		log.Println("⚠️ TABLE_NAME not set, create requests will fail with 500")
	}

	logger := logging.New(os.Stdout, cfg.Log.Path)

	// Init DynamoDB client
	store, err := storage.NewDynamoStore(context.Background(), cfg.AWS.Region, cfg.AWS.Endpoint)
	if err != nil {
		log.Fatalf("Failed to init DynamoDB client: %v", err)
	}
	log.Println("DynamoDB client ready")

	// Init API
	apiHandler := api.NewAPI(cfg, store, logger)
	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: apiHandler.Router(),
	}

	// Graceful Shutdown Setup
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("🚀 Starting API server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done() // Wait for interrupt signal
	log.Println("Shutdown initiated...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}

	log.Println("Graceful shutdown complete")
}

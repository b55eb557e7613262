package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pageza/tinybites/backend/config"
	"github.com/pageza/tinybites/backend/internal/database"
	"github.com/pageza/tinybites/backend/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.OpenAIAPIKey == "" && !cfg.UseMockData {
		log.Printf("[Main] no OpenAI credential configured, generation will run in fallback mode")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis is optional: without it the nutrition cache and rate limiter
	// are disabled but every endpoint still works.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("[Main] Redis unavailable, continuing without cache and rate limiting: %v", err)
		redisClient = nil
	}

	// S3 is optional too: photo uploads report unavailable without it.
	s3Config, err := config.NewS3Config(context.Background())
	if err != nil {
		log.Printf("[Main] S3 unavailable, photo uploads disabled: %v", err)
		s3Config = nil
	}

	srv := server.New(cfg, db, redisClient, s3Config)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

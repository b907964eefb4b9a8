package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/nutriflow/backend/config"
	"github.com/nutriflow/backend/internal/database"
	"github.com/nutriflow/backend/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis and S3 are optional. Without Redis target caching is skipped,
	// without S3 the photo endpoints are not mounted.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, target caching disabled: %v", err)
		redisClient = nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s3cfg, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		log.Printf("S3 unavailable, photo uploads disabled: %v", err)
		s3cfg = nil
	}

	srv := server.New(cfg, db, redisClient, s3cfg)

	log.Println("Starting server...")
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}

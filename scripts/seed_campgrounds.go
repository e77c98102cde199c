package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"yelpcamp/internal/config"
	"yelpcamp/internal/factory"
	"yelpcamp/internal/repository"
	"yelpcamp/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	log.Println("🚀 Seeding campgrounds...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// Connect to database with retry (for dockerized database startup)
	store, err := connectWithRetry(ctx, cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close(ctx)

	data, err := seed.LoadFile("scripts/data/campgrounds.yaml")
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := seed.Seed(ctx, store, data, seed.DefaultCount, rng); err != nil {
		log.Fatalf("Failed to seed campgrounds: %v", err)
	}

	log.Printf("✅ Seeded %d campgrounds", seed.DefaultCount)
}

// connectWithRetry opens the configured store, retrying while the database starts up.
func connectWithRetry(ctx context.Context, cfg *config.Config, maxAttempts int, delay time.Duration) (repository.Store, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		store, err := factory.NewStore(ctx, cfg)
		if err == nil {
			return store, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

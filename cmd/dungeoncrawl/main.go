// Package main is the entry point for dungeoncrawl.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, cfg.OTLPHeaders)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without tracing")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
	log.Printf("Dungeon seed was %d", g.Seed())
}

// Package main is the entry point for hanoiband.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/hanoiband/internal/game"
	"github.com/samdwyer/hanoiband/internal/telemetry"
)

func main() {
	var (
		level = flag.String("level", "", "difficulty preset from levels.json (e.g. classic, expert)")
		disks = flag.Int("disks", 0, "disk count, overrides -level when set")
		auto  = flag.Bool("auto", false, "watch the solver play instead of playing yourself")
		delay = flag.Duration("delay", 0, "pause between auto-solve moves (e.g. 250ms)")
	)
	flag.Parse()

	// Load .env file for local development
	// This makes HONEYCOMB_HANOIBAND_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	// Create and run game
	g, err := game.New(game.Config{
		Level:     *level,
		Disks:     *disks,
		Auto:      *auto,
		MoveDelay: *delay,
	})
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_HANOIBAND_API_KEY")
	dataset := os.Getenv("HONEYCOMB_HANOIBAND_DATASET")
	if dataset == "" {
		dataset = "hanoiband" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}

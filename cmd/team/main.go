package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/gridline/crewhub/internal/team/app"
)

func main() {
	// Best effort: a .env file is a local development convenience.
	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}

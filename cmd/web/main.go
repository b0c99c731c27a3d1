package main

import (
	"amora_backend/internal/app"
	"amora_backend/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; container deployments inject real env vars.
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, relying on environment")
	}

	app.Run()
}

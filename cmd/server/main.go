package main

import (
	"os"

	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/logger"
	"blogapi/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logger.Log.Infof("no .env file found, reading env vars from system")
	}
	logger.InitFromEnv()

	cfg := config.Load()

	// Initialize Database
	db.Init(cfg.DatabaseURL)

	r := router.New(cfg)

	logger.Log.Infof("blog api listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Errorf("server exited: %v", err)
		os.Exit(1)
	}
}

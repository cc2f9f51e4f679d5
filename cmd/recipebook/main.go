package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"

	"github.com/recipebook-dev/recipebook/db"
	"github.com/recipebook-dev/recipebook/internal/config"
	"github.com/recipebook-dev/recipebook/internal/logger"
	"github.com/recipebook-dev/recipebook/internal/router"
)

func main() {
	logger.Init()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file loaded", zap.Error(err))
	}

	cfg, err := config.Load()

	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	conn, err := db.Connect(postgres.Open(cfg.DatabaseURL))

	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.Migrate(conn); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	r := router.NewRouter(conn, cfg)

	logger.Info("starting server", zap.String("port", cfg.Port))

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

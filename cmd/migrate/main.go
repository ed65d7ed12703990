package main

import (
	"flag"
	"log"

	"study-assistant/internal/config"
	"study-assistant/internal/database"
	"study-assistant/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	down := flag.Int("down", 0, "roll back this many migrations instead of applying pending ones")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXDB(cfg.DB)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if *down > 0 {
		if err := database.RollbackMigrations(db.DB, *down); err != nil {
			l.Fatal("Failed to roll back migrations", zap.Int("steps", *down), zap.Error(err))
		}
		l.Info("Migrations rolled back", zap.Int("steps", *down))
		return
	}

	if err := database.RunMigrations(db.DB); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations applied", zap.String("dsn", cfg.DB.DSN))
}

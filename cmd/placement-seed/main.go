package main

import (
	"context"
	"log"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/placement-api/pkg/config"
	"github.com/noah-isme/placement-api/pkg/database"
	"github.com/noah-isme/placement-api/pkg/logger"
)

const defaultDemoPassword = "password123"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx := context.Background()
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("connect database", zap.Error(err))
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		logr.Fatal("ensure schema", zap.Error(err))
	}

	password := cfg.Seed.DemoPassword
	if password == "" {
		password = defaultDemoPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logr.Fatal("hash demo password", zap.Error(err))
	}

	inserted, err := database.SeedDemoUsers(ctx, db, string(hash))
	if err != nil {
		logr.Fatal("seed demo users", zap.Error(err))
	}
	logr.Info("demo data seeded", zap.Int64("inserted", inserted), zap.Int("accounts", len(database.DemoUsers)))
}

// Package main 初始化数据库结构并写入系统默认行业
package main

import (
	"context"
	"fmt"
	"os"

	"pitchcraft-ai-api/internal/config"
	"pitchcraft-ai-api/internal/domain/entity"
	"pitchcraft-ai-api/internal/wire"
	"pitchcraft-ai-api/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(
		cfg.Observability.Logging.Level,
		cfg.Observability.Logging.Format,
	)

	ctx := context.Background()
	log := logger.FromContext(ctx)
	log.Info("starting bootstrap", "env", cfg.App.Env)

	boot, cleanup, err := wire.InitializeBootstrap(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize bootstrap", err)
	}
	defer cleanup()

	// 迁移表结构
	if err := boot.PgClient.AutoMigrate(
		&entity.User{},
		&entity.Pitch{},
		&entity.Feedback{},
		&entity.Industry{},
	); err != nil {
		logger.Fatal(ctx, "failed to migrate schema", err)
	}
	log.Info("schema migrated")

	// 写入系统默认行业
	if err := boot.IndustryRepo.SeedDefaults(ctx, entity.DefaultIndustries); err != nil {
		logger.Fatal(ctx, "failed to seed default industries", err)
	}
	log.Info("default industries seeded", "count", len(entity.DefaultIndustries))
}

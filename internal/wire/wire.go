// Package wire 提供依赖注入装配
package wire

import (
	"context"

	"pitchcraft-ai-api/internal/application/draft"
	"pitchcraft-ai-api/internal/application/generation"
	"pitchcraft-ai-api/internal/config"
	"pitchcraft-ai-api/internal/infrastructure/llm"
	"pitchcraft-ai-api/internal/infrastructure/persistence/postgres"
	"pitchcraft-ai-api/internal/infrastructure/persistence/redis"
	"pitchcraft-ai-api/internal/interfaces/http/handler"
	"pitchcraft-ai-api/internal/interfaces/http/router"
	"pitchcraft-ai-api/pkg/logger"
)

// App 应用依赖容器
type App struct {
	Router *router.Router

	PgClient    *postgres.Client
	RedisClient *redis.Client
}

// InitializeApp 装配整个应用
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	pgClient, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		return nil, nil, err
	}

	redisClient, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		_ = pgClient.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn(ctx, "failed to close redis client", "error", err)
		}
		if err := pgClient.Close(); err != nil {
			logger.Warn(ctx, "failed to close postgres client", "error", err)
		}
	}

	// 数据层
	userRepo := postgres.NewUserRepository(pgClient)
	pitchRepo := postgres.NewPitchRepository(pgClient)
	feedbackRepo := postgres.NewFeedbackRepository(pgClient)
	industryRepo := postgres.NewIndustryRepository(pgClient)
	cache := redis.NewCache(redisClient)
	draftStore := redis.NewDraftStore(redisClient, cfg.Draft.TTL)

	// 应用层
	einoFactory := llm.NewEinoFactory(cfg)
	gateway := generation.NewGateway(einoFactory, pitchRepo)
	draftService := draft.NewService(draftStore)
	wheel := draft.NewWheel(cfg.Draft.SpinDelay)

	// 接口层
	handlers := &router.Handlers{
		Health:   handler.NewHealthHandler(pgClient, redisClient),
		Auth:     handler.NewAuthHandler(cfg.Security.JWT, userRepo),
		Pitch:    handler.NewPitchHandler(gateway, pitchRepo, feedbackRepo, draftService),
		Industry: handler.NewIndustryHandler(industryRepo, cache),
		Draft:    handler.NewDraftHandler(draftService, wheel),
	}

	app := &App{
		Router:      router.New(cfg, handlers),
		PgClient:    pgClient,
		RedisClient: redisClient,
	}

	return app, cleanup, nil
}

// Bootstrap bootstrap 所需的最小依赖
type Bootstrap struct {
	PgClient     *postgres.Client
	IndustryRepo *postgres.IndustryRepository
}

// InitializeBootstrap 装配 bootstrap 依赖（仅 PostgreSQL）
func InitializeBootstrap(ctx context.Context, cfg *config.Config) (*Bootstrap, func(), error) {
	pgClient, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := pgClient.Close(); err != nil {
			logger.Warn(ctx, "failed to close postgres client", "error", err)
		}
	}

	return &Bootstrap{
		PgClient:     pgClient,
		IndustryRepo: postgres.NewIndustryRepository(pgClient),
	}, cleanup, nil
}

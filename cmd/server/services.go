package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"codeberg.org/tubespark/server/internal/auth"
	"codeberg.org/tubespark/server/internal/config"
	"codeberg.org/tubespark/server/internal/generation"
	"codeberg.org/tubespark/server/internal/llm"
	"codeberg.org/tubespark/server/internal/logger"
	"codeberg.org/tubespark/server/internal/metrics"
	"codeberg.org/tubespark/server/internal/quota"
	"codeberg.org/tubespark/server/internal/ratelimit"
	"codeberg.org/tubespark/server/internal/scripts"
	"codeberg.org/tubespark/server/internal/usage"
	"codeberg.org/tubespark/server/tubespark/ideas"
	"codeberg.org/tubespark/server/tubespark/subscriptions"
)

// creates and configures all domain services. When migrate is set the
// Postgres tables are created before anything serves traffic.
func InitializeServices(ctx context.Context, cfg *config.Config, db *pgxpool.Pool, redisStore *quota.RedisStore, m *metrics.Metrics, migrate bool) (*Services, error) {
	authenticator, err := auth.NewAuthenticator(cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticator: %w", err)
	}

	ideaRepo := ideas.NewPostgresRepository(db)
	if migrate {
		if err := ideaRepo.Initialize(ctx); err != nil {
			return nil, fmt.Errorf("failed to initialize ideas table: %w", err)
		}
	}

	ledgerStore, err := newLedgerStore(ctx, cfg.QuotaBackend, db, redisStore, migrate)
	if err != nil {
		return nil, err
	}

	ledger := quota.NewLedger(ledgerStore, subscriptions.NewRepository(db), quota.WithObserver(m))

	textGenerator, err := llm.NewTextGenerator(cfg.Generator)
	if err != nil {
		return nil, fmt.Errorf("failed to create text generator: %w", err)
	}

	orchestrator := generation.NewOrchestrator(
		ledger,
		generation.NewLLMCapability(textGenerator, cfg.Generator.MaxTokens),
		generation.WithTimeout(cfg.GenerationTimeout),
		generation.WithObserver(m),
	)

	ideaStore := ideas.NewStore(ideaRepo)

	scriptGenerator := scripts.NewGenerator(ideaStore, ledger, textGenerator,
		scripts.WithTimeout(cfg.GenerationTimeout),
		scripts.WithMaxTokens(cfg.Generator.MaxTokens),
	)

	var limiterClient *redis.Client
	if redisStore != nil {
		limiterClient = redisStore.Client()
	}

	rateLimit, err := ratelimit.New(cfg.GenerateRateLimit, limiterClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limiter: %w", err)
	}

	logger.Info("services initialized",
		"quota_backend", cfg.QuotaBackend,
		"generator_provider", cfg.Generator.Provider,
		"generate_rate_limit", cfg.GenerateRateLimit,
		"generation_timeout", cfg.GenerationTimeout,
	)

	return &Services{
		Auth:         authenticator,
		Ledger:       ledger,
		Ideas:        ideaStore,
		Orchestrator: orchestrator,
		Scripts:      scriptGenerator,
		Reporter:     usage.NewReporter(ledger, ideaStore),
		RateLimit:    rateLimit,
	}, nil
}

func newLedgerStore(ctx context.Context, backend string, db *pgxpool.Pool, redisStore *quota.RedisStore, migrate bool) (quota.Store, error) {
	switch backend {
	case config.QuotaBackendRedis:
		if redisStore == nil {
			return nil, fmt.Errorf("redis quota backend requires REDIS_URL")
		}
		return redisStore, nil
	case config.QuotaBackendMemory:
		logger.Warn("using in-memory quota store, counters are per process and lost on restart")
		return quota.NewMemoryStore(), nil
	default:
		store := quota.NewPostgresStore(db)
		if migrate {
			if err := store.Initialize(ctx); err != nil {
				return nil, fmt.Errorf("failed to initialize usage table: %w", err)
			}
		}
		return store, nil
	}
}

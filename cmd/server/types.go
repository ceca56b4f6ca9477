package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/tubespark/server/internal/auth"
	"codeberg.org/tubespark/server/internal/config"
	"codeberg.org/tubespark/server/internal/generation"
	"codeberg.org/tubespark/server/internal/metrics"
	"codeberg.org/tubespark/server/internal/quota"
	"codeberg.org/tubespark/server/internal/scripts"
	"codeberg.org/tubespark/server/internal/usage"
	"codeberg.org/tubespark/server/tubespark/ideas"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool
	redis    *quota.RedisStore // nil when REDIS_URL is unset
	config   *config.Config
	services *Services
	metrics  *metrics.Metrics
	router   *gin.Engine
}

// holds the domain services wired by InitializeServices
type Services struct {
	Auth         *auth.Authenticator
	Ledger       *quota.Ledger
	Ideas        *ideas.Store
	Orchestrator *generation.Orchestrator
	Scripts      *scripts.Generator
	Reporter     *usage.Reporter
	RateLimit    gin.HandlerFunc
}

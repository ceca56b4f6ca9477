package config

import (
	"time"

	"codeberg.org/tubespark/server/internal/llm"
)

// quota counter backends
const (
	QuotaBackendPostgres = "postgres"
	QuotaBackendRedis    = "redis"
	QuotaBackendMemory   = "memory"
)

type Config struct {
	DatabaseURL        string
	RedisURL           string
	JWTSecret          string
	Environment        string
	Port               string
	CORSAllowedOrigins []string

	Generator         llm.Config
	GenerationTimeout time.Duration

	QuotaBackend      string
	GenerateRateLimit string // ulule formatted rate, e.g. "20-M"
}

type Flags struct {
	Port    string
	Migrate bool
}

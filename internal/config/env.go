package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"codeberg.org/tubespark/server/internal/llm"
)

const (
	defaultPort              = "8080"
	defaultGenerationTimeout = 45 * time.Second
	defaultGenerateRateLimit = "20-M"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (*Config, error) {
	databaseURL := getenv("DATABASE_URL")
	if databaseURL == "" {
		databaseURL = getenv("SUPABASE_CONNECTION_STRING")
	}

	jwtSecret := getenv("JWT_SECRET")
	redisURL := getenv("REDIS_URL")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	provider := llm.Provider(strings.ToLower(getenv("GENERATOR_PROVIDER")))
	if provider == "" {
		provider = llm.ProviderOpenAI // default
	}

	var apiKey string

	switch provider {
	case llm.ProviderOpenAI:
		apiKey = getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
	case llm.ProviderAnthropic:
		apiKey = getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
		}
	default:
		return nil, fmt.Errorf("unsupported GENERATOR_PROVIDER %q", provider)
	}

	generator := llm.Config{
		Provider: provider,
		APIKey:   apiKey,
		Model:    getenv("GENERATOR_MODEL"),
	}

	if maxTokensStr := getenv("GENERATOR_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			generator.MaxTokens = val
		}
	}

	if tempStr := getenv("GENERATOR_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			generator.Temperature = float32(val)
		}
	}

	timeout := defaultGenerationTimeout
	if timeoutStr := getenv("GENERATION_TIMEOUT"); timeoutStr != "" {
		val, err := time.ParseDuration(timeoutStr)
		if err != nil || val <= 0 {
			return nil, fmt.Errorf("invalid GENERATION_TIMEOUT %q", timeoutStr)
		}
		timeout = val
	}

	quotaBackend := strings.ToLower(getenv("QUOTA_BACKEND"))
	if quotaBackend == "" {
		quotaBackend = QuotaBackendPostgres
	}

	switch quotaBackend {
	case QuotaBackendPostgres, QuotaBackendMemory:
	case QuotaBackendRedis:
		if redisURL == "" {
			return nil, fmt.Errorf("REDIS_URL environment variable is required when QUOTA_BACKEND=redis")
		}
	default:
		return nil, fmt.Errorf("unsupported QUOTA_BACKEND %q", quotaBackend)
	}

	rateLimit := getenv("GENERATE_RATE_LIMIT")
	if rateLimit == "" {
		rateLimit = defaultGenerateRateLimit
	}

	environment := getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	port := getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	return &Config{
		DatabaseURL:        databaseURL,
		RedisURL:           redisURL,
		JWTSecret:          jwtSecret,
		Environment:        environment,
		Port:               port,
		CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS")),
		Generator:          generator,
		GenerationTimeout:  timeout,
		QuotaBackend:       quotaBackend,
		GenerateRateLimit:  rateLimit,
	}, nil
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

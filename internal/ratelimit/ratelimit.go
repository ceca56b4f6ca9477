package ratelimit

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	apierrors "codeberg.org/tubespark/server/internal/errors"
	"codeberg.org/tubespark/server/internal/logger"
)

const keyPrefix = "ratelimit"

// builds a gin middleware limiting requests to formatted (e.g. "20-M"),
// counted in redis when client is non-nil and in memory otherwise
func New(formatted string, client *redis.Client) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", formatted, err)
	}

	var store limiter.Store

	if client != nil {
		store, err = sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix: keyPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
		}
	} else {
		store = memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          keyPrefix,
			CleanUpInterval: limiter.DefaultCleanUpInterval,
		})
	}

	return mgin.NewMiddleware(
		limiter.New(store, rate),
		mgin.WithKeyGetter(keyByUser),
		mgin.WithLimitReachedHandler(limitReached),
		mgin.WithErrorHandler(limiterError),
	), nil
}

// authenticated routes are limited per user, anonymous ones per client IP
func keyByUser(c *gin.Context) string {
	if userID := c.GetString("user_id"); userID != "" {
		return "user:" + userID
	}

	return "ip:" + c.ClientIP()
}

func limitReached(c *gin.Context) {
	logger.Warn("rate limit reached",
		"path", c.Request.URL.Path,
		"user_id", c.GetString("user_id"),
		"client_ip", c.ClientIP(),
	)

	apierrors.TooManyRequests(c, "too many requests, slow down")
}

func limiterError(c *gin.Context, err error) {
	apierrors.InternalError(c, "rate limiter unavailable", err)
}

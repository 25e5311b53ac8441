package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/dtroode/backend-template/internal/api/http/handler"
	"github.com/dtroode/backend-template/internal/logger"
	"github.com/dtroode/backend-template/internal/model"
)

// RateLimitPrefix namespaces limiter keys in the shared store.
const RateLimitPrefix = "ratelimit:"

// NewLimiterStore keeps counters in Redis when a client is given and in
// process memory otherwise.
func NewLimiterStore(client redis.UniversalClient) (limiter.Store, error) {
	if client == nil {
		return memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          RateLimitPrefix,
			CleanUpInterval: limiter.DefaultCleanUpInterval,
		}), nil
	}

	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix:   RateLimitPrefix,
		MaxRetry: 3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
	}
	return store, nil
}

// NewRateLimit limits requests per client IP. rate uses the limiter format,
// e.g. "20-M"; an empty rate disables limiting.
func NewRateLimit(rate string, store limiter.Store, logger *logger.Logger) (gin.HandlerFunc, error) {
	if rate == "" {
		return func(c *gin.Context) { c.Next() }, nil
	}

	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", rate, err)
	}

	return mgin.NewMiddleware(
		limiter.New(store, r),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			logger.WarnContext(c.Request.Context(), "Rate limit middleware: limit reached",
				"path", c.FullPath(),
				"client_ip", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, handler.ErrorResponse{Detail: "Too many requests"})
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			logger.ErrorContext(c.Request.Context(), "Rate limit middleware: store failed",
				"error", err.Error())
			handler.Abort(c, fmt.Errorf("%w: %w", model.ErrDependencyUnavailable, err))
		}),
	), nil
}

package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"jobboard-backend/internal/config"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/utilities"
)

func keyFunc(c *gin.Context) string {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		return "ip: " + c.ClientIP()
	}
	return "user: " + user.ID.String()
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.Header("Retry-After", strconv.Itoa(int(math.Ceil(time.Until(info.ResetTime).Seconds()))))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, utilities.ErrorResponse{
		Error: "Too many requests. Please try again later.",
	})
}

// RateLimiterMiddleware limits each client to reqPerSec requests per second
// with counters kept in process memory.
func RateLimiterMiddleware(reqPerSec uint) gin.HandlerFunc {

	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Second,
		Limit: reqPerSec,
	})

	return ratelimit.RateLimiter(store, &ratelimit.Options{
		KeyFunc:      keyFunc,
		ErrorHandler: errorHandler,
	})
}

// RedisRateLimiterMiddleware is RateLimiterMiddleware with counters shared
// through redis, for deployments running several instances.
func RedisRateLimiterMiddleware(client *redis.Client, reqPerSec uint) gin.HandlerFunc {

	store := ratelimit.RedisStore(&ratelimit.RedisOptions{
		RedisClient: client,
		Rate:        time.Second,
		Limit:       reqPerSec,
	})

	return ratelimit.RateLimiter(store, &ratelimit.Options{
		KeyFunc:      keyFunc,
		ErrorHandler: errorHandler,
	})
}

// NewRateLimiter picks the redis or in-memory limiter from cfg.
// The returned client is nil for the in-memory limiter and must be closed otherwise.
func NewRateLimiter(cfg config.RateLimitConfig) (gin.HandlerFunc, *redis.Client) {
	reqPerSec := cfg.RequestsPerSecond
	if reqPerSec == 0 {
		reqPerSec = 5
	}

	if cfg.RedisAddr == "" {
		return RateLimiterMiddleware(reqPerSec), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	logger.Logger.Info("Rate limiter uses redis", zap.String("addr", cfg.RedisAddr))
	return RedisRateLimiterMiddleware(client, reqPerSec), client
}

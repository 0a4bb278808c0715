package middleware

import (
	"errors"
	"strconv"

	"talentpulse/config"
	"talentpulse/internal/core"
	"talentpulse/internal/database/redis/repository"
	cErr "talentpulse/internal/pkg/error"
	"talentpulse/internal/pkg/response"
	"talentpulse/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultRateLimitWindowSec = 60

// RateLimit 以 client IP 為單位的固定視窗限流；Redis 未啟用或 RATE_LIMIT=0 時直接放行
type RateLimit struct {
	logger                *zap.Logger
	trace                 *telemetry.Trace
	metric                *telemetry.Metric
	rateLimiterRepository *repository.RateLimiterRepository
	limit                 int
	windowSec             int64
}

func NewRateLimit(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	conf *config.Configuration,
	rateLimiterRepository *repository.RateLimiterRepository,
) *RateLimit {
	windowSec := conf.Redis.WindowSec
	if windowSec <= 0 {
		windowSec = defaultRateLimitWindowSec
	}
	return &RateLimit{
		logger:                logger,
		trace:                 trace,
		metric:                metric,
		rateLimiterRepository: rateLimiterRepository,
		limit:                 conf.Redis.RateLimit,
		windowSec:             windowSec,
	}
}

func (middleware *RateLimit) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if middleware.limit <= 0 || !middleware.rateLimiterRepository.Enabled() {
			c.Next()
			return
		}

		ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanRateLimitMiddleware))
		clientKey := c.ClientIP()
		remaining, ttlSec, err := middleware.rateLimiterRepository.Consume(ctx, clientKey, middleware.windowSec, middleware.limit)

		meta := core.TraceRateLimitMiddlewareMeta{
			ClientKey:   clientKey,
			ConfigLimit: middleware.limit,
			Remaining:   remaining,
			TTLSeconds:  ttlSec,
		}
		blocked := errors.Is(err, repository.ErrRateLimitExceeded)
		if err != nil && !blocked {
			// Redis 異常時放行，只記錄
			meta.Degraded = true
			middleware.trace.ApplyTraceAttributes(span, meta)
			middleware.logger.Warn("rate limiter unavailable, request allowed",
				zap.String("requestId", requestID(c)),
				zap.Error(err),
			)
			end(nil)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(middleware.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(ttlSec, 10))

		meta.Blocked = blocked
		middleware.trace.ApplyTraceAttributes(span, meta)
		end(nil)

		if blocked {
			c.Header("Retry-After", strconv.FormatInt(ttlSec, 10))
			middleware.metric.ObserveRateLimited(c.FullPath())
			response.AbortWithError(c, cErr.RateLimitExceeded("rate limit exceeded, retry in "+strconv.FormatInt(ttlSec, 10)+"s"))
			return
		}
		c.Next()
	}
}

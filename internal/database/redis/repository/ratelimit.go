package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"talentpulse/internal/core"
	client "talentpulse/internal/database/client"
	"talentpulse/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

var (
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrRedisDisabled     = errors.New("redis is disabled")
)

// RateLimiterRepository 固定視窗計數，key 以 client 識別（IP）區分
type RateLimiterRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewRateLimiterRepository(trace *telemetry.Trace, client *client.RedisClient) *RateLimiterRepository {
	return &RateLimiterRepository{trace: trace, client: client.Client()}
}

// Enabled Redis 未啟用時限流 middleware 直接放行
func (repository *RateLimiterRepository) Enabled() bool {
	return repository.client != nil
}

// Consume 消耗一次配額；自動處理新視窗初始化與剩餘 TTL。
// 回傳：remaining（剩餘次數）、ttlSec（剩餘秒數）、err（若超限為 ErrRateLimitExceeded）
func (repository *RateLimiterRepository) Consume(
	contextValue context.Context,
	clientKey string,
	windowSeconds int64,
	limitCount int,
) (remainingCount int, timeToLiveSeconds int64, returnedError error) {
	if repository.client == nil {
		return limitCount, 0, ErrRedisDisabled
	}

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() {
		// 超限是預期結果，不標記 span 錯誤
		if errors.Is(returnedError, ErrRateLimitExceeded) {
			endSpan(nil)
			return
		}
		endSpan(returnedError)
	}()

	traceMetadata := core.TraceRateLimitMeta{
		ClientKey: clientKey,
		Limit:     limitCount,
		WindowSec: windowSeconds,
		Op:        "consume",
	}

	redisKey := repository.buildKey(clientKey)
	expirationDuration := time.Duration(windowSeconds) * time.Second

	// SETNX key (limit-1) EX window：成功代表新視窗的第一次呼叫
	wasSet, setError := repository.client.SetNX(contextValue, redisKey, limitCount-1, expirationDuration).Result()
	if setError != nil {
		return 0, 0, setError
	}
	if wasSet {
		remainingCount = limitCount - 1
		timeToLiveSeconds = windowSeconds
		if remainingCount < 0 {
			remainingCount = 0
			returnedError = ErrRateLimitExceeded
		}
		traceMetadata.Remaining, traceMetadata.TTL = remainingCount, timeToLiveSeconds
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
		return remainingCount, timeToLiveSeconds, returnedError
	}

	// 已存在 → DECR 與 TTL 一次往返
	pipeline := repository.client.TxPipeline()
	decrCommand := pipeline.Decr(contextValue, redisKey)
	ttlCommand := pipeline.TTL(contextValue, redisKey)
	if _, execError := pipeline.Exec(contextValue); execError != nil {
		return 0, 0, execError
	}

	newValue := decrCommand.Val()
	ttlDuration := ttlCommand.Val()
	if ttlDuration > 0 {
		timeToLiveSeconds = int64(ttlDuration.Seconds())
	} else {
		// key 遺失 TTL（例如被手動寫入）時補上，避免永久封鎖
		repository.client.Expire(contextValue, redisKey, expirationDuration)
		timeToLiveSeconds = windowSeconds
	}

	if newValue < 0 {
		remainingCount = 0
		returnedError = ErrRateLimitExceeded
	} else {
		remainingCount = int(newValue)
	}
	traceMetadata.Remaining, traceMetadata.TTL = remainingCount, timeToLiveSeconds
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	return remainingCount, timeToLiveSeconds, returnedError
}

// buildKey 建構 RateLimiter 用的 Redis key
func (repository *RateLimiterRepository) buildKey(clientKey string) string {
	return fmt.Sprintf("%s:%s:%s", core.RedisKeyServerName, core.RedisKeyRateLimit, clientKey)
}

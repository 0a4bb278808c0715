package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"talentpulse/internal/core"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewTraceEntry,
	NewCors,
	NewLogger,
	NewRecovery,
	NewRateLimit,
	NewResponse,
)

// untraced swagger / metrics / version / health-check / pprof 不做 trace、log 與統一回應
func untraced(c *gin.Context) bool {
	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}
	for _, prefix := range core.UntracedPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// requestStart TraceEntry 記錄的進入時間，沒有則為現在
func requestStart(c *gin.Context) time.Time {
	if startTime, exists := c.Get(core.ContextRequestStartKey); exists {
		if t, ok := startTime.(time.Time); ok {
			return t
		}
	}
	return time.Now().UTC()
}

func requestID(c *gin.Context) string {
	return c.GetString(core.ContextRequestIDKey)
}

// hashIP 只保留 client IP 的雜湊，避免 log 中出現原始 IP
func hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:8])
}

func fluentdTimestamp(t time.Time) string {
	return t.UTC().Format(core.FluentdTimeLayout)
}

package middleware

import (
	"strings"

	"talentpulse/config"
	"talentpulse/internal/core"
	"talentpulse/internal/database/fluentd/model"
	"talentpulse/internal/database/fluentd/repository"
	"talentpulse/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 不寫入 log 的標頭
var redactedHeaders = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"x-api-key":     {},
}

type Logger struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewLogger(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Logger {
	return &Logger{
		logger:            logger,
		trace:             trace,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// LoggerHandler 記錄每個請求（儀表板 API 只有 query string，不讀 body）
func (m *Logger) LoggerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if untraced(c) {
			c.Next()
			return
		}

		ctx, span, end := m.trace.WithSpan(m.trace.GetTraceContext(c), string(core.SpanLoggerMiddleware))

		headerMap := make(map[string]string, len(c.Request.Header))
		for k, v := range c.Request.Header {
			lk := strings.ToLower(k)
			if _, redacted := redactedHeaders[lk]; redacted {
				continue
			}
			headerMap[lk] = strings.Join(v, ",")
		}
		paramsMap := make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			paramsMap[p.Key] = p.Value
		}

		meta := core.LoggerRequestMeta{
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			FullPath:   c.FullPath(),
			Query:      c.Request.URL.RawQuery,
			Host:       c.Request.Host,
			UserAgent:  c.Request.UserAgent(),
			ContentLen: c.Request.ContentLength,
			Proto:      c.Request.Proto,
			ClientIP:   c.ClientIP(),
			Headers:    headerMap,
			Params:     paramsMap,
		}
		m.trace.ApplyTraceAttributes(span, meta)

		id := requestID(c)
		spanContext := span.SpanContext()
		logFields := []zap.Field{
			zap.String("requestId", id),
			zap.String("method", meta.Method),
			zap.String("path", meta.Path),
			zap.Any("headers", headerMap),
		}
		if meta.Query != "" {
			logFields = append(logFields, zap.String("query", meta.Query))
		}
		if len(paramsMap) > 0 {
			logFields = append(logFields, zap.Any("params", paramsMap))
		}
		if spanContext.IsValid() {
			logFields = append(logFields,
				zap.String("spanId", spanContext.SpanID().String()),
				zap.String("traceId", spanContext.TraceID().String()),
			)
		}
		m.logger.Info("[Request] logging middleware message", logFields...)

		requestLog := model.RequestLog{
			RequestID: id,
			Method:    meta.Method,
			Path:      meta.Path,
			Query:     meta.Query,
			RequestTS: fluentdTimestamp(requestStart(c)),
			IPHash:    hashIP(meta.ClientIP),
			UserAgent: meta.UserAgent,
		}
		if err := m.fluentdRepository.LogRequest(ctx, requestLog); err != nil {
			m.logger.Warn("failed to ship request log", zap.String("requestId", id), zap.Error(err))
		}
		end(nil)
		c.Next()
	}
}

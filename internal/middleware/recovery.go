package middleware

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"
	"unicode/utf8"

	"talentpulse/internal/core"
	"talentpulse/internal/database/fluentd/model"
	"talentpulse/internal/database/fluentd/repository"
	cErr "talentpulse/internal/pkg/error"
	res "talentpulse/internal/pkg/response"
	"talentpulse/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery 攔截 panic 與 handler 回報的錯誤，輸出統一錯誤格式
type Recovery struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	fluentdRepository *repository.LogRepository
}

func NewRecovery(
	logger *zap.Logger,
	trace *telemetry.Trace,
	fluentdRepository *repository.LogRepository,
) *Recovery {
	return &Recovery{
		logger:            logger,
		trace:             trace,
		fluentdRepository: fluentdRepository,
	}
}

func (middleware *Recovery) ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// ---- panic recover 必須在 c.Next() 之前註冊 ----
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			duration := time.Since(requestStart(c))
			id := requestID(c)
			ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanRecoveryMiddleware))

			meta := core.TracePanicMeta{
				Path:       c.Request.URL.Path,
				Method:     c.Request.Method,
				ClientIP:   c.ClientIP(),
				UserAgent:  c.Request.UserAgent(),
				DurationMs: float64(duration.Milliseconds()),
				Message:    toSafeString(fmt.Sprint(rec)),
				Stack:      toSafeStack(debug.Stack()),
				Status:     http.StatusInternalServerError,
			}
			middleware.trace.ApplyTraceAttributes(span, meta)

			middleware.logger.Error("[PANIC] Recovered",
				zap.String("path", meta.Path),
				zap.String("method", meta.Method),
				zap.String("client_ip", meta.ClientIP),
				zap.String("user_agent", meta.UserAgent),
				zap.Duration("duration", duration),
				zap.String("panic", meta.Message),
				zap.String("stacktrace", meta.Stack),
				zap.String("requestId", id),
			)

			appErr := cErr.InternalServer("unexpected panic")
			end(appErr)
			middleware.logResponse(ctx, id, appErr.ErrorCode(), appErr.HttpCode(), meta.Message, duration)
			if !c.Writer.Written() {
				res.FailByErr(c, id, appErr)
			}
			c.Abort()
		}()

		c.Next()

		// ---- 統一處理非 panic 的 gin errors（若尚未回寫）----
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		duration := time.Since(requestStart(c))
		id := requestID(c)
		ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanRecoveryMiddleware))

		appErr := firstAppError(c.Errors)
		cause := c.Errors.Last().Err
		if appErr == nil {
			appErr = cErr.New(http.StatusInternalServerError, cErr.INTERNAL_ERROR, "unknown-error", toSafeString(c.Errors.String()))
		}
		middleware.trace.ApplyTraceAttributes(span, core.TraceErrorMeta{
			Code:       appErr.ErrorCode(),
			Message:    appErr.Error(),
			Detail:     appErr.ErrorDesc(),
			Status:     appErr.HttpCode(),
			DurationMs: float64(duration.Milliseconds()),
		})

		fields := []zap.Field{
			zap.Int("code", appErr.ErrorCode()),
			zap.Int("status", appErr.HttpCode()),
			zap.String("data", appErr.ErrorDesc()),
			zap.Duration("duration", duration),
			zap.String("requestId", id),
		}
		if cause != nil && cause != error(appErr) {
			fields = append(fields, zap.NamedError("cause", cause))
		}
		if appErr.HttpCode() >= http.StatusInternalServerError {
			middleware.logger.Error(appErr.Error(), fields...)
			end(appErr)
		} else {
			middleware.logger.Warn(appErr.Error(), fields...)
			end(nil)
		}

		middleware.logResponse(ctx, id, appErr.ErrorCode(), appErr.HttpCode(), appErr.ErrorDesc(), duration)
		res.FailByErr(c, id, appErr)
	}
}

// firstAppError 找第一個 *cErr.Error（允許被 %w 包裝）
func firstAppError(errs []*gin.Error) *cErr.Error {
	for _, e := range errs {
		var appErr *cErr.Error
		if errors.As(e.Err, &appErr) {
			return appErr
		}
	}
	return nil
}

func (middleware *Recovery) logResponse(ctx context.Context, id string, code, status int, message string, duration time.Duration) {
	responseLog := model.ResponseLog{
		RequestID:  id,
		Code:       code,
		StatusCode: status,
		Error:      message,
		DurationMs: float64(duration.Milliseconds()),
		ResponseTS: fluentdTimestamp(time.Now()),
	}
	if err := middleware.fluentdRepository.LogResponse(ctx, responseLog); err != nil {
		middleware.logger.Warn("failed to ship response log", zap.String("requestId", id), zap.Error(err))
	}
}

// ---- helpers ----

func toSafeString(s string) string {
	const max = 8000
	return safePreview([]byte(s), max)
}

func toSafeStack(b []byte) string {
	const max = 16000
	return safePreview(b, max)
}

// safePreview UTF-8 直接截斷；非 UTF-8 以 Base64 表示
func safePreview(b []byte, max int) string {
	if utf8.Valid(b) {
		if len(b) > max {
			return string(b[:max]) + "…"
		}
		return string(b)
	}
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}

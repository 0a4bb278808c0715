package middleware

import (
	"net/http"
	"time"

	"talentpulse/internal/core"
	"talentpulse/internal/database/fluentd/model"
	"talentpulse/internal/database/fluentd/repository"
	cErr "talentpulse/internal/pkg/error"
	"talentpulse/internal/pkg/response"
	"talentpulse/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const responsePreviewLimit = 2000

// Response 把 handler 以 response.Success 放入 context 的資料包成統一格式
type Response struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	fluentdRepository *repository.LogRepository
}

func NewResponse(
	logger *zap.Logger,
	trace *telemetry.Trace,
	fluentdRepository *repository.LogRepository,
) *Response {
	return &Response{
		logger:            logger,
		trace:             trace,
		fluentdRepository: fluentdRepository,
	}
}

func (middleware *Response) FormatHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if untraced(c) {
			c.Next()
			return
		}

		c.Next()

		// 已有錯誤交由 Recovery 處理；已寫出回應就不再包裝
		if len(c.Errors) > 0 || c.Writer.Written() {
			return
		}

		statusCode := c.Writer.Status()
		if statusCode >= http.StatusBadRequest {
			response.AbortWithError(c, cErr.MapHttpStatusToError(statusCode, http.StatusText(statusCode)))
			return
		}
		data, exists := c.Get(response.ContextDataKey)
		if !exists {
			// 沒有 handler 處理（例如未註冊路由）
			response.AbortWithError(c, cErr.NotFound("route not found: "+c.Request.URL.Path))
			return
		}

		ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanResponseMiddleware))
		defer end(nil)

		message := c.GetString(response.ContextMessageKey)
		if message == "" {
			message = "Request Success"
		}
		id := requestID(c)
		body, err := json.Marshal(response.Response{
			RequestID:   id,
			Code:        cErr.SUCCESS,
			Data:        data,
			Message:     "OK",
			Description: message,
		})
		if err != nil {
			response.AbortWithError(c, cErr.InternalServer("marshal response failed"))
			return
		}

		duration := time.Since(requestStart(c))
		middleware.trace.ApplyTraceAttributes(span, core.TraceResponseMeta{
			Path:       c.Request.URL.Path,
			Method:     c.Request.Method,
			Status:     statusCode,
			Message:    message,
			Code:       cErr.SUCCESS,
			DurationMs: float64(duration.Milliseconds()),
			Data:       safePreview(body, responsePreviewLimit),
		})
		middleware.logger.Info("[Response] "+message,
			zap.String("requestId", id),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", statusCode),
			zap.Int("bytes", len(body)),
			zap.Duration("duration", duration),
		)

		responseLog := model.ResponseLog{
			RequestID:  id,
			Code:       cErr.SUCCESS,
			StatusCode: statusCode,
			DurationMs: float64(duration.Milliseconds()),
			ResponseTS: fluentdTimestamp(time.Now()),
		}
		if err := middleware.fluentdRepository.LogResponse(ctx, responseLog); err != nil {
			middleware.logger.Warn("failed to ship response log", zap.String("requestId", id), zap.Error(err))
		}

		c.Data(statusCode, "application/json; charset=utf-8", body)
	}
}

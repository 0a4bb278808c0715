package middleware

import (
	"net/http"
	"time"

	"talentpulse/config"
	"talentpulse/internal/core"
	"talentpulse/internal/telemetry"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Cors struct {
	trace *telemetry.Trace
	cfg   cors.Config
}

func NewCors(trace *telemetry.Trace, conf *config.Configuration) *Cors {
	origins := conf.App.CorsAllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &Cors{
		trace: trace,
		cfg: cors.Config{
			AllowOrigins:  origins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:  []string{"Content-Type", core.HeaderRequestID, "traceparent", "tracestate"},
			ExposeHeaders: []string{core.HeaderRequestID, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
			MaxAge:        12 * time.Hour,
		},
	}
}

type corsMeta struct {
	AllowOrigins []string `trace:"http.cors.allow_origins"`
	AllowMethods []string `trace:"http.cors.allow_methods"`
	AllowHeaders []string `trace:"http.cors.allow_headers"`
}

// CorsHandler 所有路徑都套用 CORS（避免 preflight 失敗），只有 API 路徑記錄 span
func (m *Cors) CorsHandler() gin.HandlerFunc {
	corsHandler := cors.New(m.cfg)
	meta := corsMeta{
		AllowOrigins: m.cfg.AllowOrigins,
		AllowMethods: m.cfg.AllowMethods,
		AllowHeaders: m.cfg.AllowHeaders,
	}

	return func(c *gin.Context) {
		if untraced(c) {
			corsHandler(c)
			return
		}
		_, span, end := m.trace.WithSpan(m.trace.GetTraceContext(c), string(core.SpanCorsMiddleware))
		m.trace.ApplyTraceAttributes(span, meta)
		end(nil)

		corsHandler(c)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"talentpulse/config"
	"talentpulse/internal/core"
	"talentpulse/internal/database/client"
	fluentdRepo "talentpulse/internal/database/fluentd/repository"
	redisRepo "talentpulse/internal/database/redis/repository"
	cErr "talentpulse/internal/pkg/error"
	"talentpulse/internal/pkg/response"
	"talentpulse/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func newTestEngine(t *testing.T, limit int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conf := &config.Configuration{}
	conf.App.Name = "talentpulse"
	conf.Redis.RateLimit = limit
	logger := zap.NewNop()
	trace := telemetry.NewNoopTrace()
	metric := &telemetry.Metric{}
	logRepository := fluentdRepo.NewLogRepository(conf, client.NoopClient{})
	rateLimit := NewRateLimit(logger, trace, metric, conf, redisRepo.NewRateLimiterRepository(trace, &client.RedisClient{}))

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(NewTraceEntry(trace, metric, conf).Handler())
	engine.Use(NewLogger(logger, trace, conf, logRepository).LoggerHandler())
	engine.Use(NewCors(trace, conf).CorsHandler())
	engine.Use(NewRecovery(logger, trace, logRepository).ErrorHandler())
	engine.Use(NewResponse(logger, trace, logRepository).FormatHandler())
	engine.NoRoute(func(c *gin.Context) {})
	engine.NoMethod(func(c *gin.Context) { c.Status(http.StatusMethodNotAllowed) })

	engine.GET("/ok", rateLimit.Guard(), func(c *gin.Context) {
		response.Success(c, gin.H{"hello": "world"}, "greeting")
	})
	engine.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	engine.GET("/health-check", func(c *gin.Context) {
		c.String(http.StatusOK, "raw")
	})
	return engine
}

func do(engine *gin.Engine, method, target string, header http.Header) (*httptest.ResponseRecorder, response.Response) {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	engine.ServeHTTP(recorder, req)
	var body response.Response
	_ = json.Unmarshal(recorder.Body.Bytes(), &body)
	return recorder, body
}

func TestMiddleware_SuccessEnvelope(t *testing.T) {
	engine := newTestEngine(t, 10)

	recorder, body := do(engine, http.MethodGet, "/ok", http.Header{core.HeaderRequestID: {"req-123"}})
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
	if body.RequestID != "req-123" || recorder.Header().Get(core.HeaderRequestID) != "req-123" {
		t.Errorf("request id not propagated: body %q header %q", body.RequestID, recorder.Header().Get(core.HeaderRequestID))
	}
	if body.Code != cErr.SUCCESS || body.Message != "OK" || body.Description != "greeting" {
		t.Errorf("envelope = %+v", body)
	}
	data, ok := body.Data.(map[string]any)
	if !ok || data["hello"] != "world" {
		t.Errorf("data = %#v", body.Data)
	}
	// Redis 未啟用時不限流
	if recorder.Header().Get("X-RateLimit-Limit") != "" {
		t.Error("rate limit headers set while redis is disabled")
	}
}

func TestMiddleware_GeneratesRequestID(t *testing.T) {
	engine := newTestEngine(t, 0)

	recorder, body := do(engine, http.MethodGet, "/ok", nil)
	if body.RequestID == "" || recorder.Header().Get(core.HeaderRequestID) != body.RequestID {
		t.Errorf("generated request id mismatch: body %q header %q", body.RequestID, recorder.Header().Get(core.HeaderRequestID))
	}
}

func TestMiddleware_Errors(t *testing.T) {
	engine := newTestEngine(t, 0)

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantCode   int
	}{
		{name: "unknown route", method: http.MethodGet, target: "/missing", wantStatus: http.StatusNotFound, wantCode: cErr.NOT_FOUND},
		{name: "wrong method", method: http.MethodDelete, target: "/ok", wantStatus: http.StatusMethodNotAllowed, wantCode: cErr.METHOD_NOT_ALLOWED},
		{name: "panic", method: http.MethodGet, target: "/panic", wantStatus: http.StatusInternalServerError, wantCode: cErr.INTERNAL_ERROR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, body := do(engine, tt.method, tt.target, nil)
			if recorder.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", recorder.Code, tt.wantStatus, recorder.Body.String())
			}
			if body.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", body.Code, tt.wantCode)
			}
			if body.RequestID == "" {
				t.Error("request id missing")
			}
		})
	}
}

func TestMiddleware_UntracedPathsAreNotWrapped(t *testing.T) {
	engine := newTestEngine(t, 0)

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health-check", nil))
	if recorder.Code != http.StatusOK || recorder.Body.String() != "raw" {
		t.Errorf("got %d %q", recorder.Code, recorder.Body.String())
	}
}

func TestHashIP(t *testing.T) {
	a, b := hashIP("10.0.0.1"), hashIP("10.0.0.2")
	if a == b || len(a) != 16 {
		t.Errorf("hashIP = %q / %q", a, b)
	}
	if a != hashIP("10.0.0.1") {
		t.Error("hashIP not stable")
	}
}

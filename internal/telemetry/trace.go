package telemetry

import (
	"context"
	"runtime"
	"strings"
	"time"

	"talentpulse/config"
	"talentpulse/internal/core"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

type Trace struct {
	tracer      trace.Tracer
	serviceName string
}

// NewTrace 建立 OTLP/HTTP tracer；停用時回傳 noop tracer
func NewTrace(conf *config.Configuration, logger *zap.Logger) (*Trace, func(), error) {
	if conf == nil || !conf.Telemetry.Trace.Enabled {
		return NewNoopTrace(), func() {}, nil
	}
	exporter, err := otlptracehttp.New(context.Background(),
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithEndpointURL(conf.Telemetry.Trace.EndpointUrl),
		otlptracehttp.WithRetry(otlptracehttp.RetryConfig{
			Enabled:         true,
			InitialInterval: 5 * time.Second,
			MaxInterval:     10 * time.Second,
			MaxElapsedTime:  60 * time.Second,
		}),
		otlptracehttp.WithTimeout(30*time.Second),
	)
	if err != nil {
		logger.Error("failed to create otlp exporter", zap.Error(err))
		return nil, nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(samplerFor(conf.Telemetry.Trace.SampleRatio)),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(conf.App.Name),
			semconv.ServiceVersion(conf.App.Version),
			semconv.DeploymentEnvironmentName(conf.App.Env),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("flushing trace exporter")
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error("failed to shutdown tracer provider", zap.Error(err))
		}
	}
	return &Trace{tracer: tp.Tracer(conf.App.Name), serviceName: conf.App.Name}, cleanup, nil
}

// NewNoopTrace 測試與 CLI 使用
func NewNoopTrace() *Trace {
	return &Trace{tracer: noop.NewTracerProvider().Tracer("noop")}
}

func samplerFor(ratio float64) sdktrace.Sampler {
	if ratio > 0 && ratio < 1 {
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
	return sdktrace.AlwaysSample()
}

func (t *Trace) StartSpanForLayer(
	ctx context.Context,
	spanName core.TraceSpanName,
	opts ...trace.SpanStartOption,
) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, string(spanName), opts...)
}

// WithSpan 同時支援 *gin.Context（handler）與 context.Context（service / repository）
// 未指定名稱時 handler 用 handler 名稱，其他用呼叫者方法名
func (t *Trace) WithSpan(parent any, name ...string) (context.Context, trace.Span, func(error)) {
	spanName := ""
	if len(name) > 0 {
		spanName = strings.TrimSpace(name[0])
	}

	var ctx context.Context
	var span trace.Span
	switch p := parent.(type) {
	case *gin.Context:
		if spanName == "" {
			spanName = spanNameFromGin(p)
		}
		ctx, span = t.StartSpanForLayer(t.GetTraceContext(p), core.TraceSpanName(spanName))
		p.Set(core.ContextTraceKey, ctx)
	case context.Context:
		if spanName == "" {
			spanName = prettifyFuncName(callerFuncName(2))
		}
		ctx, span = t.StartSpanForLayer(p, core.TraceSpanName(orUnknown(spanName)))
	default:
		ctx, span = t.StartSpanForLayer(context.Background(), core.TraceSpanName(orUnknown(spanName)))
	}
	return ctx, span, func(err error) { t.EndSpan(span, err) }
}

// 統一結束 span（含錯誤標註）
func (t *Trace) EndSpan(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// For 下游所有 middleware/service 使用，統一取得最新 ctx
func (t *Trace) GetTraceContext(c *gin.Context) context.Context {
	if ctx, ok := c.Get(core.ContextTraceKey); ok {
		if traceCtx, ok := ctx.(context.Context); ok {
			return traceCtx
		}
	}
	return c.Request.Context()
}

// ApplyTraceAttributes 依 `trace:"..."` tag 將 struct 欄位寫入 span
func (t *Trace) ApplyTraceAttributes(span trace.Span, obj any) {
	if span == nil || obj == nil || !span.IsRecording() {
		return
	}
	span.SetAttributes(TraceAttributes(obj)...)
}

// ==== 共用：名稱處理 ====

func orUnknown(name string) string {
	if name == "" {
		return "unknown"
	}
	return name
}

func prettifyFuncName(full string) string {
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	full = strings.TrimSuffix(full, "-fm")
	if i := strings.LastIndex(full, ".func"); i >= 0 {
		full = full[:i]
	}
	if i := strings.Index(full, "."); i >= 0 {
		full = full[i+1:]
	}
	full = strings.NewReplacer("(*", "", "(", "", ")", "").Replace(full)
	if i := strings.Index(full, "["); i >= 0 {
		if j := strings.Index(full, "]"); j > i {
			full = full[:i] + full[j+1:]
		}
	}
	return full
}

func spanNameFromGin(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return c.Request.Method + " " + route
	}
	if hn := c.HandlerName(); hn != "" {
		return prettifyFuncName(hn)
	}
	return c.Request.Method + " " + c.Request.URL.Path
}

// callerFuncName skip=0 為本函式
func callerFuncName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fn.Name()
	}
	return ""
}

package core

const ContextTraceKey = "telemetry_trace_ctx"

// ContextRequestStartKey 請求進入時間，供各 middleware 計算耗時
const ContextRequestStartKey = "requestDuration"

// ContextRequestIDKey 由 TraceEntry 產生，回應與 log 共用
const (
	ContextRequestIDKey = "requestID"
	HeaderRequestID     = "X-Request-ID"
)

// ==== 型別安全 span name ====
type TraceSpanName string

const (
	SpanHttpRequest         TraceSpanName = "http_request"
	SpanLoggerMiddleware    TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware  TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware      TraceSpanName = "cors_middleware"
	SpanResponseMiddleware  TraceSpanName = "response_middleware"
	SpanRateLimitMiddleware TraceSpanName = "ratelimit_middleware"
	SpanDashboardRefresh    TraceSpanName = "dashboard_refresh"
	SpanPipelineRun         TraceSpanName = "pipeline_run"
	SpanPredictionLookup    TraceSpanName = "prediction_lookup"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal     MetricName = "requests_total"
	MetricHttpRequestDuration   MetricName = "request_duration_seconds"
	MetricRateLimitTotal        MetricName = "rate_limited_total"
	MetricDatasetRefreshTotal   MetricName = "dataset_refresh_total"
	MetricDatasetEmployees      MetricName = "dataset_employees"
	MetricDatasetFieldErrors    MetricName = "dataset_field_errors"
	MetricPipelineDuration      MetricName = "pipeline_duration_seconds"
	MetricPredictionFailedTotal MetricName = "prediction_failed_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelTrigger  MetricLabelName = "trigger"
	MetricLabelSource   MetricLabelName = "source"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

// Redis 限流 Consume / Get 使用
type TraceRateLimitMeta struct {
	ClientKey string `trace:"rl.client_key"`
	Limit     int    `trace:"rl.limit_count"`
	WindowSec int64  `trace:"rl.window_sec"`
	Remaining int    `trace:"rl.remaining,omitempty"`
	TTL       int64  `trace:"rl.ttl_sec,omitempty"`
	Op        string `trace:"rl.op"` // "consume" / "get"
}

type TraceRateLimitMiddlewareMeta struct {
	ClientKey   string `trace:"ratelimit.client_key"`
	ConfigLimit int    `trace:"ratelimit.config.limit"`
	Remaining   int    `trace:"ratelimit.remaining"`
	TTLSeconds  int64  `trace:"ratelimit.ttl_sec"`
	Blocked     bool   `trace:"ratelimit.blocked"`
	Degraded    bool   `trace:"ratelimit.degraded"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

type TraceHttpServerMeta struct {
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}

// 每次重新計算儀表板資料
type TraceRefreshMeta struct {
	Trigger         string  `trace:"refresh.trigger"`
	BundleID        string  `trace:"bundle.id,omitempty"`
	Source          string  `trace:"bundle.source,omitempty"`
	SourcePath      string  `trace:"dataset.path,omitempty"`
	Employees       int     `trace:"bundle.employees"`
	Departments     int     `trace:"bundle.departments"`
	JobRoles        int     `trace:"bundle.job_roles"`
	FieldErrors     int     `trace:"dataset.field_errors"`
	LoadError       string  `trace:"dataset.load_error,omitempty"`
	PredictionError string  `trace:"prediction.error,omitempty"`
	DurationMs      float64 `trace:"refresh.latency_ms"`
}

type TracePredictionMeta struct {
	Source  string `trace:"prediction.source"`
	Records int    `trace:"prediction.records"`
	Matched int    `trace:"prediction.matched"`
}

type TraceDashboardQueryMeta struct {
	Department    string  `trace:"query.department,omitempty"`
	JobRole       string  `trace:"query.job_role,omitempty"`
	AgeRange      string  `trace:"query.age_range,omitempty"`
	Search        string  `trace:"query.search,omitempty"`
	Page          int     `trace:"query.page,omitempty"`
	Size          int     `trace:"query.size,omitempty"`
	RiskThreshold float64 `trace:"query.risk_threshold,omitempty"`
	BundleID      string  `trace:"bundle.id"`
	ResultCount   int     `trace:"result.count"`
}

type TraceRequestLogMeta struct {
	RequestID   string `trace:"http.request.request_id"`
	Path        string `trace:"http.request.path"`
	Method      string `trace:"http.request.method"`
	ProjectName string `trace:"project.name"`
	IPHash      string `trace:"http.request.net.peer.ip_hash"`
	Version     string `trace:"log.version"`
	RequestTS   string `trace:"http.request_ts"`
}

type TraceResponseLogMeta struct {
	RequestID   string `trace:"http.request.request_id"`
	ProjectName string `trace:"project.name"`
	Code        int    `trace:"http.response.code"`
	StatusCode  int    `trace:"http.response.status_code"`
	Error       string `trace:"http.response.error_message,omitempty"`
	Version     string `trace:"log.version"`
	ResponseTS  string `trace:"http.request_ts"`
}

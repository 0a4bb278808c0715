package telemetry

import (
	"strconv"
	"strings"
	"time"

	"talentpulse/config"
	"talentpulse/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric 儀表板服務的 Prometheus 指標；停用時所有欄位為 nil，方法皆可安全呼叫
type Metric struct {
	HttpRequestsTotal     *prometheus.CounterVec
	HttpRequestDuration   *prometheus.HistogramVec
	RateLimitedTotal      *prometheus.CounterVec
	DatasetRefreshTotal   *prometheus.CounterVec
	DatasetEmployees      *prometheus.GaugeVec
	DatasetFieldErrors    prometheus.Gauge
	PipelineDuration      prometheus.Histogram
	PredictionFailedTotal *prometheus.CounterVec
}

// NewMetric 建立所有指標並註冊到預設 registry
func NewMetric(config *config.Configuration) *Metric {
	return newMetric(config, prometheus.DefaultRegisterer)
}

func newMetric(config *config.Configuration, registerer prometheus.Registerer) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	factory := promauto.With(registerer)
	namespace := metricNamespace(config)

	return &Metric{
		HttpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      string(core.MetricHttpRequestsTotal),
				Help:      "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      string(core.MetricHttpRequestDuration),
				Help:      "API request duration (seconds)",
				Buckets:   buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		RateLimitedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      string(core.MetricRateLimitTotal),
				Help:      "Requests rejected by the per-client rate limit",
			},
			labelNames(core.MetricLabelEndpoint),
		),
		DatasetRefreshTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      string(core.MetricDatasetRefreshTotal),
				Help:      "Dashboard refresh passes by trigger and outcome",
			},
			labelNames(core.MetricLabelTrigger, core.MetricLabelStatus),
		),
		DatasetEmployees: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      string(core.MetricDatasetEmployees),
				Help:      "Employees in the current dashboard bundle",
			},
			labelNames(core.MetricLabelSource),
		),
		DatasetFieldErrors: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      string(core.MetricDatasetFieldErrors),
				Help:      "Fields that failed to coerce in the last load",
			},
		),
		PipelineDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      string(core.MetricPipelineDuration),
				Help:      "Load, normalize and aggregate duration (seconds)",
				Buckets:   buckets,
			},
		),
		PredictionFailedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      string(core.MetricPredictionFailedTotal),
				Help:      "Refresh passes whose prediction source failed",
			},
			labelNames(core.MetricLabelSource),
		),
	}
}

// ObserveRequest 記錄一次 API 請求
func (m *Metric) ObserveRequest(endpoint string, status int, duration time.Duration) {
	if m.HttpRequestsTotal == nil {
		return
	}
	m.HttpRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	m.HttpRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *Metric) ObserveRateLimited(endpoint string) {
	if m.RateLimitedTotal == nil {
		return
	}
	m.RateLimitedTotal.WithLabelValues(endpoint).Inc()
}

// ObserveRefresh 記錄一次重算；err 非 nil 時只累計失敗次數
func (m *Metric) ObserveRefresh(trigger core.RefreshTrigger, source string, employees, fieldErrors int, duration time.Duration, err error) {
	if m.DatasetRefreshTotal == nil {
		return
	}
	if err != nil {
		m.DatasetRefreshTotal.WithLabelValues(string(trigger), "failed").Inc()
		return
	}
	m.DatasetRefreshTotal.WithLabelValues(string(trigger), source).Inc()
	m.DatasetEmployees.Reset()
	m.DatasetEmployees.WithLabelValues(source).Set(float64(employees))
	m.DatasetFieldErrors.Set(float64(fieldErrors))
	m.PipelineDuration.Observe(duration.Seconds())
}

func (m *Metric) ObservePredictionFailed(source string) {
	if m.PredictionFailedTotal == nil {
		return
	}
	m.PredictionFailedTotal.WithLabelValues(source).Inc()
}

// metricNamespace 指標名稱只接受 [a-zA-Z0-9_]
func metricNamespace(config *config.Configuration) string {
	namespace := config.Telemetry.Metric.Namespace
	if namespace == "" {
		namespace = config.App.Name
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, namespace)
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}

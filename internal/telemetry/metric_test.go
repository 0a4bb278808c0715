package telemetry

import (
	"errors"
	"testing"
	"time"

	"talentpulse/config"
	"talentpulse/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func metricConfig() *config.Configuration {
	conf := &config.Configuration{}
	conf.App.Name = "talent-pulse"
	conf.Telemetry.Metric.Enabled = true
	return conf
}

func TestMetric_Disabled(t *testing.T) {
	m := newMetric(&config.Configuration{}, prometheus.NewRegistry())

	// 停用時方法皆為 no-op
	m.ObserveRequest("/api", 200, time.Second)
	m.ObserveRefresh(core.RefreshTriggerAPI, "dataset", 1, 0, time.Second, nil)
	m.ObserveRateLimited("/api")
	m.ObservePredictionFailed("mongo")
}

func TestMetric_ObserveRefresh(t *testing.T) {
	m := newMetric(metricConfig(), prometheus.NewRegistry())

	m.ObserveRefresh(core.RefreshTriggerCron, "dataset", 1470, 2, 300*time.Millisecond, nil)
	m.ObserveRefresh(core.RefreshTriggerCron, "fallback", 10, 0, 10*time.Millisecond, nil)
	m.ObserveRefresh(core.RefreshTriggerAPI, "", 0, 0, 0, errors.New("boom"))

	if got := testutil.ToFloat64(m.DatasetRefreshTotal.WithLabelValues("cron", "dataset")); got != 1 {
		t.Errorf("refresh dataset = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.DatasetRefreshTotal.WithLabelValues("api", "failed")); got != 1 {
		t.Errorf("refresh failed = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.DatasetEmployees.WithLabelValues("fallback")); got != 10 {
		t.Errorf("employees = %v, want 10", got)
	}
	if got := testutil.CollectAndCount(m.DatasetEmployees); got != 1 {
		t.Errorf("employees gauge series = %d, want 1", got)
	}
	if got := testutil.ToFloat64(m.DatasetFieldErrors); got != 0 {
		t.Errorf("field errors = %v, want 0", got)
	}
}

func TestMetricNamespace(t *testing.T) {
	conf := metricConfig()
	if got := metricNamespace(conf); got != "talent_pulse" {
		t.Errorf("namespace = %q", got)
	}
	conf.Telemetry.Metric.Namespace = "hr.dashboard"
	if got := metricNamespace(conf); got != "hr_dashboard" {
		t.Errorf("namespace = %q", got)
	}
}

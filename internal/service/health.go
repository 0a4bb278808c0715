package service

import (
	"context"
	"sync/atomic"
	"time"

	"talentpulse/internal/analytics"
)

// RefreshStatus 最近一次成功重算的摘要，readiness 回傳
type RefreshStatus struct {
	BundleID    string    `json:"bundleId"`
	Source      string    `json:"source"`
	GeneratedAt time.Time `json:"generatedAt"`
	Employees   int       `json:"employees"`
	FieldErrors int       `json:"fieldErrors"`
	Fallback    bool      `json:"fallback"`
}

// HealthService liveness / readiness 狀態；readiness 需要已開放且至少完成一次重算
type HealthService struct {
	live        atomic.Bool
	ready       atomic.Bool
	lastRefresh atomic.Pointer[RefreshStatus]
}

func NewHealthService() *HealthService {
	s := &HealthService{}
	s.live.Store(true)
	return s
}

func (s *HealthService) SetReady(v bool) {
	s.ready.Store(v)
}

// MarkRefreshed 註冊為 DashboardService 的 refresh listener
func (s *HealthService) MarkRefreshed(ctx context.Context, bundle *analytics.Bundle) {
	s.lastRefresh.Store(&RefreshStatus{
		BundleID:    bundle.ID,
		Source:      string(bundle.Source),
		GeneratedAt: bundle.GeneratedAt,
		Employees:   len(bundle.Employees),
		FieldErrors: bundle.FieldErrors,
		Fallback:    bundle.Fallback(),
	})
}

func (s *HealthService) IsLive() bool {
	return s.live.Load()
}

func (s *HealthService) IsReady() bool {
	return s.ready.Load() && s.lastRefresh.Load() != nil
}

// LastRefresh 尚未重算時為 nil
func (s *HealthService) LastRefresh() *RefreshStatus {
	return s.lastRefresh.Load()
}

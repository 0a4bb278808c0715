package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"talentpulse/config"
	"talentpulse/internal/analytics"
	"talentpulse/internal/core"
	"talentpulse/internal/database/fluentd/model"
	fluentdRepo "talentpulse/internal/database/fluentd/repository"
	"talentpulse/internal/dto"
	cErr "talentpulse/internal/pkg/error"
	"talentpulse/internal/prediction"
	"talentpulse/internal/telemetry"

	"go.uber.org/zap"
)

// RefreshListener 每次重算成功後同步呼叫
type RefreshListener func(ctx context.Context, bundle *analytics.Bundle)

// DashboardService 保存最新的 Bundle；讀取端取得不可變快照，重算彼此序列化
type DashboardService struct {
	logger           *zap.Logger
	trace            *telemetry.Trace
	metric           *telemetry.Metric
	pipeline         *analytics.Pipeline
	logRepository    *fluentdRepo.LogRepository
	predictionSource string
	riskThreshold    float64

	current   atomic.Pointer[analytics.Bundle]
	refreshMu sync.Mutex

	listenersMu sync.RWMutex
	listeners   []RefreshListener
}

func NewDashboardService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	conf *config.Configuration,
	pipeline *analytics.Pipeline,
	source prediction.Source,
	logRepository *fluentdRepo.LogRepository,
) *DashboardService {
	riskThreshold := conf.Dataset.RiskThreshold
	if riskThreshold <= 0 {
		riskThreshold = analytics.AtRiskThreshold
	}
	return &DashboardService{
		logger:           logger,
		trace:            trace,
		metric:           metric,
		pipeline:         pipeline,
		logRepository:    logRepository,
		predictionSource: string(source.Name()),
		riskThreshold:    riskThreshold,
	}
}

// OnRefresh 註冊重算完成的通知
func (s *DashboardService) OnRefresh(listener RefreshListener) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// Refresh 執行一次 load → normalize → aggregate 並替換目前的 Bundle
func (s *DashboardService) Refresh(ctx context.Context, trigger core.RefreshTrigger) (_ *analytics.Bundle, returnedError error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanDashboardRefresh))
	defer func() { end(returnedError) }()

	start := time.Now()
	bundle, err := s.runPipeline(ctx)
	if err == nil && ctx.Err() != nil {
		// 取消中的重算結果不可信（loader 會退回 fallback）
		err = ctx.Err()
	}
	duration := time.Since(start)

	meta := core.TraceRefreshMeta{
		Trigger:    string(trigger),
		DurationMs: float64(duration.Microseconds()) / 1000,
	}
	if err != nil {
		s.trace.ApplyTraceAttributes(span, meta)
		s.metric.ObserveRefresh(trigger, "", 0, 0, duration, err)
		s.logger.Error("dashboard refresh failed",
			zap.String("trigger", string(trigger)),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		s.shipRefreshLog(ctx, model.RefreshLog{Trigger: string(trigger), Error: err.Error(), DurationMs: meta.DurationMs})
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, cErr.ServiceUnavailable("refresh cancelled: " + err.Error())
		}
		return nil, cErr.RefreshFailed(err.Error())
	}

	s.current.Store(bundle)

	meta.BundleID = bundle.ID
	meta.Source = string(bundle.Source)
	meta.SourcePath = bundle.SourcePath
	meta.Employees = len(bundle.Employees)
	meta.Departments = len(bundle.Departments)
	meta.JobRoles = len(bundle.JobRoles)
	meta.FieldErrors = bundle.FieldErrors
	meta.LoadError = bundle.LoadError
	meta.PredictionError = bundle.PredictionError
	s.trace.ApplyTraceAttributes(span, meta)

	s.metric.ObserveRefresh(trigger, string(bundle.Source), len(bundle.Employees), bundle.FieldErrors, duration, nil)
	if bundle.PredictionError != "" {
		s.metric.ObservePredictionFailed(s.predictionSource)
	}
	s.logger.Info("dashboard refreshed",
		zap.String("trigger", string(trigger)),
		zap.String("bundleId", bundle.ID),
		zap.String("source", string(bundle.Source)),
		zap.String("path", bundle.SourcePath),
		zap.Int("employees", len(bundle.Employees)),
		zap.Int("fieldErrors", bundle.FieldErrors),
		zap.Duration("duration", duration),
	)
	s.shipRefreshLog(ctx, model.RefreshLog{
		BundleID:        bundle.ID,
		Trigger:         string(trigger),
		Source:          string(bundle.Source),
		SourcePath:      bundle.SourcePath,
		Employees:       len(bundle.Employees),
		FieldErrors:     bundle.FieldErrors,
		LoadError:       bundle.LoadError,
		PredictionError: bundle.PredictionError,
		DurationMs:      meta.DurationMs,
		GeneratedAt:     bundle.GeneratedAt.UTC().Format(time.RFC3339),
	})

	s.listenersMu.RLock()
	listeners := append([]RefreshListener(nil), s.listeners...)
	s.listenersMu.RUnlock()
	for _, listener := range listeners {
		listener(ctx, bundle)
	}
	return bundle, nil
}

// runPipeline 把重算中的 panic 轉成錯誤，保留上一份 Bundle
func (s *DashboardService) runPipeline(ctx context.Context) (bundle *analytics.Bundle, returnedError error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic during dashboard refresh", zap.Any("panic", r), zap.Stack("stack"))
			bundle, returnedError = nil, fmt.Errorf("pipeline panic: %v", r)
		}
	}()
	return s.pipeline.Run(ctx)
}

func (s *DashboardService) shipRefreshLog(ctx context.Context, refreshLog model.RefreshLog) {
	if err := s.logRepository.LogRefresh(ctx, refreshLog); err != nil {
		s.logger.Warn("failed to ship refresh log", zap.Error(err))
	}
}

// Snapshot 目前的 Bundle；第一次重算完成前回傳 DatasetUnavailable
func (s *DashboardService) Snapshot(ctx context.Context) (*analytics.Bundle, error) {
	bundle := s.current.Load()
	if bundle == nil {
		return nil, cErr.DatasetUnavailable("dashboard data has not been computed yet")
	}
	return bundle, nil
}

// Employees 篩選並分頁
func (s *DashboardService) Employees(ctx context.Context, query *dto.EmployeeQueryDto) (_ *dto.EmployeePageDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	bundle, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	matched, err := analytics.Filter(bundle.Employees, query.Filter())
	if err != nil {
		return nil, cErr.InternalServer(err.Error())
	}

	page, size := query.PageAndSize()
	// 以除法比較，避免 (page-1)*size 在極大 page 時溢位
	from := len(matched)
	if page-1 < len(matched)/size+1 {
		from = min((page-1)*size, len(matched))
	}
	to := from + min(size, len(matched)-from)

	s.trace.ApplyTraceAttributes(span, core.TraceDashboardQueryMeta{
		Department:  query.Department,
		JobRole:     query.JobRole,
		AgeRange:    query.AgeRange,
		Search:      query.Search,
		Page:        page,
		Size:        size,
		BundleID:    bundle.ID,
		ResultCount: len(matched),
	})
	return &dto.EmployeePageDto{
		Page:      page,
		Size:      size,
		Total:     len(matched),
		Employees: matched[from:to],
	}, nil
}

// Metrics 以篩選後的員工重新計算 KPI 與分組摘要；無條件時直接沿用 Bundle
func (s *DashboardService) Metrics(ctx context.Context, query *dto.MetricsQueryDto) (_ *dto.DashboardMetricsDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	bundle, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	threshold := query.RiskThreshold
	if threshold <= 0 {
		threshold = s.riskThreshold
	}

	result, err := s.metricsFor(bundle, query.Filter(), threshold)
	if err != nil {
		return nil, cErr.InternalServer(err.Error())
	}
	s.trace.ApplyTraceAttributes(span, core.TraceDashboardQueryMeta{
		Department:    query.Department,
		JobRole:       query.JobRole,
		AgeRange:      query.AgeRange,
		Search:        query.Search,
		RiskThreshold: threshold,
		BundleID:      bundle.ID,
		ResultCount:   result.KeyMetrics.TotalEmployees,
	})
	return result, nil
}

func (s *DashboardService) metricsFor(bundle *analytics.Bundle, filter analytics.EmployeeFilter, threshold float64) (*dto.DashboardMetricsDto, error) {
	if filter == (analytics.EmployeeFilter{}) && threshold == bundle.KeyMetrics.RiskThreshold {
		return &dto.DashboardMetricsDto{
			BundleID:    bundle.ID,
			KeyMetrics:  bundle.KeyMetrics,
			Departments: bundle.Departments,
			JobRoles:    bundle.JobRoles,
		}, nil
	}

	employees, err := analytics.Filter(bundle.Employees, filter)
	if err != nil {
		return nil, err
	}
	keyMetrics, err := analytics.ComputeKeyMetrics(employees, threshold)
	if err != nil {
		return nil, err
	}
	departments, err := analytics.DepartmentSummaries(employees)
	if err != nil {
		return nil, err
	}
	jobRoles, err := analytics.JobRoleSummaries(employees)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardMetricsDto{
		BundleID:    bundle.ID,
		KeyMetrics:  keyMetrics,
		Departments: departments,
		JobRoles:    jobRoles,
	}, nil
}

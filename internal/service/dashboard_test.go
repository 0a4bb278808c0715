package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"talentpulse/config"
	"talentpulse/internal/analytics"
	"talentpulse/internal/core"
	"talentpulse/internal/database/client"
	fluentdRepo "talentpulse/internal/database/fluentd/repository"
	"talentpulse/internal/dataset"
	"talentpulse/internal/dto"
	cErr "talentpulse/internal/pkg/error"
	"talentpulse/internal/prediction"
	"talentpulse/internal/telemetry"

	"go.uber.org/zap"
)

type stubLoader struct {
	mu      sync.Mutex
	records []dataset.Record
	err     error
	panics  bool
	calls   int
}

func (l *stubLoader) Load(ctx context.Context) ([]dataset.Record, dataset.Report, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	if l.panics {
		panic("decimal: cannot create from NaN")
	}
	if l.err != nil {
		return nil, dataset.Report{}, l.err
	}
	return l.records, dataset.Report{Rows: len(l.records)}, nil
}

func employeeRecord(number int, name, department, jobRole string, age int, income float64) dataset.Record {
	return dataset.NewRecord(map[string]any{
		dataset.ColumnEmployeeNumber: number,
		dataset.ColumnName:           name,
		dataset.ColumnDepartment:     department,
		dataset.ColumnJobRole:        jobRole,
		dataset.ColumnAge:            age,
		dataset.ColumnMonthlyIncome:  income,
	})
}

func newTestDashboardService(t *testing.T, loader *stubLoader) *DashboardService {
	t.Helper()
	conf := &config.Configuration{}
	conf.App.Name = "talentpulse"

	pipeline := analytics.NewPipeline(loader, prediction.NoneSource{}, zap.NewNop())
	return NewDashboardService(
		zap.NewNop(),
		telemetry.NewNoopTrace(),
		&telemetry.Metric{},
		conf,
		pipeline,
		prediction.NoneSource{},
		fluentdRepo.NewLogRepository(conf, client.NoopClient{}),
	)
}

func fixtureLoader() *stubLoader {
	return &stubLoader{records: []dataset.Record{
		employeeRecord(1, "Alice Chen", "R&D", "Research Scientist", 29, 5000),
		employeeRecord(2, "Bob Lin", "R&D", "Laboratory Technician", 35, 3200),
		employeeRecord(3, "Carol Wu", "Sales", "Sales Executive", 44, 6100),
		employeeRecord(4, "David Ho", "Sales", "Sales Executive", 52, 7000),
	}}
}

func TestDashboardService_SnapshotBeforeRefresh(t *testing.T) {
	svc := newTestDashboardService(t, fixtureLoader())

	_, err := svc.Snapshot(context.Background())
	if err == nil {
		t.Fatal("expected error before first refresh")
	}
	var appErr *cErr.Error
	if !errors.As(err, &appErr) || appErr.ErrorCode() != cErr.DATASET_UNAVAILABLE {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Employees(context.Background(), &dto.EmployeeQueryDto{})
	if !errors.As(err, &appErr) || appErr.HttpCode() != 503 {
		t.Fatalf("employees before refresh: %v", err)
	}
}

func TestDashboardService_Refresh(t *testing.T) {
	svc := newTestDashboardService(t, fixtureLoader())

	var notified []string
	svc.OnRefresh(func(ctx context.Context, bundle *analytics.Bundle) {
		notified = append(notified, bundle.ID)
	})

	bundle, err := svc.Refresh(context.Background(), core.RefreshTriggerStartup)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if bundle.Source != analytics.SourceDataset {
		t.Errorf("source = %s", bundle.Source)
	}
	if len(bundle.Employees) != 4 {
		t.Errorf("employees = %d, want 4", len(bundle.Employees))
	}
	if len(notified) != 1 || notified[0] != bundle.ID {
		t.Errorf("listener notified with %v", notified)
	}

	snapshot, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snapshot != bundle {
		t.Error("snapshot is not the refreshed bundle")
	}

	again, err := svc.Refresh(context.Background(), core.RefreshTriggerAPI)
	if err != nil {
		t.Fatalf("second refresh: %v", err)
	}
	if again.ID == bundle.ID {
		t.Error("second refresh reused bundle id")
	}
	if snapshot.ID != bundle.ID {
		t.Error("earlier snapshot was mutated")
	}
}

func TestDashboardService_RefreshFallback(t *testing.T) {
	loader := &stubLoader{err: errors.New("open employees.csv: no such file")}
	svc := newTestDashboardService(t, loader)

	bundle, err := svc.Refresh(context.Background(), core.RefreshTriggerCron)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if !bundle.Fallback() {
		t.Errorf("source = %s, want fallback", bundle.Source)
	}
	if bundle.LoadError == "" {
		t.Error("load error not recorded")
	}
	if len(bundle.Employees) == 0 {
		t.Error("fallback employees missing")
	}
}

func TestDashboardService_RefreshCancelled(t *testing.T) {
	svc := newTestDashboardService(t, fixtureLoader())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Refresh(ctx, core.RefreshTriggerWatch); err == nil {
		t.Fatal("expected error for cancelled refresh")
	}
	if _, err := svc.Snapshot(context.Background()); err == nil {
		t.Error("cancelled refresh must not publish a bundle")
	}
}

func TestDashboardService_RefreshPanicKeepsPreviousBundle(t *testing.T) {
	loader := fixtureLoader()
	svc := newTestDashboardService(t, loader)
	first, err := svc.Refresh(context.Background(), core.RefreshTriggerStartup)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	loader.mu.Lock()
	loader.panics = true
	loader.mu.Unlock()

	_, err = svc.Refresh(context.Background(), core.RefreshTriggerWatch)
	var appErr *cErr.Error
	if !errors.As(err, &appErr) || appErr.ErrorCode() != cErr.REFRESH_FAILED {
		t.Fatalf("expected refresh failed, got %v", err)
	}
	current, err := svc.Snapshot(context.Background())
	if err != nil || current.ID != first.ID {
		t.Fatalf("previous bundle should still be served: %v", err)
	}
}

func TestDashboardService_ConcurrentRefresh(t *testing.T) {
	loader := fixtureLoader()
	svc := newTestDashboardService(t, loader)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Refresh(context.Background(), core.RefreshTriggerAPI); err != nil {
				t.Errorf("refresh: %v", err)
			}
			if _, err := svc.Snapshot(context.Background()); err != nil {
				t.Errorf("snapshot: %v", err)
			}
		}()
	}
	wg.Wait()

	if loader.calls != 8 {
		t.Errorf("loader calls = %d, want 8", loader.calls)
	}
}

func TestDashboardService_Employees(t *testing.T) {
	svc := newTestDashboardService(t, fixtureLoader())
	if _, err := svc.Refresh(context.Background(), core.RefreshTriggerStartup); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	tests := []struct {
		name      string
		query     dto.EmployeeQueryDto
		wantTotal int
		wantPage  int
		wantIDs   []int
	}{
		{
			name:      "all employees",
			query:     dto.EmployeeQueryDto{},
			wantTotal: 4,
			wantIDs:   []int{1, 2, 3, 4},
		},
		{
			name:      "department filter",
			query:     dto.EmployeeQueryDto{DashboardFilterDto: dto.DashboardFilterDto{Department: "Sales"}},
			wantTotal: 2,
			wantIDs:   []int{3, 4},
		},
		{
			name:      "age range",
			query:     dto.EmployeeQueryDto{DashboardFilterDto: dto.DashboardFilterDto{AgeRange: "31-40"}},
			wantTotal: 1,
			wantIDs:   []int{2},
		},
		{
			name:      "search is case insensitive",
			query:     dto.EmployeeQueryDto{DashboardFilterDto: dto.DashboardFilterDto{Search: "carol"}},
			wantTotal: 1,
			wantIDs:   []int{3},
		},
		{
			name:      "second page",
			query:     dto.EmployeeQueryDto{Page: 2, Size: 3},
			wantTotal: 4,
			wantIDs:   []int{4},
		},
		{
			name:      "page past the end",
			query:     dto.EmployeeQueryDto{Page: 9, Size: 3},
			wantTotal: 4,
			wantIDs:   []int{},
		},
		{
			name:      "last partial page",
			query:     dto.EmployeeQueryDto{Page: 2, Size: 2},
			wantTotal: 4,
			wantIDs:   []int{3, 4},
		},
		{
			name:      "huge page does not overflow",
			query:     dto.EmployeeQueryDto{Page: 1 << 62, Size: 4},
			wantTotal: 4,
			wantIDs:   []int{},
		},
		{
			name:      "huge page and size",
			query:     dto.EmployeeQueryDto{Page: 1 << 40, Size: 1 << 40},
			wantTotal: 4,
			wantIDs:   []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.Employees(context.Background(), &tt.query)
			if err != nil {
				t.Fatalf("employees: %v", err)
			}
			if page.Total != tt.wantTotal {
				t.Errorf("total = %d, want %d", page.Total, tt.wantTotal)
			}
			if len(page.Employees) != len(tt.wantIDs) {
				t.Fatalf("got %d employees, want %d", len(page.Employees), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if page.Employees[i].ID != id {
					t.Errorf("employees[%d].ID = %d, want %d", i, page.Employees[i].ID, id)
				}
			}
		})
	}
}

func TestDashboardService_Metrics(t *testing.T) {
	svc := newTestDashboardService(t, fixtureLoader())
	bundle, err := svc.Refresh(context.Background(), core.RefreshTriggerStartup)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	unfiltered, err := svc.Metrics(context.Background(), &dto.MetricsQueryDto{})
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if unfiltered.KeyMetrics != bundle.KeyMetrics {
		t.Errorf("unfiltered metrics differ from bundle: %+v vs %+v", unfiltered.KeyMetrics, bundle.KeyMetrics)
	}
	if unfiltered.BundleID != bundle.ID {
		t.Errorf("bundle id = %s", unfiltered.BundleID)
	}

	sales, err := svc.Metrics(context.Background(), &dto.MetricsQueryDto{
		DashboardFilterDto: dto.DashboardFilterDto{Department: "Sales"},
	})
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if sales.KeyMetrics.TotalEmployees != 2 {
		t.Errorf("total employees = %d, want 2", sales.KeyMetrics.TotalEmployees)
	}
	if sales.KeyMetrics.TotalMonthlyCost != 13100 {
		t.Errorf("total monthly cost = %v, want 13100", sales.KeyMetrics.TotalMonthlyCost)
	}
	if len(sales.Departments) != 1 || sales.Departments[0].Name != "Sales" {
		t.Errorf("departments = %+v", sales.Departments)
	}

	strict, err := svc.Metrics(context.Background(), &dto.MetricsQueryDto{RiskThreshold: 0.05})
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if strict.KeyMetrics.RiskThreshold != 0.05 {
		t.Errorf("risk threshold = %v", strict.KeyMetrics.RiskThreshold)
	}
	if strict.KeyMetrics.HighRiskCount != 4 {
		t.Errorf("high risk count = %d, want 4 (default risk 0.1)", strict.KeyMetrics.HighRiskCount)
	}
}

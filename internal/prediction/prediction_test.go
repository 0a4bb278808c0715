package prediction

import (
	"context"
	"errors"
	"math"
	"testing"

	"talentpulse/config"
	"talentpulse/internal/analytics"
	"talentpulse/internal/core"
	"talentpulse/internal/database/mongodb/model"
	"talentpulse/internal/dataset"

	"go.uber.org/zap"
)

func records(performances ...int) []dataset.Record {
	out := make([]dataset.Record, 0, len(performances))
	for i, performance := range performances {
		out = append(out, dataset.NewRecord(map[string]any{
			dataset.ColumnEmployeeNumber:    i + 1,
			dataset.ColumnPerformanceRating: performance,
		}))
	}
	return out
}

func TestNewSource(t *testing.T) {
	tests := []struct {
		source  string
		mongo   bool
		want    core.PredictionSourceName
		wantErr bool
	}{
		{source: "", want: core.PredictionSourceNone},
		{source: "none", want: core.PredictionSourceNone},
		{source: "simulated", want: core.PredictionSourceSimulated},
		{source: "mongo", mongo: true, want: core.PredictionSourceMongo},
		{source: "mongo", wantErr: true},
		{source: "oracle", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			conf := &config.Configuration{}
			conf.Prediction.Source = tt.source
			conf.MongoDB.Enabled = tt.mongo

			source, err := NewSource(conf, nil, zap.NewNop())
			if tt.wantErr {
				if err == nil {
					t.Fatal("NewSource() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSource() error = %v", err)
			}
			if source.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", source.Name(), tt.want)
			}
		})
	}
}

func TestNoneSource(t *testing.T) {
	predictions, err := NoneSource{}.Predict(context.Background(), records(3, 4))
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	employees, err := analytics.Normalize(records(3, 4), predictions)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	for _, employee := range employees {
		if employee.AttritionRisk != 0.1 || employee.RetentionDecision != analytics.Keep {
			t.Errorf("employee %d = (%v, %q), want defaults", employee.ID, employee.AttritionRisk, employee.RetentionDecision)
		}
	}
}

func TestSimulatedSource(t *testing.T) {
	input := records(2, 3, 4, 1, 3, 3, 4, 4)
	source := NewSimulatedSource(42)

	first, err := source.Predict(context.Background(), input)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	second, _ := NewSimulatedSource(42).Predict(context.Background(), input)

	if len(first.RiskScores) != len(input) || len(first.Decisions) != len(input) {
		t.Fatalf("lengths = %d/%d, want %d", len(first.RiskScores), len(first.Decisions), len(input))
	}
	for i := range input {
		if first.RiskScores[i] < 0 || first.RiskScores[i] >= 1 {
			t.Errorf("risk[%d] = %v, want [0,1)", i, first.RiskScores[i])
		}
		if first.RiskScores[i] != second.RiskScores[i] || first.Decisions[i] != second.Decisions[i] {
			t.Errorf("index %d differs between runs with the same seed", i)
		}
	}
	// 績效 < 3 一律 Let Go
	for _, i := range []int{0, 3} {
		if first.Decisions[i] != analytics.LetGo {
			t.Errorf("decision[%d] = %q, want Let Go", i, first.Decisions[i])
		}
	}
}

func TestSimulatedSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewSimulatedSource(1).Predict(ctx, records(3)); !errors.Is(err, context.Canceled) {
		t.Errorf("Predict() error = %v, want context.Canceled", err)
	}
}

type stubFinder struct {
	found map[int]model.AttritionPrediction
	err   error
	asked []int
}

func (s *stubFinder) FindByEmployeeNumbers(ctx context.Context, numbers []int) (map[int]model.AttritionPrediction, error) {
	s.asked = numbers
	return s.found, s.err
}

func TestMongoSource(t *testing.T) {
	risk := 0.72
	zero := 0.0
	finder := &stubFinder{found: map[int]model.AttritionPrediction{
		1: {EmployeeNumber: 1, RiskScore: &risk, RetentionDecision: "Let Go"},
		3: {EmployeeNumber: 3, RiskScore: &zero, RetentionDecision: "unknown"},
		4: {EmployeeNumber: 4, RetentionDecision: "keep"},
	}}
	input := append(records(3, 3, 3, 3), dataset.NewRecord(map[string]any{dataset.ColumnName: "No Number"}))

	predictions, err := NewMongoSource(finder).Predict(context.Background(), input)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if len(finder.asked) != 4 {
		t.Errorf("asked = %v, want 4 employee numbers", finder.asked)
	}

	employees, err := analytics.Normalize(input, predictions)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	want := []struct {
		risk     float64
		decision analytics.RetentionDecision
	}{
		{0.72, analytics.LetGo},
		{0.1, analytics.Keep}, // 查無資料
		{0, analytics.Keep},   // 0 分保留；無法解析的決策用預設
		{0.1, analytics.Keep}, // 缺分數
		{0.1, analytics.Keep}, // 無員工編號
	}
	for i, w := range want {
		if employees[i].AttritionRisk != w.risk || employees[i].RetentionDecision != w.decision {
			t.Errorf("employee[%d] = (%v, %q), want (%v, %q)", i,
				employees[i].AttritionRisk, employees[i].RetentionDecision, w.risk, w.decision)
		}
	}
	if !math.IsNaN(predictions.RiskScores[1]) {
		t.Errorf("missing prediction risk = %v, want NaN", predictions.RiskScores[1])
	}
}

func TestMongoSource_Error(t *testing.T) {
	finder := &stubFinder{err: errors.New("server selection timeout")}
	if _, err := NewMongoSource(finder).Predict(context.Background(), records(3)); err == nil {
		t.Fatal("Predict() error = nil, want error")
	}
}

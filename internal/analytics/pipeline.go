package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talentpulse/internal/dataset"
)

// RecordLoader 讀取原始員工資料
type RecordLoader interface {
	Load(ctx context.Context) ([]dataset.Record, dataset.Report, error)
}

// PredictionSource 提供與 records 依序對齊的風險分數與留任決策
type PredictionSource interface {
	Predict(ctx context.Context, records []dataset.Record) (Predictions, error)
}

type Option func(*Pipeline)

// WithHistory 非當季的季度數值
func WithHistory(history []QuarterlyTrendPoint) Option {
	return func(p *Pipeline) { p.history = history }
}

func WithReference(reference ReferenceTables) Option {
	return func(p *Pipeline) { p.reference = reference }
}

// WithRiskThreshold KeyMetrics 使用的高風險門檻
func WithRiskThreshold(threshold float64) Option {
	return func(p *Pipeline) {
		if threshold > 0 {
			p.riskThreshold = threshold
		}
	}
}

// WithLiveFactorTables 以員工資料即時計算年齡帶、因子流失率與流失分布
func WithLiveFactorTables(enabled bool) Option {
	return func(p *Pipeline) { p.liveFactorTables = enabled }
}

// WithFallback 資料檔載入失敗時使用的名單
func WithFallback(fallback func() []Employee) Option {
	return func(p *Pipeline) { p.fallback = fallback }
}

func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// Pipeline 依序執行 load → normalize → aggregate，每次回傳新的 Bundle
type Pipeline struct {
	loader      RecordLoader
	predictions PredictionSource
	logger      *zap.Logger

	history          []QuarterlyTrendPoint
	reference        ReferenceTables
	riskThreshold    float64
	liveFactorTables bool
	fallback         func() []Employee
	now              func() time.Time
}

func NewPipeline(loader RecordLoader, predictions PredictionSource, logger *zap.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		loader:        loader,
		predictions:   predictions,
		logger:        logger,
		reference:     DefaultReferenceTables(),
		riskThreshold: AtRiskThreshold,
		fallback:      SampleEmployees,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	return p
}

// Run executes one pass. A load failure is not an error: the bundle is built
// from the fallback employees and records the failure. Errors returned here
// come from the aggregators and indicate a programming fault.
func (p *Pipeline) Run(ctx context.Context) (*Bundle, error) {
	bundle := &Bundle{
		ID:          uuid.Must(uuid.NewV7()).String(),
		GeneratedAt: p.now(),
		Source:      SourceDataset,
	}
	if named, ok := p.loader.(interface{ Path() string }); ok {
		bundle.SourcePath = named.Path()
	}

	employees, err := p.employees(ctx, bundle)
	if err != nil {
		return nil, err
	}
	if err := p.aggregate(bundle, employees); err != nil {
		return nil, err
	}
	return bundle, nil
}

func (p *Pipeline) employees(ctx context.Context, bundle *Bundle) ([]Employee, error) {
	records, report, err := p.loader.Load(ctx)
	if err != nil {
		var loadErr *dataset.LoadError
		if !errors.As(err, &loadErr) {
			loadErr = &dataset.LoadError{Path: bundle.SourcePath, Err: err}
		}
		p.logger.Warn("dataset load failed, using fallback employees",
			zap.String("path", loadErr.Path),
			zap.Error(loadErr),
		)
		bundle.Source = SourceFallback
		bundle.LoadError = loadErr.Error()
		return p.fallback(), nil
	}
	bundle.Report = report
	bundle.FieldErrors = report.FieldErrorCount()
	if bundle.FieldErrors > 0 {
		p.logger.Warn("dataset fields failed to coerce",
			zap.Int("count", bundle.FieldErrors),
			zap.Error(report.FieldErrors[0]),
		)
	}

	var predictions Predictions
	if p.predictions != nil {
		predictions, err = p.predictions.Predict(ctx, records)
		if err != nil {
			p.logger.Warn("prediction source failed, using default risk and decision", zap.Error(err))
			bundle.PredictionError = err.Error()
			predictions = Predictions{}
		}
	}
	return Normalize(records, predictions)
}

func (p *Pipeline) aggregate(bundle *Bundle, employees []Employee) error {
	departments, err := DepartmentSummaries(employees)
	if err != nil {
		return err
	}
	jobRoles, err := JobRoleSummaries(employees)
	if err != nil {
		return err
	}
	quarterly, err := QuarterlyTrend(employees, p.history, bundle.GeneratedAt)
	if err != nil {
		return err
	}
	treemap, err := Treemap(departments)
	if err != nil {
		return err
	}
	metrics, err := ComputeKeyMetrics(employees, p.riskThreshold)
	if err != nil {
		return err
	}
	reference, err := p.referenceFor(employees)
	if err != nil {
		return err
	}

	bundle.Employees = employees
	bundle.Departments = departments
	bundle.JobRoles = jobRoles
	bundle.QuarterlyTrend = quarterly
	bundle.Treemap = treemap
	bundle.KeyMetrics = metrics
	bundle.Reference = reference
	return nil
}

// referenceFor 開啟即時計算時，以員工資料取代年齡帶與因子表；結果為空則保留參考值
func (p *Pipeline) referenceFor(employees []Employee) (ReferenceTables, error) {
	reference := p.reference
	if !p.liveFactorTables {
		return reference, nil
	}
	bands, err := AttritionByAgeBand(employees)
	if err != nil {
		return reference, err
	}
	factors, err := AttritionByFactors(employees)
	if err != nil {
		return reference, err
	}
	if len(bands) > 0 {
		reference.AttritionByAgeBand = bands
	}
	if len(factors) > 0 {
		reference.AttritionByFactors = factors
	}
	reference.AttritionDistribution = reference.DistributionFor(len(employees))
	return reference, nil
}

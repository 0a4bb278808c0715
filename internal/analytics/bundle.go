package analytics

import (
	"time"

	"talentpulse/internal/dataset"
)

// BundleSource 此次計算使用的員工資料來源
type BundleSource string

const (
	SourceDataset  BundleSource = "dataset"
	SourceFallback BundleSource = "fallback"
)

// Bundle 一次完整計算的結果；產生後不可修改，讀取端各自持有快照
type Bundle struct {
	ID              string         `json:"id"`
	GeneratedAt     time.Time      `json:"generatedAt"`
	Source          BundleSource   `json:"source"`
	SourcePath      string         `json:"sourcePath,omitempty"`
	LoadError       string         `json:"loadError,omitempty"`
	PredictionError string         `json:"predictionError,omitempty"`
	Report          dataset.Report `json:"report"`
	FieldErrors     int            `json:"fieldErrors"`

	Employees      []Employee            `json:"employees"`
	Departments    []DepartmentSummary   `json:"departments"`
	JobRoles       []JobRoleSummary      `json:"jobRoles"`
	QuarterlyTrend []QuarterlyTrendPoint `json:"quarterlyTrend"`
	Treemap        []TreemapNode         `json:"treemap"`
	KeyMetrics     KeyMetrics            `json:"keyMetrics"`
	Reference      ReferenceTables       `json:"reference"`
}

// Fallback 是否因資料檔載入失敗而使用預設名單
func (b *Bundle) Fallback() bool {
	return b.Source == SourceFallback
}

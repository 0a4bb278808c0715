package service

import (
	"math"

	"talentpulse/config"
	"talentpulse/internal/analytics"
	"talentpulse/internal/dataset"
	"talentpulse/internal/prediction"
	"talentpulse/utils/path"

	"go.uber.org/zap"
)

// NewFileLoader 依 DATASET 設定建立 CSV / XLSX loader
func NewFileLoader(conf *config.Configuration) *dataset.FileLoader {
	return dataset.NewFileLoader(ResolveDatasetPath(conf.Dataset.Path), conf.Dataset.Sheet, dataset.HRAttritionSchema())
}

// ResolveDatasetPath 相對路徑先找工作目錄，找不到再以專案根目錄為基準
func ResolveDatasetPath(datasetPath string) string {
	return path.Resolve(path.RootPath(), datasetPath)
}

// NewPipeline 將設定轉成 analytics.Pipeline 選項
func NewPipeline(conf *config.Configuration, loader *dataset.FileLoader, source prediction.Source, logger *zap.Logger) *analytics.Pipeline {
	return analytics.NewPipeline(loader, source, logger,
		analytics.WithHistory(HistoryFromConfig(conf.History)),
		analytics.WithReference(analytics.DefaultReferenceTables().Override(ReferenceFromConfig(conf.Reference))),
		analytics.WithRiskThreshold(conf.Dataset.RiskThreshold),
		analytics.WithLiveFactorTables(conf.Dataset.LiveFactorTables),
	)
}

// HistoryFromConfig 未設定時使用預設的季度數值
func HistoryFromConfig(history config.History) []analytics.QuarterlyTrendPoint {
	if len(history.Quarters) == 0 {
		return analytics.DefaultHistory()
	}
	points := make([]analytics.QuarterlyTrendPoint, 0, len(history.Quarters))
	for _, q := range history.Quarters {
		points = append(points, analytics.QuarterlyTrendPoint{
			Quarter:      q.Quarter,
			Performance:  q.Performance,
			Attrition:    q.Attrition,
			Engagement:   q.Engagement,
			Satisfaction: q.Satisfaction,
			Source:       analytics.QuarterHistory,
		})
	}
	return points
}

// ReferenceFromConfig 只轉換有設定的表格，其餘留空由 Override 沿用預設
func ReferenceFromConfig(reference config.Reference) analytics.ReferenceTables {
	var tables analytics.ReferenceTables
	for _, v := range reference.FeatureImportance {
		tables.FeatureImportance = append(tables.FeatureImportance, analytics.FeatureImportance{Name: v.Name, Importance: v.Value})
	}
	for _, v := range reference.ModelAccuracies {
		tables.ModelAccuracies = append(tables.ModelAccuracies, analytics.ModelAccuracy{
			Model:     v.Model,
			Accuracy:  v.Accuracy,
			Precision: v.Precision,
			Recall:    v.Recall,
			F1:        v.F1,
		})
	}
	for _, v := range reference.ConfusionMatrix {
		tables.ConfusionMatrix = append(tables.ConfusionMatrix, analytics.ConfusionCell{Name: v.Name, Value: int(math.Round(v.Value))})
	}
	for _, v := range reference.ROCCurve {
		tables.ROCCurve = append(tables.ROCCurve, analytics.ROCPoint{FPR: v.FPR, TPR: v.TPR})
	}
	for _, v := range reference.AttritionByFactor {
		tables.AttritionByFactors = append(tables.AttritionByFactors, analytics.FactorRate{Name: v.Name, Rate: v.Value})
	}
	for _, v := range reference.AttritionByAge {
		tables.AttritionByAgeBand = append(tables.AttritionByAgeBand, analytics.AgeBandRate{AgeGroup: v.Name, AttritionRate: v.Value})
	}
	return tables
}

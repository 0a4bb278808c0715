package prediction

import (
	"context"
	"math"

	"talentpulse/internal/analytics"
	"talentpulse/internal/core"
	"talentpulse/internal/database/mongodb/model"
	"talentpulse/internal/dataset"
)

// PredictionFinder 依員工編號查詢預測
type PredictionFinder interface {
	FindByEmployeeNumbers(ctx context.Context, employeeNumbers []int) (map[int]model.AttritionPrediction, error)
}

// MongoSource 讀取外部評分工作寫入 attrition_predictions 的結果
type MongoSource struct {
	finder PredictionFinder
}

func NewMongoSource(finder PredictionFinder) *MongoSource {
	return &MongoSource{finder: finder}
}

func (s *MongoSource) Name() core.PredictionSourceName { return core.PredictionSourceMongo }

// Predict 以 EmployeeNumber 對齊；沒有編號或查無資料的列留 NaN / 空決策，由 Normalize 補預設
func (s *MongoSource) Predict(ctx context.Context, records []dataset.Record) (analytics.Predictions, error) {
	numbers := make([]int, 0, len(records))
	for _, record := range records {
		if number, ok := record.Int(dataset.ColumnEmployeeNumber); ok {
			numbers = append(numbers, number)
		}
	}

	found, err := s.finder.FindByEmployeeNumbers(ctx, numbers)
	if err != nil {
		return analytics.Predictions{}, err
	}

	predictions := analytics.Predictions{
		RiskScores: make([]float64, len(records)),
		Decisions:  make([]analytics.RetentionDecision, len(records)),
	}
	for i, record := range records {
		predictions.RiskScores[i] = math.NaN()
		number, ok := record.Int(dataset.ColumnEmployeeNumber)
		if !ok {
			continue
		}
		prediction, ok := found[number]
		if !ok {
			continue
		}
		if prediction.RiskScore != nil {
			predictions.RiskScores[i] = *prediction.RiskScore
		}
		if decision, ok := analytics.ParseRetentionDecision(prediction.RetentionDecision); ok {
			predictions.Decisions[i] = decision
		}
	}
	return predictions, nil
}

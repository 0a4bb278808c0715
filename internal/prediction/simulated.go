package prediction

import (
	"context"
	"math/rand/v2"

	"talentpulse/internal/analytics"
	"talentpulse/internal/core"
	"talentpulse/internal/dataset"
)

const (
	simulatedLetGoDraw      = 0.75
	simulatedLowPerformance = 3
)

// SimulatedSource 以固定種子產生可重現的示範預測：
// 風險分數為 [0,1) 均勻分布；另一次抽樣 > 0.75 或績效 < 3 時建議 Let Go
type SimulatedSource struct {
	seed uint64
}

func NewSimulatedSource(seed int64) *SimulatedSource {
	return &SimulatedSource{seed: uint64(seed)}
}

func (s *SimulatedSource) Name() core.PredictionSourceName { return core.PredictionSourceSimulated }

// Predict 每次呼叫以相同種子重新開始，同樣輸入得到同樣結果
func (s *SimulatedSource) Predict(ctx context.Context, records []dataset.Record) (analytics.Predictions, error) {
	if err := ctx.Err(); err != nil {
		return analytics.Predictions{}, err
	}
	rng := rand.New(rand.NewPCG(s.seed, s.seed^0x9e3779b97f4a7c15))

	predictions := analytics.Predictions{
		RiskScores: make([]float64, len(records)),
		Decisions:  make([]analytics.RetentionDecision, len(records)),
	}
	for i, record := range records {
		predictions.RiskScores[i] = rng.Float64()

		decision := analytics.Keep
		draw := rng.Float64()
		if performance, ok := record.Int(dataset.ColumnPerformanceRating); ok && performance < simulatedLowPerformance {
			decision = analytics.LetGo
		}
		if draw > simulatedLetGoDraw {
			decision = analytics.LetGo
		}
		predictions.Decisions[i] = decision
	}
	return predictions, nil
}

package prediction

import (
	"context"
	"fmt"

	"talentpulse/config"
	"talentpulse/internal/analytics"
	"talentpulse/internal/core"
	mongoRepo "talentpulse/internal/database/mongodb/repository"
	"talentpulse/internal/dataset"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewSource)

// Source 回傳與 records 依序對齊的預測；缺值由 analytics 補預設
type Source interface {
	analytics.PredictionSource
	Name() core.PredictionSourceName
}

// NewSource 依 PREDICTION.SOURCE 建立來源，空值為 none
func NewSource(conf *config.Configuration, repository *mongoRepo.AttritionPredictionRepository, logger *zap.Logger) (Source, error) {
	name := core.PredictionSourceName(conf.Prediction.Source)
	switch name {
	case "", core.PredictionSourceNone:
		return NoneSource{}, nil
	case core.PredictionSourceSimulated:
		logger.Info("using simulated attrition predictions", zap.Int64("seed", conf.Prediction.Seed))
		return NewSimulatedSource(conf.Prediction.Seed), nil
	case core.PredictionSourceMongo:
		if !conf.MongoDB.Enabled {
			return nil, fmt.Errorf("prediction source %q requires MONGODB.ENABLED", name)
		}
		return NewMongoSource(repository), nil
	default:
		return nil, fmt.Errorf("unknown prediction source %q", name)
	}
}

// NoneSource 不提供任何預測
type NoneSource struct{}

func (NoneSource) Name() core.PredictionSourceName { return core.PredictionSourceNone }

func (NoneSource) Predict(ctx context.Context, records []dataset.Record) (analytics.Predictions, error) {
	return analytics.Predictions{}, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"talentpulse/internal/core"
	client "talentpulse/internal/database/client"
	"talentpulse/internal/database/mongodb/model"
	"talentpulse/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var ErrMongoDisabled = errors.New("mongodb is disabled")

type AttritionPredictionRepository struct {
	trace      *telemetry.Trace
	collection *mongo.Collection
}

func NewAttritionPredictionRepository(trace *telemetry.Trace, logger *zap.Logger, mongoClient *client.MongoClient) *AttritionPredictionRepository {
	repository := &AttritionPredictionRepository{
		trace:      trace,
		collection: mongoClient.Collection(core.MongoCollectionAttritionPredictions),
	}
	if repository.collection != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := repository.ensureIndexes(ctx); err != nil {
			logger.Warn("failed to ensure attrition prediction indexes", zap.Error(err))
		}
	}
	return repository
}

// 建索引：
// 1) employeeNumber 唯一（每位員工只保留最新一筆）
// 2) scoredAt 倒序，供最新評分查詢
func (repository *AttritionPredictionRepository) ensureIndexes(contextValue context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employeeNumber", Value: 1}},
			Options: options.Index().SetName("uniq_employeeNumber").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "scoredAt", Value: -1}},
			Options: options.Index().SetName("idx_scoredAt_desc"),
		},
	}
	_, returnedError := repository.collection.Indexes().CreateMany(contextValue, models)
	return returnedError
}

// FindByEmployeeNumbers 依員工編號批次查詢，回傳 employeeNumber → prediction
func (repository *AttritionPredictionRepository) FindByEmployeeNumbers(
	contextValue context.Context,
	employeeNumbers []int,
) (_ map[int]model.AttritionPrediction, returnedError error) {
	if repository.collection == nil {
		return nil, ErrMongoDisabled
	}
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue, string(core.SpanPredictionLookup))
	defer func() { endSpan(returnedError) }()

	result := make(map[int]model.AttritionPrediction, len(employeeNumbers))
	if len(employeeNumbers) == 0 {
		return result, nil
	}

	cursor, returnedError := repository.collection.Find(contextValue, bson.M{
		"employeeNumber": bson.M{"$in": employeeNumbers},
	})
	if returnedError != nil {
		return nil, returnedError
	}
	defer cursor.Close(contextValue)

	for cursor.Next(contextValue) {
		var prediction model.AttritionPrediction
		if returnedError = cursor.Decode(&prediction); returnedError != nil {
			return nil, returnedError
		}
		result[prediction.EmployeeNumber] = prediction
	}
	if returnedError = cursor.Err(); returnedError != nil {
		return nil, returnedError
	}

	repository.trace.ApplyTraceAttributes(span, core.TracePredictionMeta{
		Source:  string(core.PredictionSourceMongo),
		Records: len(employeeNumbers),
		Matched: len(result),
	})
	return result, nil
}

// Upsert 寫入或覆蓋單一員工的預測（CLI 匯入使用）
func (repository *AttritionPredictionRepository) Upsert(
	contextValue context.Context,
	prediction model.AttritionPrediction,
) (returnedError error) {
	if repository.collection == nil {
		return ErrMongoDisabled
	}
	contextValue, _, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	if prediction.ScoredAt.IsZero() {
		prediction.ScoredAt = time.Now().UTC()
	}
	update := bson.M{
		"$set": bson.M{
			"riskScore":         prediction.RiskScore,
			"retentionDecision": prediction.RetentionDecision,
			"modelName":         prediction.ModelName,
			"scoredAt":          prediction.ScoredAt,
		},
	}
	_, returnedError = repository.collection.UpdateOne(
		contextValue,
		bson.M{"employeeNumber": prediction.EmployeeNumber},
		withUpdatedAt(update),
		options.Update().SetUpsert(true),
	)
	return returnedError
}

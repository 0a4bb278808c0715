package client

import (
	"context"
	"strings"
	"time"

	"talentpulse/config"
	"talentpulse/internal/core"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// MongoClient 連接 MongoDB；MONGODB.ENABLED=false 時不建立連線
type MongoClient struct {
	client   *mongo.Client
	database string
	logger   *zap.Logger
}

func NewMongoClient(logger *zap.Logger, config *config.Configuration) (*MongoClient, func(), error) {
	mongoClient := &MongoClient{logger: logger, database: config.MongoDB.Database}
	if mongoClient.database == "" {
		mongoClient.database = core.MongoDefaultDatabase
	}
	if !config.MongoDB.Enabled {
		logger.Info("MongoDB disabled")
		return mongoClient, func() {}, nil
	}

	client, err := mongoClient.connectDB(config)
	if err != nil {
		logger.Error("failed to connect to MongoDB", zap.Error(err))
		return nil, nil, err
	}
	logger.Info("Connected to MongoDB", zap.String("database", mongoClient.database))
	mongoClient.client = client

	cleanup := func() {
		logger.Info("closing the MongoDB resources")
		if err := mongoClient.Close(); err != nil {
			logger.Error("failed to close MongoDB client", zap.Error(err))
		}
	}

	return mongoClient, cleanup, nil
}

func (m *MongoClient) connectDB(config *config.Configuration) (*mongo.Client, error) {
	timeout := 10 * time.Second
	if sec := config.MongoDB.ConnectTimeoutSec; sec > 0 {
		timeout = time.Duration(sec) * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	uri := buildMongoURI(config.MongoDB.URI, config.MongoDB.Options)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

func buildMongoURI(baseURI, optionStr string) string {
	if optionStr == "" {
		return baseURI
	}
	if strings.Contains(baseURI, "?") {
		return baseURI + "&" + optionStr
	}
	return baseURI + "?" + optionStr
}

// Enabled 是否已建立連線
func (m *MongoClient) Enabled() bool {
	return m != nil && m.client != nil
}

// Collection 取得設定資料庫下的 collection；未連線時回傳 nil
func (m *MongoClient) Collection(name core.MongoCollection) *mongo.Collection {
	if !m.Enabled() {
		return nil
	}
	return m.client.Database(m.database).Collection(string(name))
}

// Close 關閉 MongoDB 連線
func (m *MongoClient) Close() error {
	if !m.Enabled() {
		return nil
	}
	return m.client.Disconnect(context.Background())
}

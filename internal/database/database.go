package database

import (
	client "talentpulse/internal/database/client"
	fluentdRepo "talentpulse/internal/database/fluentd/repository"
	mongoRepo "talentpulse/internal/database/mongodb/repository"
	redisRepo "talentpulse/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有外部儲存 Client 與 repository 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)

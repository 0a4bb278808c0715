package core

// ─── Storage names ─────────────────────────────────────────────────────────────

type MongoCollection string
type RedisKey string
type FluentdSubTag string

// MongoDB collections
const (
	// 外部評分工作寫入的離職風險預測
	MongoCollectionAttritionPredictions MongoCollection = "attrition_predictions"
)

// MongoDefaultDatabase 未設定 MONGODB.DATABASE 時使用
const MongoDefaultDatabase = "talentpulse"

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyServerName RedisKey = "talentpulse" // 伺服器名稱
	RedisKeyRateLimit  RedisKey = "ratelimit"
)

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
	FluentdRefresh  FluentdSubTag = "refresh_log"
)

// FluentdTimeLayout fluentd 紀錄的時間格式
const FluentdTimeLayout = "2006-01-02 15:04:05.999999 UTC"

package core

// RefreshTrigger 觸發儀表板重算的來源
type RefreshTrigger string

const (
	RefreshTriggerStartup RefreshTrigger = "startup"
	RefreshTriggerCron    RefreshTrigger = "cron"
	RefreshTriggerWatch   RefreshTrigger = "watch"
	RefreshTriggerAPI     RefreshTrigger = "api"
	RefreshTriggerCLI     RefreshTrigger = "cli"
)

// PredictionSourceName 預測來源設定值
type PredictionSourceName string

const (
	PredictionSourceNone      PredictionSourceName = "none"
	PredictionSourceSimulated PredictionSourceName = "simulated"
	PredictionSourceMongo     PredictionSourceName = "mongo"
)

// 未被 trace / log / response middleware 處理的路徑前綴
var UntracedPathPrefixes = []string{"/swagger", "/metrics", "/version", "/health-check", "/health/", "/debug/pprof"}

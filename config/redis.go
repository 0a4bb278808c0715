package config

// Redis 僅用於 dashboard API 的固定視窗限流
type Redis struct {
	Enabled  bool   `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	Host     string `mapstructure:"HOST" json:"host" yaml:"host"`
	Port     int    `mapstructure:"PORT" json:"port" yaml:"port"`
	Password string `mapstructure:"PASSWORD" json:"password" yaml:"password"`
	DB       int    `mapstructure:"DB" json:"db" yaml:"db"`
	// 連線與 ping 的逾時秒數，0 使用預設 5 秒
	DialTimeoutSec int `mapstructure:"DIAL_TIMEOUT_SEC" json:"dialTimeoutSec" yaml:"dialTimeoutSec"`
	// 每個 client IP 在 WindowSec 內可呼叫的次數，0 表示不限流
	RateLimit int   `mapstructure:"RATE_LIMIT" json:"rateLimit" yaml:"rateLimit"`
	WindowSec int64 `mapstructure:"WINDOW_SEC" json:"windowSec" yaml:"windowSec"`
}

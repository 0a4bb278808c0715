package config

// MongoDB 只在 PREDICTION.SOURCE=mongo 或 seed-predictions 時需要啟用
type MongoDB struct {
	Enabled  bool   `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	URI      string `mapstructure:"URI" json:"uri" yaml:"uri"`
	Options  string `mapstructure:"OPTIONS" json:"options" yaml:"options"`
	Database string `mapstructure:"DATABASE" json:"database" yaml:"database"`
	// 連線與 ping 的逾時秒數，0 使用預設 10 秒
	ConnectTimeoutSec int `mapstructure:"CONNECT_TIMEOUT_SEC" json:"connectTimeoutSec" yaml:"connectTimeoutSec"`
}

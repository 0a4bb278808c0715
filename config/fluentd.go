package config

// Fluentd request / response / refresh log 轉送
type Fluentd struct {
	Enabled   bool   `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	Host      string `mapstructure:"HOST" json:"host" yaml:"host"`
	Port      int    `mapstructure:"PORT" json:"port" yaml:"port"`
	TagPrefix string `mapstructure:"TAG_PREFIX" json:"tagPrefix" yaml:"tagPrefix"`
	// 連線逾時（毫秒）
	Timeout int64 `mapstructure:"TIMEOUT" json:"timeout" yaml:"timeout"`
	// 非同步模式下的緩衝上限（bytes），0 使用套件預設值
	BufferLimit int `mapstructure:"BUFFER_LIMIT" json:"bufferLimit" yaml:"bufferLimit"`
	// 送出失敗的重試次數，0 使用套件預設值
	MaxRetry int `mapstructure:"MAX_RETRY" json:"maxRetry" yaml:"maxRetry"`
}

package config

type Configuration struct {
	App        App             `mapstructure:"APP" json:"app" yaml:"app"`
	Log        Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	Dataset    Dataset         `mapstructure:"DATASET" json:"dataset" yaml:"dataset"`
	Prediction Prediction      `mapstructure:"PREDICTION" json:"prediction" yaml:"prediction"`
	History    History         `mapstructure:"HISTORY" json:"history" yaml:"history"`
	Reference  Reference       `mapstructure:"REFERENCE" json:"reference" yaml:"reference"`
	Redis      Redis           `mapstructure:"REDIS" json:"redis" yaml:"redis"`
	MongoDB    MongoDB         `mapstructure:"MONGODB" json:"mongodb" yaml:"mongodb"`
	Telemetry  TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
	Fluentd    Fluentd         `mapstructure:"FLUENTD" yaml:"fluentd"`
}

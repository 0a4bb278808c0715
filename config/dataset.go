package config

type Dataset struct {
	// CSV 或 XLSX 檔案路徑（相對路徑以專案根目錄為基準）
	Path string `mapstructure:"PATH" json:"path" yaml:"path"`
	// XLSX 工作表名稱，空值取第一張
	Sheet string `mapstructure:"SHEET" json:"sheet" yaml:"sheet"`
	// 重新載入排程（含秒欄位），空值表示不排程
	ReloadCron string `mapstructure:"RELOAD_CRON" json:"reloadCron" yaml:"reloadCron"`
	// 監看檔案異動後自動重算
	Watch bool `mapstructure:"WATCH" json:"watch" yaml:"watch"`
	// 以員工資料即時計算年齡帶 / 因子流失率，否則使用參考表
	LiveFactorTables bool `mapstructure:"LIVE_FACTOR_TABLES" json:"liveFactorTables" yaml:"liveFactorTables"`
	// 高風險門檻（KeyMetrics 預設值）
	RiskThreshold float64 `mapstructure:"RISK_THRESHOLD" json:"riskThreshold" yaml:"riskThreshold"`
}

type Prediction struct {
	// none / simulated / mongo
	Source string `mapstructure:"SOURCE" json:"source" yaml:"source"`
	Seed   int64  `mapstructure:"SEED" json:"seed" yaml:"seed"`
}

type QuarterPoint struct {
	Quarter      string  `mapstructure:"QUARTER" json:"quarter" yaml:"quarter"`
	Performance  float64 `mapstructure:"PERFORMANCE" json:"performance" yaml:"performance"`
	Attrition    float64 `mapstructure:"ATTRITION" json:"attrition" yaml:"attrition"`
	Engagement   float64 `mapstructure:"ENGAGEMENT" json:"engagement" yaml:"engagement"`
	Satisfaction float64 `mapstructure:"SATISFACTION" json:"satisfaction" yaml:"satisfaction"`
}

// History 非當季的季度數值，由外部提供
type History struct {
	Quarters []QuarterPoint `mapstructure:"QUARTERS" json:"quarters" yaml:"quarters"`
}

package model

// RefreshLog 每次儀表板重算一筆
type RefreshLog struct {
	BundleID        string  `json:"bundle_id,omitempty"`
	ProjectName     string  `json:"project_name,omitempty"`
	Trigger         string  `json:"trigger"`
	Source          string  `json:"source,omitempty"`
	SourcePath      string  `json:"source_path,omitempty"`
	Employees       int     `json:"employees"`
	FieldErrors     int     `json:"field_errors"`
	LoadError       string  `json:"load_error,omitempty"`
	PredictionError string  `json:"prediction_error,omitempty"`
	Error           string  `json:"error,omitempty"`
	DurationMs      float64 `json:"duration_ms"`
	Version         string  `json:"version,omitempty"`
	GeneratedAt     string  `json:"generated_at,omitempty"`
	LoggedAt        string  `json:"logged_at"`
}

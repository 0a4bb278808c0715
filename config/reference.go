package config

type NamedValue struct {
	Name  string  `mapstructure:"NAME" json:"name" yaml:"name"`
	Value float64 `mapstructure:"VALUE" json:"value" yaml:"value"`
}

type ModelAccuracy struct {
	Model     string  `mapstructure:"MODEL" json:"model" yaml:"model"`
	Accuracy  float64 `mapstructure:"ACCURACY" json:"accuracy" yaml:"accuracy"`
	Precision float64 `mapstructure:"PRECISION" json:"precision" yaml:"precision"`
	Recall    float64 `mapstructure:"RECALL" json:"recall" yaml:"recall"`
	F1        float64 `mapstructure:"F1" json:"f1" yaml:"f1"`
}

type ROCPoint struct {
	FPR float64 `mapstructure:"FPR" json:"fpr" yaml:"fpr"`
	TPR float64 `mapstructure:"TPR" json:"tpr" yaml:"tpr"`
}

// Reference 覆寫內建參考表；空的欄位沿用預設值
type Reference struct {
	FeatureImportance []NamedValue    `mapstructure:"FEATURE_IMPORTANCE" json:"featureImportance" yaml:"featureImportance"`
	ModelAccuracies   []ModelAccuracy `mapstructure:"MODEL_ACCURACIES" json:"modelAccuracies" yaml:"modelAccuracies"`
	ConfusionMatrix   []NamedValue    `mapstructure:"CONFUSION_MATRIX" json:"confusionMatrix" yaml:"confusionMatrix"`
	ROCCurve          []ROCPoint      `mapstructure:"ROC_CURVE" json:"rocCurve" yaml:"rocCurve"`
	AttritionByFactor []NamedValue    `mapstructure:"ATTRITION_BY_FACTOR" json:"attritionByFactor" yaml:"attritionByFactor"`
	AttritionByAge    []NamedValue    `mapstructure:"ATTRITION_BY_AGE" json:"attritionByAge" yaml:"attritionByAge"`
}

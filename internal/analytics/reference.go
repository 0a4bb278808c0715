package analytics

type FeatureImportance struct {
	Name       string  `json:"name"`
	Importance float64 `json:"importance"`
}

type ModelAccuracy struct {
	Model     string  `json:"model"`
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

type ConfusionCell struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type ROCPoint struct {
	FPR float64 `json:"fpr"`
	TPR float64 `json:"tpr"`
}

type FactorRate struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

type AgeBandRate struct {
	AgeGroup      string  `json:"ageGroup"`
	AttritionRate float64 `json:"attritionRate"`
}

type SatisfactionBucket struct {
	Name   string  `json:"name"`
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

type DistributionShare struct {
	Name       string `json:"name"`
	Value      int    `json:"value"`
	Percentage int    `json:"percentage"`
}

type RadarAxis struct {
	Subject  string  `json:"subject"`
	A        float64 `json:"A"`
	B        float64 `json:"B"`
	FullMark float64 `json:"fullMark"`
}

type CostSavingsMonth struct {
	Month     string `json:"month"`
	Actual    int64  `json:"actual"`
	Projected int64  `json:"projected"`
}

// ReferenceTables 非由員工資料推導的固定表格，可由設定覆寫
type ReferenceTables struct {
	FeatureImportance     []FeatureImportance  `json:"featureImportance"`
	ModelAccuracies       []ModelAccuracy      `json:"modelAccuracies"`
	ConfusionMatrix       []ConfusionCell      `json:"confusionMatrix"`
	ROCCurve              []ROCPoint           `json:"rocCurve"`
	AttritionByFactors    []FactorRate         `json:"attritionByFactors"`
	AttritionByAgeBand    []AgeBandRate        `json:"attritionByAgeBand"`
	SatisfactionMatrix    []SatisfactionBucket `json:"satisfactionMatrix"`
	AttritionDistribution []DistributionShare  `json:"attritionDistribution"`
	RadarChart            []RadarAxis          `json:"radarChart"`
	CostSavings           []CostSavingsMonth   `json:"costSavings"`
}

// DefaultReferenceTables returns a fresh copy of the built-in tables.
func DefaultReferenceTables() ReferenceTables {
	return ReferenceTables{
		FeatureImportance: []FeatureImportance{
			{Name: "OverTime", Importance: 0.183},
			{Name: "MonthlyIncome", Importance: 0.152},
			{Name: "Age", Importance: 0.121},
			{Name: "JobSatisfaction", Importance: 0.112},
			{Name: "DistanceFromHome", Importance: 0.094},
			{Name: "YearsAtCompany", Importance: 0.078},
			{Name: "WorkLifeBalance", Importance: 0.068},
			{Name: "JobInvolvement", Importance: 0.056},
			{Name: "TotalWorkingYears", Importance: 0.052},
			{Name: "EnvironmentSatisfaction", Importance: 0.047},
		},
		ModelAccuracies: []ModelAccuracy{
			{Model: "Logistic Regression", Accuracy: 0.78, Precision: 0.71, Recall: 0.67, F1: 0.69},
			{Model: "Random Forest", Accuracy: 0.86, Precision: 0.83, Recall: 0.79, F1: 0.81},
			{Model: "Gradient Boosting", Accuracy: 0.89, Precision: 0.86, Recall: 0.84, F1: 0.85},
			{Model: "Neural Network", Accuracy: 0.85, Precision: 0.82, Recall: 0.78, F1: 0.80},
		},
		ConfusionMatrix: []ConfusionCell{
			{Name: "True Negative", Value: 242},
			{Name: "False Positive", Value: 28},
			{Name: "False Negative", Value: 19},
			{Name: "True Positive", Value: 105},
		},
		ROCCurve: []ROCPoint{
			{FPR: 0, TPR: 0},
			{FPR: 0.05, TPR: 0.38},
			{FPR: 0.1, TPR: 0.61},
			{FPR: 0.2, TPR: 0.79},
			{FPR: 0.3, TPR: 0.86},
			{FPR: 0.4, TPR: 0.91},
			{FPR: 0.5, TPR: 0.94},
			{FPR: 0.6, TPR: 0.96},
			{FPR: 0.7, TPR: 0.97},
			{FPR: 0.8, TPR: 0.98},
			{FPR: 0.9, TPR: 0.99},
			{FPR: 1.0, TPR: 1.0},
		},
		AttritionByFactors: []FactorRate{
			{Name: "Low Work-Life Balance", Rate: 31.8},
			{Name: "Overtime Workers", Rate: 28.7},
			{Name: "Low Job Satisfaction", Rate: 26.2},
			{Name: "Long Distance Commute", Rate: 24.1},
			{Name: "Low Monthly Income", Rate: 19.8},
			{Name: "No Promotion >5 Years", Rate: 18.3},
			{Name: "New Employees (<2 Years)", Rate: 16.9},
			{Name: "Single Employees", Rate: 15.3},
		},
		AttritionByAgeBand: []AgeBandRate{
			{AgeGroup: "18-25", AttritionRate: 28.4},
			{AgeGroup: "26-35", AttritionRate: 21.7},
			{AgeGroup: "36-45", AttritionRate: 14.2},
			{AgeGroup: "46-55", AttritionRate: 9.8},
			{AgeGroup: "56+", AttritionRate: 15.6},
		},
		SatisfactionMatrix: []SatisfactionBucket{
			{Name: "Job Satisfaction", Low: 28.7, Medium: 16.4, High: 8.2},
			{Name: "Work-Life Balance", Low: 31.8, Medium: 17.9, High: 7.5},
			{Name: "Environment Satisfaction", Low: 24.3, Medium: 15.6, High: 9.1},
			{Name: "Relationship Satisfaction", Low: 21.5, Medium: 14.8, High: 10.3},
		},
		AttritionDistribution: []DistributionShare{
			{Name: "Voluntary", Value: 230, Percentage: 50},
			{Name: "Involuntary", Value: 152, Percentage: 33},
			{Name: "Retirement", Value: 78, Percentage: 17},
		},
		RadarChart: []RadarAxis{
			{Subject: "Job Satisfaction", A: 3.6, B: 2.2, FullMark: 5},
			{Subject: "Work-Life Balance", A: 3.8, B: 1.9, FullMark: 5},
			{Subject: "Environment", A: 3.7, B: 2.4, FullMark: 5},
			{Subject: "Relationships", A: 3.4, B: 2.5, FullMark: 5},
			{Subject: "Job Involvement", A: 3.9, B: 2.7, FullMark: 5},
			{Subject: "Performance", A: 4.1, B: 2.3, FullMark: 5},
		},
		CostSavings: []CostSavingsMonth{
			{Month: "Jan", Actual: 0, Projected: 670000},
			{Month: "Feb", Actual: 0, Projected: 740000},
			{Month: "Mar", Actual: 0, Projected: 810000},
			{Month: "Apr", Actual: 520000, Projected: 860000},
			{Month: "May", Actual: 610000, Projected: 920000},
			{Month: "Jun", Actual: 780000, Projected: 970000},
			{Month: "Jul", Actual: 840000, Projected: 1020000},
			{Month: "Aug", Actual: 930000, Projected: 1080000},
			{Month: "Sep", Actual: 980000, Projected: 1130000},
			{Month: "Oct", Actual: 0, Projected: 1190000},
			{Month: "Nov", Actual: 0, Projected: 1240000},
			{Month: "Dec", Actual: 0, Projected: 1300000},
		},
	}
}

// DistributionFor scales the attrition distribution shares onto headcount,
// flooring each share.
func (r ReferenceTables) DistributionFor(headcount int) []DistributionShare {
	shares := make([]DistributionShare, 0, len(r.AttritionDistribution))
	for _, share := range r.AttritionDistribution {
		share.Value = headcount * share.Percentage / 100
		shares = append(shares, share)
	}
	return shares
}

// Override 以非空的表格取代預設值
func (r ReferenceTables) Override(other ReferenceTables) ReferenceTables {
	if len(other.FeatureImportance) > 0 {
		r.FeatureImportance = other.FeatureImportance
	}
	if len(other.ModelAccuracies) > 0 {
		r.ModelAccuracies = other.ModelAccuracies
	}
	if len(other.ConfusionMatrix) > 0 {
		r.ConfusionMatrix = other.ConfusionMatrix
	}
	if len(other.ROCCurve) > 0 {
		r.ROCCurve = other.ROCCurve
	}
	if len(other.AttritionByFactors) > 0 {
		r.AttritionByFactors = other.AttritionByFactors
	}
	if len(other.AttritionByAgeBand) > 0 {
		r.AttritionByAgeBand = other.AttritionByAgeBand
	}
	if len(other.SatisfactionMatrix) > 0 {
		r.SatisfactionMatrix = other.SatisfactionMatrix
	}
	if len(other.AttritionDistribution) > 0 {
		r.AttritionDistribution = other.AttritionDistribution
	}
	if len(other.RadarChart) > 0 {
		r.RadarChart = other.RadarChart
	}
	if len(other.CostSavings) > 0 {
		r.CostSavings = other.CostSavings
	}
	return r
}

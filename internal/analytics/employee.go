package analytics

import (
	"encoding/json"
	"strings"
)

// RiskCategory 由 attritionRisk 依固定門檻推得，不單獨儲存
type RiskCategory string

const (
	LowRisk    RiskCategory = "Low Risk"
	MediumRisk RiskCategory = "Medium Risk"
	HighRisk   RiskCategory = "High Risk"
)

const (
	lowRiskCeiling    = 0.3
	mediumRiskCeiling = 0.6

	// AtRiskThreshold 部門 / 職務流失率的計數門檻
	AtRiskThreshold = 0.5
)

// CategoryForRisk maps a risk score onto its category: < 0.3 low, < 0.6 medium, else high.
func CategoryForRisk(risk float64) RiskCategory {
	switch {
	case risk < lowRiskCeiling:
		return LowRisk
	case risk < mediumRiskCeiling:
		return MediumRisk
	default:
		return HighRisk
	}
}

type RetentionDecision string

const (
	Keep  RetentionDecision = "Keep"
	LetGo RetentionDecision = "Let Go"
)

// ParseRetentionDecision accepts "Keep", "Let Go", "LetGo" and "let_go" in any case.
func ParseRetentionDecision(raw string) (RetentionDecision, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(normalized)
	switch normalized {
	case "keep":
		return Keep, true
	case "letgo":
		return LetGo, true
	default:
		return "", false
	}
}

// Employee 正規化後的員工資料，建立後不再修改
type Employee struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	Department        string            `json:"department"`
	JobRole           string            `json:"jobRole"`
	Age               int               `json:"age"`
	Gender            string            `json:"gender"`
	AttritionRisk     float64           `json:"attritionRisk"`
	RetentionDecision RetentionDecision `json:"retentionDecision"`
	Performance       int               `json:"performance"`
	MonthlySalary     float64           `json:"monthlySalary"`
	SatisfactionScore float64           `json:"satisfactionScore"`
	WorkLifeBalance   int               `json:"workLifeBalance"`
	YearsAtCompany    int               `json:"yearsAtCompany"`
	JobLevel          int               `json:"jobLevel"`
	Overtime          string            `json:"overtime"`
	DistanceFromHome  int               `json:"distanceFromHome"`
}

func (e Employee) AttritionCategory() RiskCategory {
	return CategoryForRisk(e.AttritionRisk)
}

func (e Employee) atRisk() bool {
	return e.AttritionRisk >= AtRiskThreshold
}

// MarshalJSON 輸出時帶上由風險值推導出的 attritionCategory
func (e Employee) MarshalJSON() ([]byte, error) {
	type plain Employee
	return json.Marshal(struct {
		plain
		AttritionCategory RiskCategory `json:"attritionCategory"`
	}{
		plain:             plain(e),
		AttritionCategory: e.AttritionCategory(),
	})
}

package analytics

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FilterAll 下拉選單的「全部」選項
const FilterAll = "All"

// AgeRange 員工列表的年齡篩選區間
type AgeRange string

const (
	AgeRangeAll     AgeRange = "All"
	AgeRange18To30  AgeRange = "18-30"
	AgeRange31To40  AgeRange = "31-40"
	AgeRange41To50  AgeRange = "41-50"
	AgeRange51Above AgeRange = "51+"
)

func (r AgeRange) contains(age int) bool {
	switch r {
	case AgeRange18To30:
		return age >= 18 && age <= 30
	case AgeRange31To40:
		return age >= 31 && age <= 40
	case AgeRange41To50:
		return age >= 41 && age <= 50
	case AgeRange51Above:
		return age >= 51
	default:
		return true
	}
}

// EmployeeFilter selects a subset of employees. Empty or "All" values match
// everything; Search is a case-insensitive substring of name, department or
// job role.
type EmployeeFilter struct {
	Department string
	JobRole    string
	AgeRange   AgeRange
	Search     string
}

func (f EmployeeFilter) matches(e Employee, search string) bool {
	if f.Department != "" && f.Department != FilterAll && e.Department != f.Department {
		return false
	}
	if f.JobRole != "" && f.JobRole != FilterAll && e.JobRole != f.JobRole {
		return false
	}
	if !f.AgeRange.contains(e.Age) {
		return false
	}
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), search) ||
		strings.Contains(strings.ToLower(e.Department), search) ||
		strings.Contains(strings.ToLower(e.JobRole), search)
}

// Filter returns the matching employees in input order.
func Filter(employees []Employee, filter EmployeeFilter) ([]Employee, error) {
	if employees == nil {
		return nil, nilCollection("filter")
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if filter.matches(e, search) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

type KeyMetrics struct {
	TotalEmployees          int     `json:"totalEmployees"`
	HighRiskCount           int     `json:"highRiskCount"`
	HighRiskPercentage      float64 `json:"highRiskPercentage"`
	RecommendedForLetGo     int     `json:"recommendedForLetGo"`
	AvgAttritionRisk        float64 `json:"avgAttritionRisk"`
	TotalMonthlyCost        float64 `json:"totalMonthlyCost"`
	AnnualSavings           float64 `json:"annualSavings"`
	CostReductionPercentage float64 `json:"costReductionPercentage"`
	RiskThreshold           float64 `json:"riskThreshold"`
}

// ComputeKeyMetrics summarises the headline numbers. An employee counts as high risk
// when attritionRisk >= threshold; AvgAttritionRisk is a one-decimal percentage.
func ComputeKeyMetrics(employees []Employee, threshold float64) (KeyMetrics, error) {
	if employees == nil {
		return KeyMetrics{}, nilCollection("key metrics")
	}
	metrics := KeyMetrics{TotalEmployees: len(employees), RiskThreshold: threshold}
	var (
		monthly = decimal.Zero
		savings = decimal.Zero
		risk    float64
	)
	for _, e := range employees {
		if e.AttritionRisk >= threshold {
			metrics.HighRiskCount++
		}
		if e.RetentionDecision == LetGo {
			metrics.RecommendedForLetGo++
			savings = savings.Add(annualized(e.MonthlySalary))
		}
		monthly = monthly.Add(decimal.NewFromFloat(e.MonthlySalary))
		risk += e.AttritionRisk
	}
	metrics.HighRiskPercentage = percentage(metrics.HighRiskCount, len(employees))
	metrics.TotalMonthlyCost = monthly.InexactFloat64()
	metrics.AnnualSavings = savings.InexactFloat64()
	if len(employees) > 0 {
		metrics.AvgAttritionRisk = round1(risk / float64(len(employees)) * 100)
	}
	if annualCost := monthly.Mul(decimal.NewFromInt(12)); annualCost.IsPositive() {
		metrics.CostReductionPercentage = savings.Div(annualCost).Mul(decimal.NewFromInt(100)).Round(1).InexactFloat64()
	}
	return metrics, nil
}

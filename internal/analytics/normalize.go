package analytics

import (
	"fmt"
	"math"

	"talentpulse/internal/dataset"
)

const (
	defaultRisk     = 0.1
	defaultDecision = Keep
)

// Predictions 外部提供、依列序對齊的預測結果
// 超出長度、非有限或不在 [0,1] 的分數、空字串決策都視為缺值
type Predictions struct {
	RiskScores []float64
	Decisions  []RetentionDecision
}

func (p Predictions) riskAt(index int) float64 {
	if index >= len(p.RiskScores) {
		return defaultRisk
	}
	risk := p.RiskScores[index]
	if math.IsNaN(risk) || risk < 0 || risk > 1 {
		return defaultRisk
	}
	return risk
}

func (p Predictions) decisionAt(index int) RetentionDecision {
	if index >= len(p.Decisions) || p.Decisions[index] == "" {
		return defaultDecision
	}
	return p.Decisions[index]
}

// Normalize builds one Employee per record, preserving order.
func Normalize(records []dataset.Record, predictions Predictions) ([]Employee, error) {
	if records == nil {
		return nil, &InvalidInputError{Operation: "normalize", Reason: "record collection is nil"}
	}
	employees := make([]Employee, 0, len(records))
	for i, record := range records {
		employees = append(employees, normalizeRecord(record, predictions.riskAt(i), predictions.decisionAt(i)))
	}
	return employees, nil
}

func normalizeRecord(record dataset.Record, risk float64, decision RetentionDecision) Employee {
	id, _ := record.Int(dataset.ColumnEmployeeNumber)
	name, ok := record.String(dataset.ColumnName)
	if !ok || name == "" {
		name = fmt.Sprintf("Employee %d", id)
	}
	department, _ := record.String(dataset.ColumnDepartment)
	jobRole, _ := record.String(dataset.ColumnJobRole)
	gender, _ := record.String(dataset.ColumnGender)
	overtime, _ := record.String(dataset.ColumnOverTime)
	age, _ := record.Int(dataset.ColumnAge)
	performance, _ := record.Int(dataset.ColumnPerformanceRating)
	salary, _ := record.Float(dataset.ColumnMonthlyIncome)
	workLifeBalance, _ := record.Int(dataset.ColumnWorkLifeBalance)
	yearsAtCompany, _ := record.Int(dataset.ColumnYearsAtCompany)
	jobLevel, _ := record.Int(dataset.ColumnJobLevel)
	distance, _ := record.Int(dataset.ColumnDistanceFromHome)

	return Employee{
		ID:                id,
		Name:              name,
		Department:        department,
		JobRole:           jobRole,
		Age:               age,
		Gender:            gender,
		AttritionRisk:     risk,
		RetentionDecision: decision,
		Performance:       performance,
		MonthlySalary:     salary,
		SatisfactionScore: satisfactionScore(record),
		WorkLifeBalance:   workLifeBalance,
		YearsAtCompany:    yearsAtCompany,
		JobLevel:          jobLevel,
		Overtime:          overtime,
		DistanceFromHome:  distance,
	}
}

var satisfactionColumns = []string{
	dataset.ColumnJobSatisfaction,
	dataset.ColumnEnvironmentSatisfaction,
	dataset.ColumnRelationshipSatisfaction,
	dataset.ColumnWorkLifeBalance,
}

// satisfactionScore 四項子分數平均；缺值以 0 計，分母固定為 4
func satisfactionScore(record dataset.Record) float64 {
	var sum float64
	for _, column := range satisfactionColumns {
		if v, ok := record.Float(column); ok {
			sum += v
		}
	}
	return sum / float64(len(satisfactionColumns))
}

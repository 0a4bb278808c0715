package analytics

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"talentpulse/internal/dataset"
)

func TestCategoryForRisk_Thresholds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		risk float64
		want RiskCategory
	}{
		{0, LowRisk},
		{0.29, LowRisk},
		{0.3, MediumRisk},
		{0.59, MediumRisk},
		{0.6, HighRisk},
		{1, HighRisk},
	}
	for _, tc := range cases {
		if got := CategoryForRisk(tc.risk); got != tc.want {
			t.Errorf("CategoryForRisk(%v) = %q, want %q", tc.risk, got, tc.want)
		}
		if got := (Employee{AttritionRisk: tc.risk}).AttritionCategory(); got != tc.want {
			t.Errorf("Employee{%v}.AttritionCategory() = %q, want %q", tc.risk, got, tc.want)
		}
	}
}

func TestParseRetentionDecision(t *testing.T) {
	t.Parallel()

	cases := map[string]RetentionDecision{
		"Keep":   Keep,
		" keep ": Keep,
		"Let Go": LetGo,
		"LetGo":  LetGo,
		"let_go": LetGo,
		"LET-GO": LetGo,
		"fire":   "",
		"":       "",
	}
	for raw, want := range cases {
		got, ok := ParseRetentionDecision(raw)
		if got != want || ok != (want != "") {
			t.Errorf("ParseRetentionDecision(%q) = %q, %v", raw, got, ok)
		}
	}
}

func TestNormalize_PartialSatisfaction(t *testing.T) {
	t.Parallel()

	records := []dataset.Record{
		dataset.NewRecord(map[string]any{
			dataset.ColumnEmployeeNumber:  7,
			dataset.ColumnDepartment:      "R&D",
			dataset.ColumnJobSatisfaction: 4.0,
			dataset.ColumnWorkLifeBalance: 2,
		}),
	}
	employees, err := Normalize(records, Predictions{RiskScores: []float64{0.5}, Decisions: []RetentionDecision{LetGo}})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	e := employees[0]
	if e.SatisfactionScore != (4.0+2.0+0+0)/4 {
		t.Fatalf("satisfactionScore = %v, want 1.5", e.SatisfactionScore)
	}
	if e.AttritionCategory() != MediumRisk {
		t.Fatalf("category = %q, want Medium Risk", e.AttritionCategory())
	}
	if e.RetentionDecision != LetGo {
		t.Fatalf("decision = %q, want Let Go", e.RetentionDecision)
	}
	if e.Name != "Employee 7" {
		t.Fatalf("name = %q, want placeholder", e.Name)
	}
}

func TestNormalize_DefaultsForAbsentPredictions(t *testing.T) {
	t.Parallel()

	records := []dataset.Record{
		dataset.NewRecord(map[string]any{dataset.ColumnEmployeeNumber: 1}),
		dataset.NewRecord(map[string]any{dataset.ColumnEmployeeNumber: 2}),
		dataset.NewRecord(map[string]any{dataset.ColumnEmployeeNumber: 3}),
	}
	predictions := Predictions{
		RiskScores: []float64{0, math.NaN()},
		Decisions:  []RetentionDecision{LetGo, ""},
	}
	employees, err := Normalize(records, predictions)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	if employees[0].AttritionRisk != 0 || employees[0].RetentionDecision != LetGo {
		t.Errorf("explicit zero risk must be kept: %+v", employees[0])
	}
	for _, e := range employees[1:] {
		if e.AttritionRisk != 0.1 || e.RetentionDecision != Keep {
			t.Errorf("employee %d: risk=%v decision=%q, want defaults", e.ID, e.AttritionRisk, e.RetentionDecision)
		}
	}
}

func TestNormalize_OutOfRangeRiskUsesDefault(t *testing.T) {
	t.Parallel()

	scores := []float64{math.Inf(1), math.Inf(-1), -0.2, 1.7, 1}
	records := make([]dataset.Record, len(scores))
	for i := range records {
		records[i] = dataset.NewRecord(map[string]any{
			dataset.ColumnEmployeeNumber: i + 1,
			dataset.ColumnDepartment:     "R&D",
			dataset.ColumnMonthlyIncome:  5000.0,
		})
	}
	employees, err := Normalize(records, Predictions{RiskScores: scores})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	for _, e := range employees[:4] {
		if e.AttritionRisk != 0.1 {
			t.Errorf("employee %d: risk=%v, want default 0.1", e.ID, e.AttritionRisk)
		}
	}
	if employees[4].AttritionRisk != 1 {
		t.Errorf("risk 1 must be kept, got %v", employees[4].AttritionRisk)
	}

	metrics, err := ComputeKeyMetrics(employees, AtRiskThreshold)
	if err != nil {
		t.Fatalf("key metrics: %v", err)
	}
	if metrics.TotalEmployees != 5 || metrics.HighRiskCount != 1 {
		t.Errorf("unexpected metrics %+v", metrics)
	}
}

func TestNormalize_CopiesFieldsAndPreservesOrder(t *testing.T) {
	t.Parallel()

	records := []dataset.Record{
		dataset.NewRecord(map[string]any{
			dataset.ColumnEmployeeNumber:           20,
			dataset.ColumnName:                     "Emily Davis",
			dataset.ColumnDepartment:               "Finance",
			dataset.ColumnJobRole:                  "Financial Analyst",
			dataset.ColumnAge:                      28,
			dataset.ColumnGender:                   "Female",
			dataset.ColumnPerformanceRating:        4,
			dataset.ColumnMonthlyIncome:            4900.0,
			dataset.ColumnJobSatisfaction:          3.0,
			dataset.ColumnEnvironmentSatisfaction:  4.0,
			dataset.ColumnRelationshipSatisfaction: 3.0,
			dataset.ColumnWorkLifeBalance:          3,
			dataset.ColumnYearsAtCompany:           3,
			dataset.ColumnJobLevel:                 1,
			dataset.ColumnOverTime:                 "No",
			dataset.ColumnDistanceFromHome:         11,
		}),
		dataset.NewRecord(map[string]any{dataset.ColumnEmployeeNumber: 10}),
	}
	employees, err := Normalize(records, Predictions{})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(employees) != 2 || employees[0].ID != 20 || employees[1].ID != 10 {
		t.Fatalf("order not preserved: %+v", employees)
	}
	want := Employee{
		ID: 20, Name: "Emily Davis", Department: "Finance", JobRole: "Financial Analyst",
		Age: 28, Gender: "Female", AttritionRisk: 0.1, RetentionDecision: Keep,
		Performance: 4, MonthlySalary: 4900, SatisfactionScore: 3.25, WorkLifeBalance: 3,
		YearsAtCompany: 3, JobLevel: 1, Overtime: "No", DistanceFromHome: 11,
	}
	if employees[0] != want {
		t.Fatalf("employee = %+v\nwant %+v", employees[0], want)
	}
}

func TestNormalize_EmptyAndNil(t *testing.T) {
	t.Parallel()

	employees, err := Normalize([]dataset.Record{}, Predictions{})
	if err != nil || employees == nil || len(employees) != 0 {
		t.Fatalf("empty records: %v %v", employees, err)
	}
	var invalid *InvalidInputError
	if _, err := Normalize(nil, Predictions{}); !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestEmployee_MarshalJSONIncludesCategory(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(Employee{ID: 1, AttritionRisk: 0.64, RetentionDecision: LetGo})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	for _, fragment := range []string{`"attritionCategory":"High Risk"`, `"retentionDecision":"Let Go"`, `"attritionRisk":0.64`} {
		if !strings.Contains(body, fragment) {
			t.Errorf("missing %s in %s", fragment, body)
		}
	}
}

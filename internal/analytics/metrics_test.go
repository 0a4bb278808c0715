package analytics

import "testing"

func TestFilter(t *testing.T) {
	t.Parallel()

	employees := SampleEmployees()
	cases := []struct {
		name   string
		filter EmployeeFilter
		want   []int
	}{
		{name: "all", filter: EmployeeFilter{Department: FilterAll, JobRole: FilterAll}, want: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{name: "department", filter: EmployeeFilter{Department: "Sales"}, want: []int{2, 5, 8}},
		{name: "department and role", filter: EmployeeFilter{Department: "R&D", JobRole: "Research Scientist"}, want: []int{1, 7}},
		{name: "search name case-insensitive", filter: EmployeeFilter{Search: "GARCIA"}, want: []int{2}},
		{name: "search job role", filter: EmployeeFilter{Search: "analyst"}, want: []int{9}},
		{name: "search department", filter: EmployeeFilter{Search: "market"}, want: []int{10}},
		{name: "age range", filter: EmployeeFilter{AgeRange: AgeRange41To50}, want: []int{3, 4, 10}},
		{name: "no match", filter: EmployeeFilter{Department: "Legal"}, want: []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Filter(employees, tc.filter)
			if err != nil {
				t.Fatalf("filter: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d employees, want %d", len(got), len(tc.want))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Errorf("position %d: id %d, want %d", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestComputeKeyMetrics(t *testing.T) {
	t.Parallel()

	metrics, err := ComputeKeyMetrics(scenarioEmployees(), 0.5)
	if err != nil {
		t.Fatalf("key metrics: %v", err)
	}
	want := KeyMetrics{
		TotalEmployees:          3,
		HighRiskCount:           1,
		HighRiskPercentage:      33.3,
		RecommendedForLetGo:     1,
		AvgAttritionRisk:        44,
		TotalMonthlyCost:        13500,
		AnnualSavings:           48000,
		CostReductionPercentage: 29.6,
		RiskThreshold:           0.5,
	}
	if metrics != want {
		t.Fatalf("metrics = %+v\nwant %+v", metrics, want)
	}

	lowered, err := ComputeKeyMetrics(scenarioEmployees(), 0.3)
	if err != nil {
		t.Fatalf("key metrics: %v", err)
	}
	if lowered.HighRiskCount != 2 {
		t.Fatalf("highRiskCount at 0.3 = %d, want 2", lowered.HighRiskCount)
	}
}

func TestComputeKeyMetrics_Empty(t *testing.T) {
	t.Parallel()

	metrics, err := ComputeKeyMetrics([]Employee{}, 0.5)
	if err != nil {
		t.Fatalf("key metrics: %v", err)
	}
	if metrics.TotalEmployees != 0 || metrics.HighRiskPercentage != 0 || metrics.CostReductionPercentage != 0 {
		t.Fatalf("unexpected metrics for empty input: %+v", metrics)
	}
	if _, err := ComputeKeyMetrics(nil, 0.5); err == nil {
		t.Fatalf("expected error for nil employees")
	}
}

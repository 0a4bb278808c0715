package analytics

import (
	"errors"
	"testing"
)

func scenarioEmployees() []Employee {
	return []Employee{
		{ID: 1, Department: "R&D", JobRole: "Research Scientist", AttritionRisk: 0.15, RetentionDecision: Keep, MonthlySalary: 5000, Performance: 4, SatisfactionScore: 3.5},
		{ID: 2, Department: "R&D", JobRole: "Laboratory Technician", AttritionRisk: 0.82, RetentionDecision: LetGo, MonthlySalary: 4000, Performance: 2, SatisfactionScore: 2},
		{ID: 3, Department: "Sales", JobRole: "Sales Executive", AttritionRisk: 0.35, RetentionDecision: Keep, MonthlySalary: 4500, Performance: 3, SatisfactionScore: 3},
	}
}

func TestDepartmentSummaries_Scenario(t *testing.T) {
	t.Parallel()

	got, err := DepartmentSummaries(scenarioEmployees())
	if err != nil {
		t.Fatalf("department summaries: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(got))
	}

	rd, sales := got[0], got[1]
	if rd.Name != "R&D" || rd.Keep != 1 || rd.LetGo != 1 || rd.AttritionRate != 50.0 || rd.CostSavings != 48000 {
		t.Fatalf("unexpected R&D summary: %+v", rd)
	}
	if rd.AvgPerformance != 3.0 || rd.AvgSatisfaction != 2.8 {
		t.Fatalf("unexpected R&D averages: perf=%v sat=%v", rd.AvgPerformance, rd.AvgSatisfaction)
	}
	if sales.Name != "Sales" || sales.Keep != 1 || sales.LetGo != 0 || sales.AttritionRate != 0 || sales.CostSavings != 0 {
		t.Fatalf("unexpected Sales summary: %+v", sales)
	}
}

func TestDepartmentSummaries_Invariants(t *testing.T) {
	t.Parallel()

	employees := SampleEmployees()
	summaries, err := DepartmentSummaries(employees)
	if err != nil {
		t.Fatalf("department summaries: %v", err)
	}

	sizes := make(map[string]int)
	savings := make(map[string]float64)
	for _, e := range employees {
		sizes[e.Department]++
		if e.RetentionDecision == LetGo {
			savings[e.Department] += e.MonthlySalary * 12
		}
	}

	total := 0
	for _, s := range summaries {
		if s.Keep+s.LetGo != sizes[s.Name] {
			t.Errorf("%s: keep+letGo=%d, group size=%d", s.Name, s.Keep+s.LetGo, sizes[s.Name])
		}
		if s.CostSavings != savings[s.Name] {
			t.Errorf("%s: costSavings=%v, want %v", s.Name, s.CostSavings, savings[s.Name])
		}
		total += s.Keep + s.LetGo
	}
	if total != len(employees) {
		t.Fatalf("departments cover %d employees, want %d", total, len(employees))
	}
	if len(summaries) != len(sizes) {
		t.Fatalf("expected %d departments, got %d", len(sizes), len(summaries))
	}
}

func TestDepartmentSummaries_FirstAppearanceOrderAndExactKeys(t *testing.T) {
	t.Parallel()

	employees := []Employee{
		{Department: "Sales"},
		{Department: "R&D"},
		{Department: "sales"},
		{Department: "Sales"},
	}
	got, err := DepartmentSummaries(employees)
	if err != nil {
		t.Fatalf("department summaries: %v", err)
	}
	want := []string{"Sales", "R&D", "sales"}
	if len(got) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("group %d = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestJobRoleSummaries(t *testing.T) {
	t.Parallel()

	employees := []Employee{
		{JobRole: "Sales Executive", AttritionRisk: 0.5, MonthlySalary: 4801},
		{JobRole: "Sales Executive", AttritionRisk: 0.49, MonthlySalary: 4800},
		{JobRole: "Sales Executive", AttritionRisk: 0.9, MonthlySalary: 4800},
		{JobRole: "Manager", AttritionRisk: 0.1, MonthlySalary: 16500},
	}
	got, err := JobRoleSummaries(employees)
	if err != nil {
		t.Fatalf("job role summaries: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 job roles, got %d", len(got))
	}

	exec := got[0]
	if exec.Name != "Sales Executive" || exec.Count != 3 {
		t.Fatalf("unexpected summary: %+v", exec)
	}
	if exec.AttritionRate != 66.7 {
		t.Errorf("attritionRate = %v, want 66.7", exec.AttritionRate)
	}
	if exec.RiskScore != 2.0/3.0 {
		t.Errorf("riskScore = %v, want %v", exec.RiskScore, 2.0/3.0)
	}
	if exec.AvgSalary != 4800 {
		t.Errorf("avgSalary = %d, want 4800", exec.AvgSalary)
	}
	if got[1].AttritionRate != 0 || got[1].RiskScore != 0 || got[1].AvgSalary != 16500 {
		t.Errorf("unexpected Manager summary: %+v", got[1])
	}
}

func TestJobRoleSummaries_RiskScoreMatchesAttritionRate(t *testing.T) {
	t.Parallel()

	summaries, err := JobRoleSummaries(SampleEmployees())
	if err != nil {
		t.Fatalf("job role summaries: %v", err)
	}
	for _, s := range summaries {
		if round1(s.RiskScore*100) != s.AttritionRate {
			t.Errorf("%s: riskScore %v does not match attritionRate %v", s.Name, s.RiskScore, s.AttritionRate)
		}
	}
}

func TestJobRoleSummaries_Partition(t *testing.T) {
	t.Parallel()

	employees := SampleEmployees()
	summaries, err := JobRoleSummaries(employees)
	if err != nil {
		t.Fatalf("job role summaries: %v", err)
	}
	total := 0
	seen := make(map[string]bool)
	for _, s := range summaries {
		if seen[s.Name] {
			t.Fatalf("job role %q emitted twice", s.Name)
		}
		seen[s.Name] = true
		total += s.Count
	}
	if total != len(employees) {
		t.Fatalf("job roles cover %d employees, want %d", total, len(employees))
	}
}

func TestAggregators_EmptyAndNil(t *testing.T) {
	t.Parallel()

	departments, err := DepartmentSummaries([]Employee{})
	if err != nil || departments == nil || len(departments) != 0 {
		t.Fatalf("empty departments: %v %v", departments, err)
	}
	jobRoles, err := JobRoleSummaries([]Employee{})
	if err != nil || jobRoles == nil || len(jobRoles) != 0 {
		t.Fatalf("empty job roles: %v %v", jobRoles, err)
	}
	treemap, err := Treemap([]DepartmentSummary{})
	if err != nil || treemap == nil || len(treemap) != 0 {
		t.Fatalf("empty treemap: %v %v", treemap, err)
	}

	var invalid *InvalidInputError
	if _, err := DepartmentSummaries(nil); !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError for nil departments, got %v", err)
	}
	if _, err := JobRoleSummaries(nil); !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError for nil job roles, got %v", err)
	}
	if _, err := Treemap(nil); !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError for nil treemap, got %v", err)
	}
}

func TestTreemap(t *testing.T) {
	t.Parallel()

	got, err := Treemap([]DepartmentSummary{
		{Name: "R&D", Keep: 251, LetGo: 67},
		{Name: "Sales", Keep: 188, LetGo: 83},
		{Name: "Empty"},
	})
	if err != nil {
		t.Fatalf("treemap: %v", err)
	}
	cases := []TreemapNode{
		{Name: "R&D", Size: 318, Attrition: 21.1},
		{Name: "Sales", Size: 271, Attrition: 30.6},
		{Name: "Empty", Size: 0, Attrition: 0},
	}
	for i, want := range cases {
		if got[i] != want {
			t.Errorf("node %d = %+v, want %+v", i, got[i], want)
		}
	}
}

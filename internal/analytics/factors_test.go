package analytics

import "testing"

func TestAttritionByAgeBand(t *testing.T) {
	t.Parallel()

	employees := []Employee{
		{Age: 22, AttritionRisk: 0.8},
		{Age: 25, AttritionRisk: 0.1},
		{Age: 30, AttritionRisk: 0.5},
		{Age: 60, AttritionRisk: 0.2},
		{Age: 17, AttritionRisk: 0.9},
	}
	got, err := AttritionByAgeBand(employees)
	if err != nil {
		t.Fatalf("age bands: %v", err)
	}
	want := []AgeBandRate{
		{AgeGroup: "18-25", AttritionRate: 50},
		{AgeGroup: "26-35", AttritionRate: 100},
		{AgeGroup: "56+", AttritionRate: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("band %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAttritionByFactors(t *testing.T) {
	t.Parallel()

	got, err := AttritionByFactors(SampleEmployees())
	if err != nil {
		t.Fatalf("factors: %v", err)
	}
	rates := make(map[string]float64, len(got))
	for _, f := range got {
		rates[f.Name] = f.Rate
	}
	want := map[string]float64{
		"Low Work-Life Balance":    100,
		"Overtime Workers":         100,
		"Long Distance Commute":    100,
		"New Employees (<2 Years)": 100,
		"Low Performance":          100,
	}
	if len(rates) != len(want) {
		t.Fatalf("got %+v", got)
	}
	for name, rate := range want {
		if rates[name] != rate {
			t.Errorf("%s = %v, want %v", name, rates[name], rate)
		}
	}
	if got[0].Name != "Low Work-Life Balance" {
		t.Errorf("factors not in declaration order: %+v", got)
	}
}

func TestFactorTables_Empty(t *testing.T) {
	t.Parallel()

	bands, err := AttritionByAgeBand([]Employee{})
	if err != nil || len(bands) != 0 {
		t.Fatalf("empty bands: %v %v", bands, err)
	}
	factors, err := AttritionByFactors([]Employee{})
	if err != nil || len(factors) != 0 {
		t.Fatalf("empty factors: %v %v", factors, err)
	}
}

package analytics

type ageBand struct {
	label    string
	min, max int
}

var ageBands = []ageBand{
	{label: "18-25", min: 18, max: 25},
	{label: "26-35", min: 26, max: 35},
	{label: "36-45", min: 36, max: 45},
	{label: "46-55", min: 46, max: 55},
	{label: "56+", min: 56, max: -1},
}

func (b ageBand) contains(age int) bool {
	return age >= b.min && (b.max < 0 || age <= b.max)
}

type factor struct {
	name    string
	applies func(Employee) bool
}

var attritionFactors = []factor{
	{name: "Low Work-Life Balance", applies: func(e Employee) bool { return e.WorkLifeBalance > 0 && e.WorkLifeBalance <= 1 }},
	{name: "Overtime Workers", applies: func(e Employee) bool { return e.Overtime == "Yes" }},
	{name: "Long Distance Commute", applies: func(e Employee) bool { return e.DistanceFromHome > 20 }},
	{name: "New Employees (<2 Years)", applies: func(e Employee) bool { return e.YearsAtCompany < 2 }},
	{name: "Low Performance", applies: func(e Employee) bool { return e.Performance > 0 && e.Performance < 3 }},
}

// AttritionByAgeBand computes the at-risk share per age band from employees.
// Bands without members are left out.
func AttritionByAgeBand(employees []Employee) ([]AgeBandRate, error) {
	if employees == nil {
		return nil, nilCollection("attrition by age band")
	}
	rates := make([]AgeBandRate, 0, len(ageBands))
	for _, band := range ageBands {
		members, atRisk := countAtRisk(employees, func(e Employee) bool { return band.contains(e.Age) })
		if members == 0 {
			continue
		}
		rates = append(rates, AgeBandRate{AgeGroup: band.label, AttritionRate: percentage(atRisk, members)})
	}
	return rates, nil
}

// AttritionByFactors computes the at-risk share of employees exhibiting each
// factor, in declaration order. Factors without members are left out.
func AttritionByFactors(employees []Employee) ([]FactorRate, error) {
	if employees == nil {
		return nil, nilCollection("attrition by factors")
	}
	rates := make([]FactorRate, 0, len(attritionFactors))
	for _, f := range attritionFactors {
		members, atRisk := countAtRisk(employees, f.applies)
		if members == 0 {
			continue
		}
		rates = append(rates, FactorRate{Name: f.name, Rate: percentage(atRisk, members)})
	}
	return rates, nil
}

func countAtRisk(employees []Employee, include func(Employee) bool) (members, atRisk int) {
	for _, e := range employees {
		if !include(e) {
			continue
		}
		members++
		if e.atRisk() {
			atRisk++
		}
	}
	return members, atRisk
}

package analytics

import (
	"github.com/shopspring/decimal"
)

type DepartmentSummary struct {
	Name            string  `json:"name"`
	Keep            int     `json:"keep"`
	LetGo           int     `json:"letGo"`
	AttritionRate   float64 `json:"attritionRate"`
	AvgSatisfaction float64 `json:"avgSatisfaction"`
	AvgPerformance  float64 `json:"avgPerformance"`
	CostSavings     float64 `json:"costSavings"`
}

type JobRoleSummary struct {
	Name          string  `json:"name"`
	Count         int     `json:"count"`
	AttritionRate float64 `json:"attritionRate"`
	AvgSalary     int64   `json:"avgSalary"`
	RiskScore     float64 `json:"riskScore"`
}

type TreemapNode struct {
	Name      string  `json:"name"`
	Size      int     `json:"size"`
	Attrition float64 `json:"attrition"`
}

type group struct {
	key     string
	members []Employee
}

// groupBy 以完全相同的字串分組，依首次出現的順序輸出
func groupBy(employees []Employee, key func(Employee) string) []group {
	index := make(map[string]int)
	groups := make([]group, 0)
	for _, employee := range employees {
		k := key(employee)
		i, exists := index[k]
		if !exists {
			i = len(groups)
			index[k] = i
			groups = append(groups, group{key: k})
		}
		groups[i].members = append(groups[i].members, employee)
	}
	return groups
}

// DepartmentSummaries rolls employees up per department.
func DepartmentSummaries(employees []Employee) ([]DepartmentSummary, error) {
	if employees == nil {
		return nil, nilCollection("department summaries")
	}
	groups := groupBy(employees, func(e Employee) string { return e.Department })
	summaries := make([]DepartmentSummary, 0, len(groups))
	for _, g := range groups {
		var (
			keep, letGo, atRisk       int
			satisfaction, performance float64
			savings                   = decimal.Zero
		)
		for _, e := range g.members {
			if e.RetentionDecision == LetGo {
				letGo++
				savings = savings.Add(annualized(e.MonthlySalary))
			} else {
				keep++
			}
			if e.atRisk() {
				atRisk++
			}
			satisfaction += e.SatisfactionScore
			performance += float64(e.Performance)
		}
		total := float64(len(g.members))
		summaries = append(summaries, DepartmentSummary{
			Name:            g.key,
			Keep:            keep,
			LetGo:           letGo,
			AttritionRate:   percentage(atRisk, len(g.members)),
			AvgSatisfaction: round1(satisfaction / total),
			AvgPerformance:  round1(performance / total),
			CostSavings:     savings.InexactFloat64(),
		})
	}
	return summaries, nil
}

// JobRoleSummaries rolls employees up per job role. RiskScore is the at-risk
// fraction and AttritionRate the same ratio as a one-decimal percentage.
func JobRoleSummaries(employees []Employee) ([]JobRoleSummary, error) {
	if employees == nil {
		return nil, nilCollection("job role summaries")
	}
	groups := groupBy(employees, func(e Employee) string { return e.JobRole })
	summaries := make([]JobRoleSummary, 0, len(groups))
	for _, g := range groups {
		atRisk := 0
		salary := decimal.Zero
		for _, e := range g.members {
			if e.atRisk() {
				atRisk++
			}
			salary = salary.Add(decimal.NewFromFloat(e.MonthlySalary))
		}
		count := len(g.members)
		riskScore := float64(atRisk) / float64(count)
		summaries = append(summaries, JobRoleSummary{
			Name:          g.key,
			Count:         count,
			AttritionRate: round1(riskScore * 100),
			AvgSalary:     salary.Div(decimal.NewFromInt(int64(count))).Round(0).IntPart(),
			RiskScore:     riskScore,
		})
	}
	return summaries, nil
}

// Treemap sizes each department by headcount and colours it by let-go share.
func Treemap(departments []DepartmentSummary) ([]TreemapNode, error) {
	if departments == nil {
		return nil, &InvalidInputError{Operation: "treemap", Reason: "department collection is nil"}
	}
	nodes := make([]TreemapNode, 0, len(departments))
	for _, d := range departments {
		size := d.Keep + d.LetGo
		nodes = append(nodes, TreemapNode{
			Name:      d.Name,
			Size:      size,
			Attrition: percentage(d.LetGo, size),
		})
	}
	return nodes, nil
}

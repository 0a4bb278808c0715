package analytics

// SampleEmployees 資料檔無法載入時使用的預設名單，每次呼叫回傳新的 slice
func SampleEmployees() []Employee {
	return []Employee{
		{ID: 1, Name: "John Smith", Department: "R&D", JobRole: "Research Scientist", Age: 34, Gender: "Male", AttritionRisk: 0.15, RetentionDecision: Keep, Performance: 4, MonthlySalary: 5400, SatisfactionScore: 3.8, WorkLifeBalance: 3, YearsAtCompany: 5, JobLevel: 2, Overtime: "No", DistanceFromHome: 7},
		{ID: 2, Name: "Maria Garcia", Department: "Sales", JobRole: "Sales Executive", Age: 29, Gender: "Female", AttritionRisk: 0.82, RetentionDecision: LetGo, Performance: 2, MonthlySalary: 4800, SatisfactionScore: 2.1, WorkLifeBalance: 1, YearsAtCompany: 2, JobLevel: 1, Overtime: "Yes", DistanceFromHome: 18},
		{ID: 3, Name: "Robert Chen", Department: "HR", JobRole: "Human Resources", Age: 41, Gender: "Male", AttritionRisk: 0.35, RetentionDecision: Keep, Performance: 3, MonthlySalary: 4200, SatisfactionScore: 3.2, WorkLifeBalance: 3, YearsAtCompany: 7, JobLevel: 2, Overtime: "No", DistanceFromHome: 5},
		{ID: 4, Name: "James Wilson", Department: "R&D", JobRole: "Research Director", Age: 48, Gender: "Male", AttritionRisk: 0.08, RetentionDecision: Keep, Performance: 5, MonthlySalary: 12500, SatisfactionScore: 4.1, WorkLifeBalance: 4, YearsAtCompany: 10, JobLevel: 4, Overtime: "No", DistanceFromHome: 3},
		{ID: 5, Name: "Sarah Johnson", Department: "Sales", JobRole: "Sales Representative", Age: 26, Gender: "Female", AttritionRisk: 0.91, RetentionDecision: LetGo, Performance: 2, MonthlySalary: 3200, SatisfactionScore: 1.8, WorkLifeBalance: 1, YearsAtCompany: 1, JobLevel: 1, Overtime: "Yes", DistanceFromHome: 22},
		{ID: 6, Name: "Michael Brown", Department: "R&D", JobRole: "Laboratory Technician", Age: 32, Gender: "Male", AttritionRisk: 0.64, RetentionDecision: LetGo, Performance: 2, MonthlySalary: 3100, SatisfactionScore: 2.3, WorkLifeBalance: 2, YearsAtCompany: 3, JobLevel: 1, Overtime: "Yes", DistanceFromHome: 15},
		{ID: 7, Name: "Jennifer Lee", Department: "R&D", JobRole: "Research Scientist", Age: 36, Gender: "Female", AttritionRisk: 0.22, RetentionDecision: Keep, Performance: 4, MonthlySalary: 5100, SatisfactionScore: 3.5, WorkLifeBalance: 3, YearsAtCompany: 6, JobLevel: 2, Overtime: "No", DistanceFromHome: 9},
		{ID: 8, Name: "David Miller", Department: "Sales", JobRole: "Sales Executive", Age: 31, Gender: "Male", AttritionRisk: 0.75, RetentionDecision: LetGo, Performance: 3, MonthlySalary: 4600, SatisfactionScore: 2.4, WorkLifeBalance: 2, YearsAtCompany: 2, JobLevel: 1, Overtime: "Yes", DistanceFromHome: 12},
		{ID: 9, Name: "Emily Davis", Department: "Finance", JobRole: "Financial Analyst", Age: 28, Gender: "Female", AttritionRisk: 0.31, RetentionDecision: Keep, Performance: 4, MonthlySalary: 4900, SatisfactionScore: 3.3, WorkLifeBalance: 3, YearsAtCompany: 3, JobLevel: 1, Overtime: "No", DistanceFromHome: 11},
		{ID: 10, Name: "Thomas Roberts", Department: "Marketing", JobRole: "Marketing Manager", Age: 42, Gender: "Male", AttritionRisk: 0.18, RetentionDecision: Keep, Performance: 5, MonthlySalary: 8700, SatisfactionScore: 3.9, WorkLifeBalance: 3, YearsAtCompany: 8, JobLevel: 3, Overtime: "No", DistanceFromHome: 6},
	}
}

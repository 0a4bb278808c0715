package dataset

// FieldType 欄位語意型別，載入時依此轉型
type FieldType int

const (
	String FieldType = iota
	Int
	Float
)

func (t FieldType) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	default:
		return "string"
	}
}

// Schema maps a source column name to the type it must coerce to.
type Schema map[string]FieldType

// IBM HR attrition dataset columns consumed by the normalizer.
const (
	ColumnEmployeeNumber           = "EmployeeNumber"
	ColumnName                     = "Name"
	ColumnDepartment               = "Department"
	ColumnJobRole                  = "JobRole"
	ColumnAge                      = "Age"
	ColumnGender                   = "Gender"
	ColumnPerformanceRating        = "PerformanceRating"
	ColumnMonthlyIncome            = "MonthlyIncome"
	ColumnJobSatisfaction          = "JobSatisfaction"
	ColumnEnvironmentSatisfaction  = "EnvironmentSatisfaction"
	ColumnRelationshipSatisfaction = "RelationshipSatisfaction"
	ColumnWorkLifeBalance          = "WorkLifeBalance"
	ColumnYearsAtCompany           = "YearsAtCompany"
	ColumnJobLevel                 = "JobLevel"
	ColumnOverTime                 = "OverTime"
	ColumnDistanceFromHome         = "DistanceFromHome"
)

// HRAttritionSchema returns a fresh copy of the default employee schema.
func HRAttritionSchema() Schema {
	return Schema{
		ColumnEmployeeNumber:           Int,
		ColumnName:                     String,
		ColumnDepartment:               String,
		ColumnJobRole:                  String,
		ColumnAge:                      Int,
		ColumnGender:                   String,
		ColumnPerformanceRating:        Int,
		ColumnMonthlyIncome:            Float,
		ColumnJobSatisfaction:          Float,
		ColumnEnvironmentSatisfaction:  Float,
		ColumnRelationshipSatisfaction: Float,
		ColumnWorkLifeBalance:          Int,
		ColumnYearsAtCompany:           Int,
		ColumnJobLevel:                 Int,
		ColumnOverTime:                 String,
		ColumnDistanceFromHome:         Int,
	}
}

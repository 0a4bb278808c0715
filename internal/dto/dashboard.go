package dto

import (
	"talentpulse/internal/analytics"
	"talentpulse/internal/pkg/request"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// DashboardFilterDto 儀表板共用篩選條件
type DashboardFilterDto struct {
	Department string `form:"department" json:"department,omitempty"`
	JobRole    string `form:"jobRole" json:"jobRole,omitempty"`
	AgeRange   string `form:"ageRange" json:"ageRange,omitempty" binding:"omitempty,oneof=All 18-30 31-40 41-50 51+"`
	Search     string `form:"search" json:"search,omitempty" binding:"max=100"`
}

func (d DashboardFilterDto) Filter() analytics.EmployeeFilter {
	return analytics.EmployeeFilter{
		Department: d.Department,
		JobRole:    d.JobRole,
		AgeRange:   analytics.AgeRange(d.AgeRange),
		Search:     d.Search,
	}
}

// EmployeeQueryDto GET /api/v1/dashboard/employees
type EmployeeQueryDto struct {
	DashboardFilterDto
	Page int `form:"page" json:"page,omitempty" binding:"omitempty,min=1"`
	Size int `form:"size" json:"size,omitempty" binding:"omitempty,min=1,max=500"`
}

func (d *EmployeeQueryDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"AgeRange.oneof": "ageRange must be one of All, 18-30, 31-40, 41-50, 51+",
		"Search.max":     "search must be at most 100 characters",
		"Page.min":       "page must be at least 1",
		"Size.min":       "size must be at least 1",
		"Size.max":       "size must be at most 500",
	}
}

// PageAndSize 套用預設值
func (d *EmployeeQueryDto) PageAndSize() (int, int) {
	page, size := d.Page, d.Size
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	return page, size
}

// MetricsQueryDto GET /api/v1/dashboard/metrics
type MetricsQueryDto struct {
	DashboardFilterDto
	RiskThreshold float64 `form:"riskThreshold" json:"riskThreshold,omitempty" binding:"omitempty,gt=0,lte=1"`
}

func (d *MetricsQueryDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"AgeRange.oneof":    "ageRange must be one of All, 18-30, 31-40, 41-50, 51+",
		"Search.max":        "search must be at most 100 characters",
		"RiskThreshold.gt":  "riskThreshold must be greater than 0",
		"RiskThreshold.lte": "riskThreshold must be at most 1",
	}
}

// EmployeePageDto 員工分頁結果
type EmployeePageDto struct {
	Page      int                  `json:"page"`
	Size      int                  `json:"size"`
	Total     int                  `json:"total"`
	Employees []analytics.Employee `json:"employees"`
}

// DashboardMetricsDto 篩選後的 KPI 與分組摘要
type DashboardMetricsDto struct {
	BundleID    string                        `json:"bundleID"`
	KeyMetrics  analytics.KeyMetrics          `json:"keyMetrics"`
	Departments []analytics.DepartmentSummary `json:"departments"`
	JobRoles    []analytics.JobRoleSummary    `json:"jobRoles"`
}

// RefreshResultDto POST /api/v1/dashboard/refresh
type RefreshResultDto struct {
	BundleID    string `json:"bundleID"`
	Source      string `json:"source"`
	Employees   int    `json:"employees"`
	FieldErrors int    `json:"fieldErrors"`
	LoadError   string `json:"loadError,omitempty"`
	GeneratedAt string `json:"generatedAt"`
}

package handler

import (
	"time"

	"talentpulse/internal/analytics"
	"talentpulse/internal/core"
	"talentpulse/internal/dto"
	"talentpulse/internal/pkg/response"
	"talentpulse/internal/service"
	"talentpulse/internal/telemetry"
	"talentpulse/utils/validate"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	trace            *telemetry.Trace
	dashboardService *service.DashboardService
}

func NewDashboardHandler(trace *telemetry.Trace, dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{trace: trace, dashboardService: dashboardService}
}

// snapshot 讀取目前的 Bundle，失敗時直接中止請求
func (h *DashboardHandler) snapshot(c *gin.Context, pick func(bundle *analytics.Bundle) any) {
	ctx, _, end := h.trace.WithSpan(c)
	bundle, err := h.dashboardService.Snapshot(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	end(nil)
	response.Success(c, pick(bundle), bundle.ID)
}

// Summary 完整儀表板
// @Summary 取得完整儀表板資料
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response{data=analytics.Bundle}
// @Failure 503 {object} response.Response
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	h.snapshot(c, func(bundle *analytics.Bundle) any { return bundle })
}

// Departments 部門摘要
// @Summary 取得部門摘要
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response{data=[]analytics.DepartmentSummary}
// @Failure 503 {object} response.Response
// @Router /api/v1/dashboard/departments [get]
func (h *DashboardHandler) Departments(c *gin.Context) {
	h.snapshot(c, func(bundle *analytics.Bundle) any { return bundle.Departments })
}

// JobRoles 職務摘要
// @Summary 取得職務摘要
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response{data=[]analytics.JobRoleSummary}
// @Failure 503 {object} response.Response
// @Router /api/v1/dashboard/job-roles [get]
func (h *DashboardHandler) JobRoles(c *gin.Context) {
	h.snapshot(c, func(bundle *analytics.Bundle) any { return bundle.JobRoles })
}

// Quarterly 季度趨勢
// @Summary 取得季度趨勢
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response{data=[]analytics.QuarterlyTrendPoint}
// @Failure 503 {object} response.Response
// @Router /api/v1/dashboard/quarterly [get]
func (h *DashboardHandler) Quarterly(c *gin.Context) {
	h.snapshot(c, func(bundle *analytics.Bundle) any { return bundle.QuarterlyTrend })
}

// Treemap
// @Summary 取得部門 treemap 節點
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response{data=[]analytics.TreemapNode}
// @Failure 503 {object} response.Response
// @Router /api/v1/dashboard/treemap [get]
func (h *DashboardHandler) Treemap(c *gin.Context) {
	h.snapshot(c, func(bundle *analytics.Bundle) any { return bundle.Treemap })
}

// Reference 模型與因子參考表
// @Summary 取得模型評估與因子參考表
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response{data=analytics.ReferenceTables}
// @Failure 503 {object} response.Response
// @Router /api/v1/dashboard/reference [get]
func (h *DashboardHandler) Reference(c *gin.Context) {
	h.snapshot(c, func(bundle *analytics.Bundle) any { return bundle.Reference })
}

// Employees 員工列表
// @Summary 篩選並分頁員工列表
// @Tags Dashboard
// @Produce json
// @Param department query string false "部門，All 表示全部"
// @Param jobRole query string false "職務，All 表示全部"
// @Param ageRange query string false "年齡區間" Enums(All, 18-30, 31-40, 41-50, 51+)
// @Param search query string false "姓名 / 部門 / 職務關鍵字"
// @Param page query int false "頁碼" default(1)
// @Param size query int false "每頁筆數" default(50)
// @Success 200 {object} response.Response{data=dto.EmployeePageDto}
// @Failure 400 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /api/v1/dashboard/employees [get]
func (h *DashboardHandler) Employees(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	var req dto.EmployeeQueryDto
	if cause, respErr := validate.BindQueryAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	page, err := h.dashboardService.Employees(ctx, &req)
	end(err)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, page)
}

// Metrics 篩選後的 KPI
// @Summary 依篩選條件重新計算 KPI 與分組摘要
// @Tags Dashboard
// @Produce json
// @Param department query string false "部門，All 表示全部"
// @Param jobRole query string false "職務，All 表示全部"
// @Param ageRange query string false "年齡區間" Enums(All, 18-30, 31-40, 41-50, 51+)
// @Param search query string false "姓名 / 部門 / 職務關鍵字"
// @Param riskThreshold query number false "高風險門檻 (0,1]"
// @Success 200 {object} response.Response{data=dto.DashboardMetricsDto}
// @Failure 400 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /api/v1/dashboard/metrics [get]
func (h *DashboardHandler) Metrics(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	var req dto.MetricsQueryDto
	if cause, respErr := validate.BindQueryAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	metrics, err := h.dashboardService.Metrics(ctx, &req)
	end(err)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, metrics)
}

// Refresh 立即重算
// @Summary 立即重新載入資料並重算儀表板
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response{data=dto.RefreshResultDto}
// @Failure 429 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/v1/dashboard/refresh [post]
func (h *DashboardHandler) Refresh(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	bundle, err := h.dashboardService.Refresh(ctx, core.RefreshTriggerAPI)
	end(err)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, dto.RefreshResultDto{
		BundleID:    bundle.ID,
		Source:      string(bundle.Source),
		Employees:   len(bundle.Employees),
		FieldErrors: bundle.FieldErrors,
		LoadError:   bundle.LoadError,
		GeneratedAt: bundle.GeneratedAt.UTC().Format(time.RFC3339),
	}, "dashboard refreshed")
}

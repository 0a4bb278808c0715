package router

import (
	"talentpulse/internal/handler"
	"talentpulse/internal/middleware"

	"github.com/gin-gonic/gin"
)

type DashboardRouter struct {
	dashboardHandler *handler.DashboardHandler
	rateLimit        *middleware.RateLimit
}

func NewDashboardRouter(
	dashboardHandler *handler.DashboardHandler,
	rateLimit *middleware.RateLimit,
) *DashboardRouter {
	return &DashboardRouter{
		dashboardHandler: dashboardHandler,
		rateLimit:        rateLimit,
	}
}

func (dr *DashboardRouter) RegisterRoutes(r *gin.Engine) {
	dashboard := r.Group("/api/v1/dashboard", dr.rateLimit.Guard())
	{
		dashboard.GET("", dr.dashboardHandler.Summary)
		dashboard.GET("/departments", dr.dashboardHandler.Departments)
		dashboard.GET("/job-roles", dr.dashboardHandler.JobRoles)
		dashboard.GET("/quarterly", dr.dashboardHandler.Quarterly)
		dashboard.GET("/treemap", dr.dashboardHandler.Treemap)
		dashboard.GET("/reference", dr.dashboardHandler.Reference)
		dashboard.GET("/employees", dr.dashboardHandler.Employees)
		dashboard.GET("/metrics", dr.dashboardHandler.Metrics)
		dashboard.POST("/refresh", dr.dashboardHandler.Refresh)
	}
}

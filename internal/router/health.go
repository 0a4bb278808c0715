package router

import (
	"talentpulse/internal/handler"

	"github.com/gin-gonic/gin"
)

type HealthRouter struct {
	healthHandler *handler.HealthHandler
}

func NewHealthRouter(healthHandler *handler.HealthHandler) *HealthRouter {
	return &HealthRouter{healthHandler: healthHandler}
}

// RegisterHealthRoutes /health-check 與 /health/* 都不經過 trace、log 與統一回應包裝
func (hr *HealthRouter) RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health-check", hr.healthHandler.Check)
	probes := r.Group("/health")
	{
		probes.GET("/liveness", hr.healthHandler.Liveness)
		probes.GET("/readiness", hr.healthHandler.Readiness)
	}
}

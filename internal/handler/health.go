package handler

import (
	"net/http"

	"talentpulse/internal/pkg/response"
	"talentpulse/internal/service"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthStatus *service.HealthService
}

func NewHealthHandler(status *service.HealthService) *HealthHandler {
	return &HealthHandler{healthStatus: status}
}

// Liveness
// @Summary 存活檢查
// @Tags Health
// @Success 200 {object} map[string]string
// @Failure 503
// @Router /health/liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	if !h.healthStatus.IsLive() {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Readiness 第一次重算完成前回傳 503；之後附上最近一次重算摘要
// @Summary 就緒檢查
// @Tags Health
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]string
// @Router /health/readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	if !h.healthStatus.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "starting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "ready",
		"lastRefresh": h.healthStatus.LastRefresh(),
	})
}

// Check 負載平衡器使用，固定回傳統一格式
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, response.Response{
		Code:        0,
		Data:        "ok",
		Message:     "success",
		Description: "service is alive",
	})
	c.Abort()
}

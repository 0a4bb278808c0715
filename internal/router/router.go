package router

import (
	"net/http"
	"strings"

	docs "talentpulse/cmd/docs"
	"talentpulse/config"
	"talentpulse/internal/middleware"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var ProviderSet = wire.NewSet(
	NewRouter,
	NewHealthRouter,
	NewDashboardRouter,
)

// 透過依賴注入將 middleware 與各功能路由組成 gin.Engine
func NewRouter(
	config *config.Configuration,
	traceEntry *middleware.TraceEntry,
	recovery *middleware.Recovery,
	cors *middleware.Cors,
	logger *middleware.Logger,
	responseMiddleware *middleware.Response,
	healthRouter *HealthRouter,
	dashboardRouter *DashboardRouter,
) *gin.Engine {

	switch config.App.Env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	if v := config.App.Version; v != "" {
		router.Use(func(c *gin.Context) {
			c.Writer.Header().Set("X-App-Version", v)
			c.Next()
		})
	}
	router.Use(traceEntry.Handler())
	router.Use(logger.LoggerHandler())
	router.Use(cors.CorsHandler())
	router.Use(recovery.ErrorHandler())
	router.Use(responseMiddleware.FormatHandler())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if config.App.SwaggerEnabled {
		router.GET("/swagger/*any", func(c *gin.Context) {
			docs.SwaggerInfo.Host = c.Request.Host

			if config.App.Env == "production" {
				docs.SwaggerInfo.Schemes = []string{"https"}
				docs.SwaggerInfo.BasePath = "/" + strings.Trim(config.App.Name, "/")
			}
		}, ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// 未註冊路由交給 Response middleware 轉成 404 envelope
	router.NoRoute(func(c *gin.Context) {})
	router.NoMethod(func(c *gin.Context) {
		c.Status(http.StatusMethodNotAllowed)
	})

	healthRouter.RegisterHealthRoutes(router)
	dashboardRouter.RegisterRoutes(router)
	pprof.Register(router)
	return router
}

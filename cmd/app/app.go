package main

import (
	"context"
	"errors"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"talentpulse/config"
	"talentpulse/internal/core"
	"talentpulse/internal/cron"
	"talentpulse/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// startupRefreshTimeout 啟動時第一次重算的上限
const startupRefreshTimeout = 2 * time.Minute

type RuntimeInfo struct {
	Env       string        `json:"env"`
	Name      string        `json:"name"`
	Version   string        `json:"version"`
	GoVersion string        `json:"go_version"`
	StartAt   time.Time     `json:"start_at"`
	Uptime    time.Duration `json:"uptime"`
}

type App struct {
	conf             *config.Configuration
	logger           *zap.Logger
	cronSrv          *cron.Cron
	httpSrv          *http.Server
	Router           *gin.Engine
	healthService    *service.HealthService
	dashboardService *service.DashboardService

	startAt time.Time   // 程式啟動時間（非環境變數）
	appInfo RuntimeInfo // 版本/環境快照（來源 = conf.App）
	errCh   chan error
}

func newHttpServer(
	conf *config.Configuration,
	router *gin.Engine,
) *http.Server {
	return &http.Server{
		Addr:              ":" + strconv.FormatUint(uint64(conf.App.Port), 10),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func newApp(
	conf *config.Configuration,
	logger *zap.Logger,
	router *gin.Engine,
	httpSrv *http.Server,
	healthService *service.HealthService,
	dashboardService *service.DashboardService,
	cronSrv *cron.Cron,
) *App {
	startAt := time.Now()
	app := &App{
		conf:             conf,
		logger:           logger,
		Router:           router,
		httpSrv:          httpSrv,
		healthService:    healthService,
		dashboardService: dashboardService,
		cronSrv:          cronSrv,
		startAt:          startAt,
		appInfo: RuntimeInfo{
			Env:       conf.App.Env,
			Name:      conf.App.Name,
			Version:   conf.App.Version,
			GoVersion: runtime.Version(),
			StartAt:   startAt,
		},
		errCh: make(chan error, 1),
	}
	dashboardService.OnRefresh(healthService.MarkRefreshed)

	// /version：回傳 JSON（含 uptime）
	router.GET("/version", func(c *gin.Context) {
		resp := app.appInfo
		resp.Uptime = time.Since(app.startAt)
		c.JSON(http.StatusOK, resp)
	})
	return app
}

func (a *App) Run() error {
	// 1) 啟動時寫入版本/環境資訊
	info := a.appInfo
	a.logger.Info("app runtime info",
		zap.String("env", info.Env),
		zap.String("name", info.Name),
		zap.String("version", info.Version),
		zap.String("go_version", info.GoVersion),
		zap.Time("start_at", info.StartAt),
	)

	// 2) 第一次重算完成後才開放 readiness
	ctx, cancel := context.WithTimeout(context.Background(), startupRefreshTimeout)
	defer cancel()
	if _, err := a.dashboardService.Refresh(ctx, core.RefreshTriggerStartup); err != nil {
		return err
	}
	a.healthService.SetReady(true)

	// 3) 啟動 cron 與資料檔監看
	if err := a.cronSrv.Run(); err != nil {
		return err
	}
	a.logger.Info("cron server started")

	// 4) 啟動 HTTP server
	go func() {
		a.logger.Info("http server listening", zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- err
		}
	}()
	return nil
}

// Err HTTP server 非正常結束時送出錯誤
func (a *App) Err() <-chan error {
	return a.errCh
}

func (a *App) Close(ctx context.Context) error {
	if a.healthService != nil {
		a.healthService.SetReady(false)
	}

	var errs []error
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
		a.logger.Info("http server has been stop")
	}
	if a.cronSrv != nil {
		if err := a.cronSrv.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
		a.logger.Info("cron server has been stop")
	}
	return errors.Join(errs...)
}

func (a *App) Stop(ctx context.Context) error {
	return a.Close(ctx)
}

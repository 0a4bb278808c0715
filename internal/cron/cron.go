package cron

import (
	"context"
	"time"

	"talentpulse/config"
	"talentpulse/internal/analytics"
	"talentpulse/internal/core"
	"talentpulse/internal/service"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron, NewDatasetWatcher)

// refreshTimeout 單次排程 / 監看觸發的重算上限
const refreshTimeout = 2 * time.Minute

// Refresher 由 service.DashboardService 實作
type Refresher interface {
	Refresh(ctx context.Context, trigger core.RefreshTrigger) (*analytics.Bundle, error)
}

type Cron struct {
	logger    *zap.Logger
	server    *cron.Cron
	spec      string
	refresher Refresher
	watcher   *DatasetWatcher
}

// NewCron .
func NewCron(
	logger *zap.Logger,
	conf *config.Configuration,
	dashboardService *service.DashboardService,
	watcher *DatasetWatcher,
) *Cron {
	return newCron(logger, conf.Dataset.ReloadCron, dashboardService, watcher)
}

func newCron(logger *zap.Logger, spec string, refresher Refresher, watcher *DatasetWatcher) *Cron {
	cronLogger := zapCronLogger{logger: logger}
	server := cron.New(
		cron.WithSeconds(),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	return &Cron{
		logger:    logger,
		server:    server,
		spec:      spec,
		refresher: refresher,
		watcher:   watcher,
	}
}

// zapCronLogger 把 robfig/cron 的 key/value log 轉給 zap
type zapCronLogger struct {
	logger *zap.Logger
}

func (l zapCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Debugw(msg, keysAndValues...)
}

func (l zapCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}

func (c *Cron) Run() error {
	if c.spec != "" {
		if _, err := c.server.AddFunc(c.spec, c.refreshJob); err != nil {
			return err
		}
		c.logger.Info("dataset refresh scheduled", zap.String("spec", c.spec))
	}
	c.server.Start()

	if c.watcher != nil {
		if err := c.watcher.Start(); err != nil {
			c.server.Stop()
			return err
		}
	}
	return nil
}

func (c *Cron) refreshJob() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()
	if _, err := c.refresher.Refresh(ctx, core.RefreshTriggerCron); err != nil {
		c.logger.Error("scheduled refresh failed", zap.Error(err))
	}
}

func (c *Cron) Stop(ctx context.Context) error {
	if c.watcher != nil {
		c.watcher.Stop()
	}
	// 等待執行中的重算結束或 ctx 逾時
	select {
	case <-c.server.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

package client

import (
	"context"
	"time"

	"talentpulse/config"

	"github.com/fluent/fluent-logger-golang/fluent"
	"go.uber.org/zap"
)

const defaultTagPrefix = "talentpulse"

// FluentdPoster 供 repository 使用，方便測試替換
type FluentdPoster interface {
	Post(ctx context.Context, tag string, message any) error
	Close() error
}

// FluentdClient implements FluentdPoster using fluent-logger-golang.
type FluentdClient struct {
	client *fluent.Fluent
}

// NewFluentdClient 建立 forward client；FLUENTD.ENABLED=false 時回傳 NoopClient
func NewFluentdClient(logger *zap.Logger, config *config.Configuration) (FluentdPoster, func(), error) {
	if !config.Fluentd.Enabled {
		logger.Info("Fluentd disabled")
		return NoopClient{}, func() {}, nil
	}
	prefix := defaultTagPrefix
	if config.Fluentd.TagPrefix != "" {
		prefix = config.Fluentd.TagPrefix
	}
	var timeout time.Duration
	if config.Fluentd.Timeout > 0 {
		timeout = time.Duration(config.Fluentd.Timeout) * time.Millisecond
	}

	logClient, err := fluent.New(fluent.Config{
		FluentHost:  config.Fluentd.Host,
		FluentPort:  config.Fluentd.Port,
		Timeout:     timeout,
		TagPrefix:   prefix,
		Async:       true,
		BufferLimit: config.Fluentd.BufferLimit,
		MaxRetry:    config.Fluentd.MaxRetry,
	})
	if err != nil {
		logger.Error("failed to create fluentd client", zap.Error(err))
		return nil, nil, err
	}
	fluentdClient := &FluentdClient{client: logClient}

	cleanup := func() {
		logger.Info("closing the Fluentd resources")
		if err := fluentdClient.Close(); err != nil {
			logger.Error("failed to close Fluentd client", zap.Error(err))
		}
	}
	return fluentdClient, cleanup, nil
}

func (c *FluentdClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Post sends a record to Fluentd; the tag prefix is added by the client.
// fluent-logger-golang 不支援 context 取消，ctx 只用來維持介面一致
func (c *FluentdClient) Post(ctx context.Context, tag string, message any) error {
	return c.client.Post(tag, message)
}

// NoopClient disabled mode
type NoopClient struct{}

func (NoopClient) Post(ctx context.Context, tag string, message any) error { return nil }
func (NoopClient) Close() error                                            { return nil }

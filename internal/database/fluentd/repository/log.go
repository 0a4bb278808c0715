package repository

import (
	"context"
	"time"

	"talentpulse/config"
	"talentpulse/internal/core"
	"talentpulse/internal/database/client"
	"talentpulse/internal/database/fluentd/model"

	"github.com/goccy/go-json"
)

// LogRepository 統一負責發送 Request / Response / Refresh Log 到 Fluentd
type LogRepository struct {
	fluentdClient client.FluentdPoster
	version       string
	projectName   string
	now           func() time.Time
}

func NewLogRepository(config *config.Configuration, fluentdClient client.FluentdPoster) *LogRepository {
	version := "1.0.0"
	if config.App.Version != "" {
		version = config.App.Version
	}
	return &LogRepository{
		fluentdClient: fluentdClient,
		version:       version,
		projectName:   config.App.Name,
		now:           time.Now,
	}
}

func (repository *LogRepository) LogRequest(ctx context.Context, req model.RequestLog) error {
	if req.LoggedAt == "" {
		req.LoggedAt = repository.timestamp()
	}
	if req.Version == "" {
		req.Version = repository.version
	}
	if req.ProjectName == "" {
		req.ProjectName = repository.projectName
	}
	return repository.post(ctx, core.FluentdRequest, req)
}

func (repository *LogRepository) LogResponse(ctx context.Context, resp model.ResponseLog) error {
	if resp.LoggedAt == "" {
		resp.LoggedAt = repository.timestamp()
	}
	if resp.Version == "" {
		resp.Version = repository.version
	}
	if resp.ProjectName == "" {
		resp.ProjectName = repository.projectName
	}
	return repository.post(ctx, core.FluentdResponse, resp)
}

func (repository *LogRepository) LogRefresh(ctx context.Context, refresh model.RefreshLog) error {
	if refresh.LoggedAt == "" {
		refresh.LoggedAt = repository.timestamp()
	}
	if refresh.Version == "" {
		refresh.Version = repository.version
	}
	if refresh.ProjectName == "" {
		refresh.ProjectName = repository.projectName
	}
	return repository.post(ctx, core.FluentdRefresh, refresh)
}

func (repository *LogRepository) timestamp() string {
	return repository.now().UTC().Format(core.FluentdTimeLayout)
}

// post fluent-logger 以 msgpack 編碼 map 最穩定，先經 json 轉成 map[string]any
func (repository *LogRepository) post(ctx context.Context, tag core.FluentdSubTag, record any) error {
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	var fluentdMessage map[string]any
	if err := json.Unmarshal(b, &fluentdMessage); err != nil {
		return err
	}
	return repository.fluentdClient.Post(ctx, string(tag), fluentdMessage)
}

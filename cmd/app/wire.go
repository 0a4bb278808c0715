//go:build wireinject
// +build wireinject

package main

import (
	"talentpulse/config"
	"talentpulse/internal/command"
	"talentpulse/internal/cron"
	"talentpulse/internal/database"
	"talentpulse/internal/handler"
	"talentpulse/internal/middleware"
	"talentpulse/internal/prediction"
	"talentpulse/internal/router"
	"talentpulse/internal/service"
	"talentpulse/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			prediction.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			prediction.ProviderSet,
			service.ProviderSet,
			telemetry.ProviderSet,
			command.ProviderSet,
		),
	)
}

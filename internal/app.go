package internal

import (
	"context"

	"github.com/capcom6/go-infra-fx/validator"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/healthfx"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/repodeck/repodeck/internal/classify"
	"github.com/repodeck/repodeck/internal/config"
	"github.com/repodeck/repodeck/internal/gitcmd"
	"github.com/repodeck/repodeck/internal/projects"
	"github.com/repodeck/repodeck/internal/server"
)

func Run(configPath string) {
	fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		healthfx.Module(),
		fiberfx.Module(),
		validator.Module,
		//
		// APP MODULES
		config.Module(configPath),
		server.Module(),
		//
		// BUSINESS MODULES
		fx.Provide(func() healthfx.Version { return healthfx.Version{Version: "0.1.0", ReleaseID: 1} }),
		gitcmd.Module(),
		classify.Module(),
		projects.Module(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("🚀 repodeck dashboard starting up")
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("🛑 repodeck dashboard shutting down gracefully")
					return nil
				},
			})
		}),
	).Run()
}

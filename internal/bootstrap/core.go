package bootstrap

import (
	"context"
	"log/slog"
	"os"

	"github.com/vegansindhu/admin-upload/internal/config"

	nova_config_loader "github.com/init-pkg/nova/tools/config-loader"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
)

func coreOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			newConfig,
			newLogger,
			newFiberApp,
		),
		fx.Invoke(startServer),
	)
}

func newConfig() *config.Config {
	var cfg = nova_config_loader.MustLoad[config.Config]()
	return &cfg
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func newFiberApp() *fiber.App {
	return fiber.New()
}

func startServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config, log *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(":" + cfg.App.Port); err != nil {
					log.Error("http server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

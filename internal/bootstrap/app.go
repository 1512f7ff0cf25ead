package bootstrap

import (
	pivot_module "github.com/vegansindhu/admin-upload/internal/app/pivot"
	pivot_http_handler "github.com/vegansindhu/admin-upload/internal/app/pivot/transports/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
)

func appOptions() fx.Option {
	return fx.Options(
		pivot_module.Register(),

		fx.Invoke(func(app *fiber.App, handler *pivot_http_handler.PivotHttpHandler) {
			handler.Register(app)
		}),
	)
}

package pivot_module

import (
	"github.com/vegansindhu/admin-upload/domain/app"
	pivot_service "github.com/vegansindhu/admin-upload/internal/app/pivot/service"
	pivot_http_handler "github.com/vegansindhu/admin-upload/internal/app/pivot/transports/http"

	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(pivot_service.New, fx.As(new(app.PivotService))),
		pivot_http_handler.New,
	)
}

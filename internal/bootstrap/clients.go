package bootstrap

import (
	"github.com/vegansindhu/admin-upload/domain/app"
	github_client "github.com/vegansindhu/admin-upload/internal/clients/github"

	"go.uber.org/fx"
)

func clientsOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(github_client.New, fx.As(new(app.Publisher))),
		),
	)
}

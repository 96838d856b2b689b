package commerce

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/ordertrack/internal/config"
	"github.com/polkiloo/ordertrack/internal/domain/repository"
)

// Module exposes the commerce client and the repositories it backs.
var Module = fx.Options(
	fx.Provide(newClient),
	fx.Provide(
		func(c Client) repository.OrderRepository { return c },
		func(c Client) repository.CatalogRepository { return c },
	),
)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(Options{
		BaseURL:    p.Config.CommerceBaseURL,
		ShopDomain: p.Config.ShopDomain,
		APIVersion: p.Config.APIVersion,
		Token:      p.Config.AccessToken,
		Timeout:    p.Config.RequestTimeout,
	}, p.Logger)
}

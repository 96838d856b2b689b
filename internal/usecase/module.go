package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/ordertrack/internal/config"
	"github.com/polkiloo/ordertrack/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newProductClassifier,
	newLookupUseCase,
	NewNotificationUseCase,
)

type classifierParams struct {
	fx.In

	Catalog repository.CatalogRepository
	Config  *config.Config
	Logger  *slog.Logger
}

func newProductClassifier(p classifierParams) *ProductClassifier {
	return NewProductClassifier(p.Catalog, p.Config.ClassifyConcurrency, p.Logger)
}

type lookupParams struct {
	fx.In

	Orders     repository.OrderRepository
	Classifier *ProductClassifier
	Config     *config.Config
	Logger     *slog.Logger
}

func newLookupUseCase(p lookupParams) *LookupUseCase {
	return NewLookupUseCase(p.Orders, p.Classifier, p.Config.AllowEmaillessLookup, p.Logger)
}

package repository

import (
	"context"

	"github.com/polkiloo/ordertrack/internal/domain/model"
)

// CatalogRepository describes read access to products and their collections.
type CatalogRepository interface {
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ProductCollections(ctx context.Context, productID int64) ([]model.Collection, error)
}

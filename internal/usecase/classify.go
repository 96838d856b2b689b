package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/domain/repository"
)

var errMatched = errors.New("matched")

// ProductClassifier decides whether an order belongs to the Zip & Go line.
type ProductClassifier struct {
	catalog     repository.CatalogRepository
	concurrency int
	logger      *slog.Logger
}

// NewProductClassifier constructs ProductClassifier. Concurrency bounds the
// number of in-flight catalog requests; values below one mean sequential.
func NewProductClassifier(catalog repository.CatalogRepository, concurrency int, logger *slog.Logger) *ProductClassifier {
	if concurrency < 1 {
		concurrency = 1
	}
	return &ProductClassifier{catalog: catalog, concurrency: concurrency, logger: logger}
}

// IsZipAndGo reports whether text mentions both "zip" and "go", ignoring case.
func IsZipAndGo(text string) bool {
	text = strings.ToLower(text)
	return strings.Contains(text, "zip") && strings.Contains(text, "go")
}

// Classify checks line item names first, then product metadata, then product
// collections. Each phase completes before the next one starts.
func (c *ProductClassifier) Classify(ctx context.Context, items []model.LineItem) bool {
	for _, item := range items {
		if IsZipAndGo(item.Name) || IsZipAndGo(item.Title) {
			return true
		}
	}

	ids := productIDs(items)
	if len(ids) == 0 {
		return false
	}

	if c.anyProduct(ctx, ids, c.productMatches) {
		return true
	}
	return c.anyProduct(ctx, ids, c.collectionsMatch)
}

func (c *ProductClassifier) productMatches(ctx context.Context, id int64) bool {
	product, err := c.catalog.GetProduct(ctx, id)
	if err != nil {
		if ctx.Err() == nil {
			c.logger.Warn("product lookup failed", slog.Int64("product_id", id), slog.Any("error", err))
		}
		return false
	}
	return IsZipAndGo(product.ProductType) || IsZipAndGo(product.Title)
}

func (c *ProductClassifier) collectionsMatch(ctx context.Context, id int64) bool {
	collections, err := c.catalog.ProductCollections(ctx, id)
	if err != nil {
		if ctx.Err() == nil {
			c.logger.Warn("collections lookup failed", slog.Int64("product_id", id), slog.Any("error", err))
		}
		return false
	}
	for _, col := range collections {
		if IsZipAndGo(col.Title) {
			return true
		}
	}
	return false
}

// anyProduct runs check for every id with bounded concurrency and stops
// scheduling new checks after the first positive one.
func (c *ProductClassifier) anyProduct(ctx context.Context, ids []int64, check func(context.Context, int64) bool) bool {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for _, id := range ids {
		id := id
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			if check(gctx, id) {
				return errMatched
			}
			return nil
		})
	}

	return errors.Is(g.Wait(), errMatched)
}

func productIDs(items []model.LineItem) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if item.ProductID == nil {
			continue
		}
		if _, ok := seen[*item.ProductID]; ok {
			continue
		}
		seen[*item.ProductID] = struct{}{}
		ids = append(ids, *item.ProductID)
	}
	return ids
}

package repository

import (
	"context"
	"time"

	"github.com/polkiloo/ordertrack/internal/domain/model"
)

// OrderQuery filters the upstream order listing. Zero fields are omitted.
type OrderQuery struct {
	Name              string
	Status            string
	FulfillmentStatus string
	CreatedAtMin      time.Time
	Limit             int
	Fields            []string
}

// OrderRepository describes read access to upstream orders.
type OrderRepository interface {
	ListOrders(ctx context.Context, query OrderQuery) ([]model.Order, error)
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
}

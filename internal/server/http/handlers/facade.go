package handlers

import (
	"context"

	"github.com/polkiloo/ordertrack/internal/domain/model"
)

// LookupFacade finds orders for customers.
type LookupFacade interface {
	LookupOrder(ctx context.Context, orderNumber, email string) (*model.TrackedOrder, error)
}

// NotifyFacade authorizes and runs reminder batches.
type NotifyFacade interface {
	AuthorizeNotify(key string) error
	RunNotifications(ctx context.Context) (*model.NotificationReport, error)
}

// TrackingFacade aggregates the full set of operations used across handlers.
type TrackingFacade interface {
	LookupFacade
	NotifyFacade
}

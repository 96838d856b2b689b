package test

import (
	"context"
	"time"

	"github.com/polkiloo/ordertrack/internal/domain/model"
)

// TrackingFacadeStub provides controllable behaviour for lookup and notify endpoints.
type TrackingFacadeStub struct {
	LookupFn    func(context.Context, string, string) (*model.TrackedOrder, error)
	AuthorizeFn func(string) error
	RunFn       func(context.Context) (*model.NotificationReport, error)
}

// LookupOrder delegates to LookupFn or returns a received order.
func (s TrackingFacadeStub) LookupOrder(ctx context.Context, orderNumber, email string) (*model.TrackedOrder, error) {
	if s.LookupFn != nil {
		return s.LookupFn(ctx, orderNumber, email)
	}
	return &model.TrackedOrder{
		Order:  model.Order{ID: 1, Name: "#" + orderNumber, Email: email, CreatedAt: time.Unix(0, 0).UTC()},
		Status: model.OrderStatus{Stage: model.StageReceived, Message: "Order Received"},
	}, nil
}

// AuthorizeNotify accepts every key unless AuthorizeFn says otherwise.
func (s TrackingFacadeStub) AuthorizeNotify(key string) error {
	if s.AuthorizeFn != nil {
		return s.AuthorizeFn(key)
	}
	return nil
}

// RunNotifications delegates to RunFn or returns an empty report.
func (s TrackingFacadeStub) RunNotifications(ctx context.Context) (*model.NotificationReport, error) {
	if s.RunFn != nil {
		return s.RunFn(ctx)
	}
	return &model.NotificationReport{RunID: "run"}, nil
}

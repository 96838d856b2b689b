package app

import (
	"context"

	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/pkg/auth"
	"github.com/polkiloo/ordertrack/internal/usecase"
)

type TrackingFacade struct {
	lookup   *usecase.LookupUseCase
	notify   *usecase.NotificationUseCase
	verifier auth.KeyVerifier
}

func NewTrackingFacade(lookup *usecase.LookupUseCase, notify *usecase.NotificationUseCase, verifier auth.KeyVerifier) *TrackingFacade {
	return &TrackingFacade{lookup: lookup, notify: notify, verifier: verifier}
}

func (f *TrackingFacade) LookupOrder(ctx context.Context, orderNumber, email string) (*model.TrackedOrder, error) {
	return f.lookup.Lookup(ctx, orderNumber, email)
}

// AuthorizeNotify returns ErrUnauthorized unless key matches the configured secret.
func (f *TrackingFacade) AuthorizeNotify(key string) error {
	if !f.verifier.Verify(key) {
		return domainErrors.ErrUnauthorized
	}
	return nil
}

func (f *TrackingFacade) RunNotifications(ctx context.Context) (*model.NotificationReport, error) {
	return f.notify.Run(ctx)
}

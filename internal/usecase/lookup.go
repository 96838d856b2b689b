package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/domain/repository"
)

const lookupLimit = 50

var lookupFields = []string{
	"id", "name", "email", "customer", "total_price", "currency", "created_at",
	"financial_status", "fulfillment_status", "line_items", "shipping_address", "fulfillments",
}

// LookupUseCase finds an order by number and email and derives its status.
type LookupUseCase struct {
	orders         repository.OrderRepository
	classifier     *ProductClassifier
	allowEmailless bool
	logger         *slog.Logger
	now            func() time.Time
}

// NewLookupUseCase constructs LookupUseCase. When allowEmailless is set an
// order with no email on file matches any supplied address.
func NewLookupUseCase(orders repository.OrderRepository, classifier *ProductClassifier, allowEmailless bool, logger *slog.Logger) *LookupUseCase {
	return &LookupUseCase{
		orders:         orders,
		classifier:     classifier,
		allowEmailless: allowEmailless,
		logger:         logger,
		now:            time.Now,
	}
}

// Lookup returns the tracked order or ErrOrderNotFound.
func (u *LookupUseCase) Lookup(ctx context.Context, orderNumber, email string) (*model.TrackedOrder, error) {
	number := NormalizeOrderNumber(orderNumber)
	if number == "" || NormalizeEmail(email) == "" {
		return nil, domainErrors.ErrInvalidLookup
	}

	candidates, err := u.candidates(ctx, number)
	if err != nil {
		return nil, err
	}

	order, ok := u.match(candidates, email)
	if !ok {
		return nil, domainErrors.ErrOrderNotFound
	}

	days := DaysSince(order.CreatedAt, u.now())
	distinguished := u.classifier.Classify(ctx, order.LineItems)

	return &model.TrackedOrder{
		Order:          order,
		DaysSinceOrder: days,
		Distinguished:  distinguished,
		Status:         DeriveStatus(order, days, distinguished),
	}, nil
}

func (u *LookupUseCase) candidates(ctx context.Context, number string) ([]model.Order, error) {
	orders, err := u.orders.ListOrders(ctx, repository.OrderQuery{
		Name:   number,
		Status: "any",
		Limit:  lookupLimit,
		Fields: lookupFields,
	})
	if err != nil {
		return nil, err
	}
	if len(orders) > 0 || !isNumeric(number) {
		return orders, nil
	}

	id, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		return nil, nil
	}
	order, err := u.orders.GetOrder(ctx, id)
	if err != nil {
		u.logger.Warn("order lookup by id failed", slog.Int64("order_id", id), slog.Any("error", err))
		return nil, nil
	}
	return []model.Order{*order}, nil
}

func (u *LookupUseCase) match(candidates []model.Order, email string) (model.Order, bool) {
	for _, order := range candidates {
		if EmailMatches(order, email) {
			return order, true
		}
	}

	if !u.allowEmailless {
		return model.Order{}, false
	}
	for _, order := range candidates {
		if HasNoEmail(order) {
			u.logger.Warn("order matched without email verification", slog.String("order", order.Name))
			return order, true
		}
	}
	return model.Order{}, false
}

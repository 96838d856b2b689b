package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/domain/repository"
)

const (
	// ReminderCadence is the interval in days between reminders for an order.
	ReminderCadence = 3
	reminderWindow  = 30 * day
	reminderLimit   = 250
)

var reminderFields = []string{
	"id", "name", "email", "customer", "created_at", "financial_status", "fulfillment_status", "line_items",
}

// ReminderCopy is the status line and badge color shown in a reminder.
type ReminderCopy struct {
	Message string
	Color   string
}

// ReminderCopyFor picks reminder wording by order age.
func ReminderCopyFor(days int) ReminderCopy {
	switch {
	case days <= 5:
		return ReminderCopy{Message: "Your order has been received and is being prepared for production.", Color: "#10B981"}
	case days <= 10:
		return ReminderCopy{Message: "Your order is currently in production. Our skilled artisans are working on your beautiful pieces.", Color: "#F59E0B"}
	case days <= 15:
		return ReminderCopy{Message: "Your order is in the stitching phase. Every detail is being carefully crafted.", Color: "#8B5CF6"}
	case days <= 20:
		return ReminderCopy{Message: "Your order is in the finishing and packing stage. Almost ready!", Color: "#EF4444"}
	default:
		return ReminderCopy{Message: "Your order is in the final stages and will be dispatched soon.", Color: "#DC2626"}
	}
}

// IsEligible reports whether an order of the given age is due a reminder.
func IsEligible(order model.Order, days int) bool {
	return days >= ReminderCadence && days%ReminderCadence == 0 && strings.TrimSpace(order.Email) != ""
}

// NotificationUseCase scans unfulfilled orders and sends reminders.
type NotificationUseCase struct {
	orders repository.OrderRepository
	sender repository.ReminderSender
	logger *slog.Logger
	now    func() time.Time
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(orders repository.OrderRepository, sender repository.ReminderSender, logger *slog.Logger) *NotificationUseCase {
	return &NotificationUseCase{orders: orders, sender: sender, logger: logger, now: time.Now}
}

// Run sends a reminder to every eligible order. Send failures are collected
// in the report; a failure to list orders aborts the run.
func (u *NotificationUseCase) Run(ctx context.Context) (*model.NotificationReport, error) {
	now := u.now()
	report := &model.NotificationReport{RunID: uuid.NewString()}
	logger := u.logger.With(slog.String("run_id", report.RunID))

	orders, err := u.orders.ListOrders(ctx, repository.OrderQuery{
		Status:            "any",
		FulfillmentStatus: "unfulfilled",
		CreatedAtMin:      now.Add(-reminderWindow),
		Limit:             reminderLimit,
		Fields:            reminderFields,
	})
	if err != nil {
		return nil, fmt.Errorf("list unfulfilled orders: %w", err)
	}
	report.TotalOrders = len(orders)

	for _, order := range orders {
		days := DaysSince(order.CreatedAt, now)
		if !IsEligible(order, days) {
			continue
		}
		report.EligibleOrders++
		to := strings.TrimSpace(order.Email)

		wording := ReminderCopyFor(days)
		err := u.sender.SendReminder(ctx, model.Reminder{
			To:            to,
			OrderName:     order.Name,
			OrderDate:     order.CreatedAt,
			Days:          days,
			Items:         order.LineItems,
			StatusMessage: wording.Message,
			StatusColor:   wording.Color,
		})
		if err != nil {
			logger.Error("reminder failed", slog.String("order", order.Name), slog.Any("error", err))
			report.Failures = append(report.Failures, model.NotificationFailure{
				Order: order.Name,
				Email: to,
				Error: err.Error(),
			})
			continue
		}
		report.EmailsSent++
	}

	logger.Info("reminder run finished",
		slog.Int("total_orders", report.TotalOrders),
		slog.Int("eligible_orders", report.EligibleOrders),
		slog.Int("emails_sent", report.EmailsSent),
		slog.Int("errors", len(report.Failures)),
	)
	return report, nil
}

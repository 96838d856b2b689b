package repository

import (
	"context"

	"github.com/polkiloo/ordertrack/internal/domain/model"
)

// ReminderSender delivers reminder emails.
type ReminderSender interface {
	SendReminder(ctx context.Context, reminder model.Reminder) error
}

package mailer

import (
	"go.uber.org/fx"

	"github.com/polkiloo/ordertrack/internal/domain/repository"
)

// Module provides the reminder sender.
var Module = fx.Options(
	fx.Provide(New),
	fx.Provide(func(m *SMTPMailer) repository.ReminderSender { return m }),
)

package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/polkiloo/ordertrack/internal/config"
	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
	"github.com/polkiloo/ordertrack/internal/domain/model"
)

//go:embed templates/reminder.html
var templateFS embed.FS

const orderDateLayout = "January 2, 2006"

// SMTPMailer renders reminders and delivers them over SMTP.
type SMTPMailer struct {
	from        string
	storeName   string
	trackingURL string
	tmpl        *template.Template
	send        func(ctx context.Context, msg *mail.Msg) error
	logger      *slog.Logger
}

type reminderView struct {
	StoreName     string
	TrackingURL   string
	OrderName     string
	OrderDate     string
	Days          int
	Items         []model.LineItem
	StatusMessage string
	StatusColor   string
}

// New builds a mailer from configuration. When SMTP settings are incomplete
// the mailer is still created but every send fails with ErrMailerDisabled.
func New(cfg *config.Config, logger *slog.Logger) (*SMTPMailer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/reminder.html")
	if err != nil {
		return nil, fmt.Errorf("parse reminder template: %w", err)
	}

	m := &SMTPMailer{
		from:        cfg.Email.From,
		storeName:   cfg.StoreName,
		trackingURL: cfg.TrackingURL,
		tmpl:        tmpl,
		logger:      logger,
	}

	if !cfg.Email.Enabled() {
		return m, nil
	}

	client, err := mail.NewClient(cfg.Email.Host, clientOptions(cfg.Email, cfg.RequestTimeout)...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	m.send = func(ctx context.Context, msg *mail.Msg) error {
		return client.DialAndSendWithContext(ctx, msg)
	}
	return m, nil
}

// clientOptions keeps the configured port as is. Implicit TLS ports dial
// over TLS directly; all others require STARTTLS.
func clientOptions(e config.EmailConfig, timeout time.Duration) []mail.Option {
	opts := []mail.Option{
		mail.WithPort(e.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(e.Username),
		mail.WithPassword(e.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	}
	if e.ImplicitTLS() {
		opts = append(opts, mail.WithSSL())
	}
	if timeout > 0 {
		opts = append(opts, mail.WithTimeout(timeout))
	}
	return opts
}

// Subject returns the subject line used for an order's reminder.
func (m *SMTPMailer) Subject(orderName string) string {
	return fmt.Sprintf("Order Update: %s - %s", orderName, m.storeName)
}

// Render produces the HTML body for a reminder.
func (m *SMTPMailer) Render(r model.Reminder) (string, error) {
	view := reminderView{
		StoreName:     m.storeName,
		TrackingURL:   m.trackingURL,
		OrderName:     r.OrderName,
		OrderDate:     r.OrderDate.Format(orderDateLayout),
		Days:          r.Days,
		Items:         r.Items,
		StatusMessage: r.StatusMessage,
		StatusColor:   r.StatusColor,
	}

	var buf bytes.Buffer
	if err := m.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render reminder: %w", err)
	}
	return buf.String(), nil
}

// SendReminder renders and delivers a single reminder.
func (m *SMTPMailer) SendReminder(ctx context.Context, r model.Reminder) error {
	if m.send == nil {
		return domainErrors.ErrMailerDisabled
	}

	body, err := m.Render(r)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(r.To); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(m.Subject(r.OrderName))
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err := m.send(ctx, msg); err != nil {
		return err
	}

	m.logger.Info("reminder sent", slog.String("order", r.OrderName), slog.String("email", r.To))
	return nil
}

package model

import "time"

// NotificationFailure records a reminder that could not be delivered.
type NotificationFailure struct {
	Order string
	Email string
	Error string
}

// NotificationReport summarizes a reminder run.
type NotificationReport struct {
	RunID          string
	TotalOrders    int
	EligibleOrders int
	EmailsSent     int
	Failures       []NotificationFailure
}

// Reminder is the content of a single status-update email.
type Reminder struct {
	To            string
	OrderName     string
	OrderDate     time.Time
	Days          int
	Items         []LineItem
	StatusMessage string
	StatusColor   string
}

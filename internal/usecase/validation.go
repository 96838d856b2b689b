package usecase

import (
	"strings"

	"github.com/polkiloo/ordertrack/internal/domain/model"
)

// NormalizeOrderNumber trims whitespace and a single leading '#'.
func NormalizeOrderNumber(number string) string {
	number = strings.TrimSpace(number)
	return strings.TrimPrefix(number, "#")
}

// NormalizeEmail lowercases and trims an address for comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailMatches reports whether the order's direct or customer email equals
// the supplied one, ignoring case and surrounding whitespace.
func EmailMatches(order model.Order, email string) bool {
	want := NormalizeEmail(email)
	if want == "" {
		return false
	}
	if NormalizeEmail(order.Email) == want {
		return true
	}
	return order.Customer != nil && NormalizeEmail(order.Customer.Email) == want
}

// HasNoEmail reports whether neither the order nor its customer carries an email.
func HasNoEmail(order model.Order) bool {
	if strings.TrimSpace(order.Email) != "" {
		return false
	}
	return order.Customer == nil || strings.TrimSpace(order.Customer.Email) == ""
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

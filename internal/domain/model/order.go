package model

import "time"

// FinancialStatus mirrors the payment state reported by the commerce platform.
type FinancialStatus string

const (
	FinancialStatusPending           FinancialStatus = "pending"
	FinancialStatusAuthorized        FinancialStatus = "authorized"
	FinancialStatusPartiallyPaid     FinancialStatus = "partially_paid"
	FinancialStatusPaid              FinancialStatus = "paid"
	FinancialStatusPartiallyRefunded FinancialStatus = "partially_refunded"
	FinancialStatusRefunded          FinancialStatus = "refunded"
	FinancialStatusVoided            FinancialStatus = "voided"
)

// FulfillmentStatus mirrors shipment progress. The zero value means the
// platform reported null (nothing shipped yet).
type FulfillmentStatus string

const (
	FulfillmentStatusNone      FulfillmentStatus = ""
	FulfillmentStatusPartial   FulfillmentStatus = "partial"
	FulfillmentStatusFulfilled FulfillmentStatus = "fulfilled"
)

// Order is a read-only snapshot of an upstream order.
type Order struct {
	ID                int64
	Name              string
	Email             string
	Customer          *Customer
	TotalPrice        string
	Currency          string
	CreatedAt         time.Time
	FinancialStatus   FinancialStatus
	FulfillmentStatus FulfillmentStatus
	LineItems         []LineItem
	ShippingAddress   *Address
	Fulfillments      []Fulfillment
}

// ContactEmail returns the order email, falling back to the customer's.
func (o Order) ContactEmail() string {
	if o.Email != "" {
		return o.Email
	}
	if o.Customer != nil {
		return o.Customer.Email
	}
	return ""
}

// Customer is the buyer account attached to an order.
type Customer struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
}

// LineItem is a single purchased product line.
type LineItem struct {
	ID           int64
	Name         string
	Title        string
	Quantity     int
	Price        string
	VariantTitle string
	ProductID    *int64
	Image        *Image
}

// Image references a product picture.
type Image struct {
	Src string
}

// Address is a postal shipping address.
type Address struct {
	FirstName string
	LastName  string
	Address1  string
	Address2  string
	City      string
	Province  string
	Zip       string
	Country   string
	Phone     string
}

// Fulfillment describes a shipment created for an order.
type Fulfillment struct {
	ID              int64
	Status          string
	TrackingNumber  string
	TrackingCompany string
	TrackingURL     string
}

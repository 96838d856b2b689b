package dto

import "time"

// LookupRequest describes order lookup payload.
type LookupRequest struct {
	OrderNumber string `json:"orderNumber"`
	Email       string `json:"email"`
}

// LookupResponse wraps a found order or a user-facing message.
type LookupResponse struct {
	Success bool           `json:"success"`
	Order   *OrderResponse `json:"order,omitempty"`
	Message string         `json:"message,omitempty"`
}

// OrderResponse is the tracked order as shown to the customer.
type OrderResponse struct {
	ID                int64                 `json:"id"`
	Name              string                `json:"name"`
	Email             *string               `json:"email"`
	TotalPrice        string                `json:"total_price"`
	Currency          string                `json:"currency"`
	CreatedAt         time.Time             `json:"created_at"`
	FinancialStatus   string                `json:"financial_status"`
	FulfillmentStatus *string               `json:"fulfillment_status"`
	CustomStatus      CustomStatusResponse  `json:"custom_status"`
	IsZipAndGo        bool                  `json:"is_zip_and_go"`
	LineItems         []LineItemResponse    `json:"line_items"`
	ShippingAddress   *AddressResponse      `json:"shipping_address"`
	Fulfillments      []FulfillmentResponse `json:"fulfillments"`
}

// CustomStatusResponse is the derived stage.
type CustomStatusResponse struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
	Days    int    `json:"days"`
}

// LineItemResponse describes a purchased item.
type LineItemResponse struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Quantity     int            `json:"quantity"`
	Price        string         `json:"price"`
	VariantTitle *string        `json:"variant_title"`
	Image        *ImageResponse `json:"image"`
}

// ImageResponse references a product image.
type ImageResponse struct {
	Src string `json:"src"`
}

// AddressResponse is the shipping destination.
type AddressResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// FulfillmentResponse is a shipment record with tracking details.
type FulfillmentResponse struct {
	ID              int64  `json:"id"`
	Status          string `json:"status"`
	TrackingNumber  string `json:"tracking_number,omitempty"`
	TrackingCompany string `json:"tracking_company,omitempty"`
	TrackingURL     string `json:"tracking_url,omitempty"`
}

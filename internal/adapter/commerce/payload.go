package commerce

import (
	"encoding/json"
	"time"

	"github.com/polkiloo/ordertrack/internal/domain/model"
)

// payloads mirror the admin REST API JSON; null strings decode to "".

type ordersEnvelope struct {
	Orders []orderPayload `json:"orders"`
}

type orderEnvelope struct {
	Order *orderPayload `json:"order"`
}

type productEnvelope struct {
	Product *productPayload `json:"product"`
}

type collectionsEnvelope struct {
	Collections []collectionPayload `json:"collections"`
}

type orderPayload struct {
	ID                int64                `json:"id"`
	Name              string               `json:"name"`
	Email             string               `json:"email"`
	Customer          *customerPayload     `json:"customer"`
	TotalPrice        string               `json:"total_price"`
	Currency          string               `json:"currency"`
	CreatedAt         time.Time            `json:"created_at"`
	FinancialStatus   string               `json:"financial_status"`
	FulfillmentStatus string               `json:"fulfillment_status"`
	LineItems         []lineItemPayload    `json:"line_items"`
	ShippingAddress   *addressPayload      `json:"shipping_address"`
	Fulfillments      []fulfillmentPayload `json:"fulfillments"`
}

type customerPayload struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type lineItemPayload struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Title        string          `json:"title"`
	Quantity     int             `json:"quantity"`
	Price        string          `json:"price"`
	VariantTitle string          `json:"variant_title"`
	ProductID    *int64          `json:"product_id"`
	Image        json.RawMessage `json:"image"`
}

type addressPayload struct {
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

type fulfillmentPayload struct {
	ID              int64  `json:"id"`
	Status          string `json:"status"`
	TrackingNumber  string `json:"tracking_number"`
	TrackingCompany string `json:"tracking_company"`
	TrackingURL     string `json:"tracking_url"`
}

type productPayload struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ProductType string `json:"product_type"`
}

type collectionPayload struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func (p orderPayload) toModel() model.Order {
	order := model.Order{
		ID:                p.ID,
		Name:              p.Name,
		Email:             p.Email,
		TotalPrice:        p.TotalPrice,
		Currency:          p.Currency,
		CreatedAt:         p.CreatedAt,
		FinancialStatus:   model.FinancialStatus(p.FinancialStatus),
		FulfillmentStatus: model.FulfillmentStatus(p.FulfillmentStatus),
		LineItems:         make([]model.LineItem, 0, len(p.LineItems)),
		Fulfillments:      make([]model.Fulfillment, 0, len(p.Fulfillments)),
	}
	if p.Customer != nil {
		order.Customer = &model.Customer{
			ID:        p.Customer.ID,
			Email:     p.Customer.Email,
			FirstName: p.Customer.FirstName,
			LastName:  p.Customer.LastName,
		}
	}
	for _, item := range p.LineItems {
		order.LineItems = append(order.LineItems, model.LineItem{
			ID:           item.ID,
			Name:         item.Name,
			Title:        item.Title,
			Quantity:     item.Quantity,
			Price:        item.Price,
			VariantTitle: item.VariantTitle,
			ProductID:    item.ProductID,
			Image:        decodeImage(item.Image),
		})
	}
	if a := p.ShippingAddress; a != nil {
		order.ShippingAddress = &model.Address{
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Address1:  a.Address1,
			Address2:  a.Address2,
			City:      a.City,
			Province:  a.Province,
			Zip:       a.Zip,
			Country:   a.Country,
			Phone:     a.Phone,
		}
	}
	for _, f := range p.Fulfillments {
		order.Fulfillments = append(order.Fulfillments, model.Fulfillment{
			ID:              f.ID,
			Status:          f.Status,
			TrackingNumber:  f.TrackingNumber,
			TrackingCompany: f.TrackingCompany,
			TrackingURL:     f.TrackingURL,
		})
	}
	return order
}

// decodeImage accepts either {"src": "..."} or a bare URL string.
func decodeImage(raw json.RawMessage) *model.Image {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var src string
	if err := json.Unmarshal(raw, &src); err == nil {
		if src == "" {
			return nil
		}
		return &model.Image{Src: src}
	}
	var obj struct {
		Src string `json:"src"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil || obj.Src == "" {
		return nil
	}
	return &model.Image{Src: obj.Src}
}

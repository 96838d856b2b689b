package commerce

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/domain/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewHTTPClient(Options{BaseURL: srv.URL + "/admin/api/2023-10", Token: "token"}, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

const orderJSON = `{
	"id": 5501,
	"name": "#2111",
	"email": "buyer@example.com",
	"customer": {"id": 9, "email": "Buyer@Example.com", "first_name": "Asha"},
	"total_price": "149.00",
	"currency": "USD",
	"created_at": "2024-03-01T10:00:00+05:30",
	"financial_status": "paid",
	"fulfillment_status": null,
	"line_items": [
		{"id": 1, "name": "Zip & Go Saree - Red", "title": "Zip & Go Saree", "quantity": 2, "price": "74.50", "variant_title": "Red", "product_id": 77, "image": {"src": "https://cdn.example.com/red.jpg"}},
		{"id": 2, "name": "Gift wrap", "title": "Gift wrap", "quantity": 1, "price": "0.00", "variant_title": null, "product_id": null}
	],
	"shipping_address": {"first_name": "Asha", "city": "Pune", "country": "India"},
	"fulfillments": [{"id": 3, "status": "success", "tracking_number": "TRK1", "tracking_company": "DHL", "tracking_url": "https://track/TRK1"}]
}`

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient(Options{BaseURL: "://bad-url"}, testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient(Options{BaseURL: "/relative"}, testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}

	client, err := NewHTTPClient(Options{ShopDomain: "store.example.com", APIVersion: "2023-10", Token: "t"}, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := client.baseURL.String(); got != "https://store.example.com/admin/api/2023-10" {
		t.Fatalf("unexpected base url %q", got)
	}
}

func TestUnconfiguredClientFails(t *testing.T) {
	client, err := NewHTTPClient(Options{}, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.ListOrders(context.Background(), repository.OrderQuery{}); !errors.Is(err, domainErrors.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	client, err = NewHTTPClient(Options{ShopDomain: "store.example.com"}, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.GetProduct(context.Background(), 1); !errors.Is(err, domainErrors.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured without token, got %v", err)
	}
}

func TestListOrdersSendsQueryAndDecodes(t *testing.T) {
	createdMin := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/api/2023-10/orders.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("X-Shopify-Access-Token"); got != "token" {
			t.Errorf("unexpected token header %q", got)
		}
		q := r.URL.Query()
		if q.Get("name") != "2111" || q.Get("status") != "any" || q.Get("limit") != "50" {
			t.Errorf("unexpected query %v", q)
		}
		if q.Get("fulfillment_status") != "unfulfilled" {
			t.Errorf("unexpected fulfillment filter %q", q.Get("fulfillment_status"))
		}
		if q.Get("created_at_min") != "2024-02-01T00:00:00Z" {
			t.Errorf("unexpected created_at_min %q", q.Get("created_at_min"))
		}
		if q.Get("fields") != "id,name,email" {
			t.Errorf("unexpected fields %q", q.Get("fields"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"orders":[`+orderJSON+`]}`)
	})

	orders, err := client.ListOrders(context.Background(), repository.OrderQuery{
		Name:              "2111",
		Status:            "any",
		FulfillmentStatus: "unfulfilled",
		CreatedAtMin:      createdMin,
		Limit:             50,
		Fields:            []string{"id", "name", "email"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected one order, got %d", len(orders))
	}

	order := orders[0]
	if order.ID != 5501 || order.Name != "#2111" || order.Email != "buyer@example.com" {
		t.Fatalf("unexpected order header %+v", order)
	}
	if order.Customer == nil || order.Customer.Email != "Buyer@Example.com" {
		t.Fatalf("unexpected customer %+v", order.Customer)
	}
	if order.FinancialStatus != model.FinancialStatusPaid || order.FulfillmentStatus != model.FulfillmentStatusNone {
		t.Fatalf("unexpected statuses %q %q", order.FinancialStatus, order.FulfillmentStatus)
	}
	if order.CreatedAt.UTC() != time.Date(2024, 3, 1, 4, 30, 0, 0, time.UTC) {
		t.Fatalf("unexpected created at %v", order.CreatedAt)
	}
	if len(order.LineItems) != 2 {
		t.Fatalf("expected two line items, got %d", len(order.LineItems))
	}
	first := order.LineItems[0]
	if first.ProductID == nil || *first.ProductID != 77 || first.Image == nil || first.Image.Src != "https://cdn.example.com/red.jpg" {
		t.Fatalf("unexpected first line item %+v", first)
	}
	if order.LineItems[1].ProductID != nil || order.LineItems[1].Image != nil {
		t.Fatalf("expected null product and image, got %+v", order.LineItems[1])
	}
	if order.ShippingAddress == nil || order.ShippingAddress.City != "Pune" {
		t.Fatalf("unexpected shipping address %+v", order.ShippingAddress)
	}
	if len(order.Fulfillments) != 1 || order.Fulfillments[0].TrackingNumber != "TRK1" {
		t.Fatalf("unexpected fulfillments %+v", order.Fulfillments)
	}
}

func TestGetOrderByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/api/2023-10/orders/5501.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = io.WriteString(w, `{"order":`+orderJSON+`}`)
	})

	order, err := client.GetOrder(context.Background(), 5501)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Name != "#2111" {
		t.Fatalf("unexpected order %+v", order)
	}
}

func TestGetProductAndCollections(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/api/2023-10/products/77.json":
			_, _ = io.WriteString(w, `{"product":{"id":77,"title":"Silk Saree","product_type":"Zip and Go"}}`)
		case "/admin/api/2023-10/products/77/collections.json":
			_, _ = io.WriteString(w, `{"collections":[{"id":1,"title":"Zip & GO Sarees"},{"id":2,"title":"New In"}]}`)
		default:
			http.NotFound(w, r)
		}
	})

	product, err := client.GetProduct(context.Background(), 77)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.ProductType != "Zip and Go" || product.Title != "Silk Saree" {
		t.Fatalf("unexpected product %+v", product)
	}

	collections, err := client.ProductCollections(context.Background(), 77)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(collections) != 2 || collections[0].Title != "Zip & GO Sarees" {
		t.Fatalf("unexpected collections %+v", collections)
	}
}

func TestUpstreamErrorCarriesStatusAndLogs(t *testing.T) {
	called := make(chan struct{}, 1)
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey && a.Value.Any() == slog.LevelError {
			select {
			case called <- struct{}{}:
			default:
			}
		}
		return a
	}})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":"Not Found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(Options{BaseURL: srv.URL, Token: "token"}, slog.New(handler))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.GetOrder(context.Background(), 1)
	var upstream *domainErrors.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.StatusCode != http.StatusNotFound || !strings.Contains(upstream.Body, "Not Found") {
		t.Fatalf("unexpected upstream error %+v", upstream)
	}

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("expected error log to be written")
	}
}

func TestTransportErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "not json")
	}))
	client, err := NewHTTPClient(Options{BaseURL: srv.URL, Token: "token"}, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	var transport *domainErrors.TransportError
	if _, err := client.ListOrders(context.Background(), repository.OrderQuery{}); !errors.As(err, &transport) {
		t.Fatalf("expected TransportError for bad json, got %v", err)
	}

	srv.Close()
	if _, err := client.ProductCollections(context.Background(), 1); !errors.As(err, &transport) {
		t.Fatalf("expected TransportError for closed server, got %v", err)
	}
}

func TestMissingEnvelopeIsTransportError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	var transport *domainErrors.TransportError
	if _, err := client.GetOrder(context.Background(), 1); !errors.As(err, &transport) {
		t.Fatalf("expected TransportError for missing order, got %v", err)
	}
	if _, err := client.GetProduct(context.Background(), 1); !errors.As(err, &transport) {
		t.Fatalf("expected TransportError for missing product, got %v", err)
	}
}

func TestDecodeImage(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{raw: ``, want: ""},
		{raw: `null`, want: ""},
		{raw: `"https://cdn/x.jpg"`, want: "https://cdn/x.jpg"},
		{raw: `{"src":"https://cdn/y.jpg"}`, want: "https://cdn/y.jpg"},
		{raw: `{"alt":"no src"}`, want: ""},
		{raw: `42`, want: ""},
	}

	for _, tc := range cases {
		img := decodeImage([]byte(tc.raw))
		got := ""
		if img != nil {
			got = img.Src
		}
		if got != tc.want {
			t.Fatalf("decodeImage(%s): expected %q, got %q", tc.raw, tc.want, got)
		}
	}
}

package commerce

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/domain/repository"
)

const accessTokenHeader = "X-Shopify-Access-Token"

// maxErrorBody bounds how much of a failed response is kept for logging.
const maxErrorBody = 4 << 10

// Client exposes read operations against the commerce admin API.
type Client interface {
	repository.OrderRepository
	repository.CatalogRepository
}

// HTTPClient implements Client via the admin REST API.
type HTTPClient struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Options configures HTTPClient.
type Options struct {
	// BaseURL overrides https://{ShopDomain}/admin/api/{APIVersion}.
	BaseURL    string
	ShopDomain string
	APIVersion string
	Token      string
	Timeout    time.Duration
}

// NewHTTPClient creates a commerce client. A client built without a shop
// domain or token is valid but fails every call with ErrNotConfigured.
func NewHTTPClient(opts Options, logger *slog.Logger) (*HTTPClient, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &HTTPClient{
		token:      opts.Token,
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
	}

	raw := opts.BaseURL
	if raw == "" {
		if opts.ShopDomain == "" {
			return c, nil
		}
		raw = fmt.Sprintf("https://%s/admin/api/%s", opts.ShopDomain, opts.APIVersion)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse commerce url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("commerce url must be absolute")
	}
	c.baseURL = parsed
	return c, nil
}

// ListOrders queries /orders.json with the supplied filters.
func (c *HTTPClient) ListOrders(ctx context.Context, query repository.OrderQuery) ([]model.Order, error) {
	var payload ordersEnvelope
	if err := c.get(ctx, "list orders", "orders.json", encodeOrderQuery(query), &payload); err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0, len(payload.Orders))
	for _, o := range payload.Orders {
		orders = append(orders, o.toModel())
	}
	return orders, nil
}

// GetOrder fetches a single order by its numeric identifier.
func (c *HTTPClient) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	var payload orderEnvelope
	if err := c.get(ctx, "get order", path.Join("orders", strconv.FormatInt(id, 10)+".json"), nil, &payload); err != nil {
		return nil, err
	}
	if payload.Order == nil {
		return nil, &domainErrors.TransportError{Op: "get order", Err: fmt.Errorf("response has no order")}
	}
	order := payload.Order.toModel()
	return &order, nil
}

// GetProduct fetches a single product.
func (c *HTTPClient) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	var payload productEnvelope
	if err := c.get(ctx, "get product", path.Join("products", strconv.FormatInt(id, 10)+".json"), nil, &payload); err != nil {
		return nil, err
	}
	if payload.Product == nil {
		return nil, &domainErrors.TransportError{Op: "get product", Err: fmt.Errorf("response has no product")}
	}
	return &model.Product{ID: payload.Product.ID, Title: payload.Product.Title, ProductType: payload.Product.ProductType}, nil
}

// ProductCollections lists the collections a product belongs to.
func (c *HTTPClient) ProductCollections(ctx context.Context, productID int64) ([]model.Collection, error) {
	var payload collectionsEnvelope
	if err := c.get(ctx, "product collections", path.Join("products", strconv.FormatInt(productID, 10), "collections.json"), nil, &payload); err != nil {
		return nil, err
	}
	collections := make([]model.Collection, 0, len(payload.Collections))
	for _, col := range payload.Collections {
		collections = append(collections, model.Collection{ID: col.ID, Title: col.Title})
	}
	return collections, nil
}

func (c *HTTPClient) get(ctx context.Context, op, resource string, query url.Values, out any) error {
	if c.baseURL == nil || c.token == "" {
		return domainErrors.ErrNotConfigured
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, resource)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return &domainErrors.TransportError{Op: op, Err: err}
	}
	req.Header.Set(accessTokenHeader, c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domainErrors.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error("commerce request failed",
			slog.String("op", op),
			slog.String("path", endpoint.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return &domainErrors.UpstreamError{Op: op, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domainErrors.TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func encodeOrderQuery(q repository.OrderQuery) url.Values {
	values := url.Values{}
	if q.Name != "" {
		values.Set("name", q.Name)
	}
	if q.Status != "" {
		values.Set("status", q.Status)
	}
	if q.FulfillmentStatus != "" {
		values.Set("fulfillment_status", q.FulfillmentStatus)
	}
	if !q.CreatedAtMin.IsZero() {
		values.Set("created_at_min", q.CreatedAtMin.UTC().Format(time.RFC3339))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if len(q.Fields) > 0 {
		values.Set("fields", strings.Join(q.Fields, ","))
	}
	return values
}

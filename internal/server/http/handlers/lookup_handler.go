package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/server/http/dto"
)

const (
	msgLookupRequired  = "Order number and email are required"
	msgOrderNotFound   = "Order not found. Please check your order number and email address."
	msgConfiguration   = "Server configuration error"
	msgUpstreamFailure = "Unable to connect to order system"
	msgLookupFailed    = "An error occurred while searching for your order. Please try again later."
)

// LookupHandler serves customer order lookups.
type LookupHandler struct {
	facade LookupFacade
	logger *slog.Logger
}

// NewLookupHandler constructs LookupHandler.
func NewLookupHandler(facade LookupFacade, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{facade: facade, logger: logger}
}

// Lookup handles POST /lookup.
func (h *LookupHandler) Lookup(c *gin.Context) {
	var req dto.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.LookupResponse{Message: msgLookupRequired})
		return
	}

	tracked, err := h.facade.LookupOrder(c.Request.Context(), req.OrderNumber, req.Email)
	if err != nil {
		var upstream *domainErrors.UpstreamError
		switch {
		case errors.Is(err, domainErrors.ErrInvalidLookup):
			c.JSON(http.StatusBadRequest, dto.LookupResponse{Message: msgLookupRequired})
		case errors.Is(err, domainErrors.ErrOrderNotFound):
			c.JSON(http.StatusOK, dto.LookupResponse{Message: msgOrderNotFound})
		case errors.Is(err, domainErrors.ErrNotConfigured):
			h.logger.Error("order lookup misconfigured", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.LookupResponse{Message: msgConfiguration})
		case errors.As(err, &upstream):
			c.JSON(http.StatusInternalServerError, dto.LookupResponse{Message: msgUpstreamFailure})
		default:
			h.logger.Error("order lookup failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.LookupResponse{Message: msgLookupFailed})
		}
		return
	}

	resp := toOrderResponse(tracked)
	c.JSON(http.StatusOK, dto.LookupResponse{Success: true, Order: &resp})
}

func toOrderResponse(tracked *model.TrackedOrder) dto.OrderResponse {
	order := tracked.Order
	resp := dto.OrderResponse{
		ID:                order.ID,
		Name:              order.Name,
		Email:             optionalString(order.ContactEmail()),
		TotalPrice:        order.TotalPrice,
		Currency:          order.Currency,
		CreatedAt:         order.CreatedAt,
		FinancialStatus:   string(order.FinancialStatus),
		FulfillmentStatus: optionalString(string(order.FulfillmentStatus)),
		CustomStatus: dto.CustomStatusResponse{
			Stage:   string(tracked.Status.Stage),
			Message: tracked.Status.Message,
			Days:    tracked.Status.Days,
		},
		IsZipAndGo:   tracked.Distinguished,
		LineItems:    make([]dto.LineItemResponse, 0, len(order.LineItems)),
		Fulfillments: make([]dto.FulfillmentResponse, 0, len(order.Fulfillments)),
	}

	for _, item := range order.LineItems {
		li := dto.LineItemResponse{
			ID:           item.ID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			Price:        item.Price,
			VariantTitle: optionalString(item.VariantTitle),
		}
		if item.Image != nil {
			li.Image = &dto.ImageResponse{Src: item.Image.Src}
		}
		resp.LineItems = append(resp.LineItems, li)
	}

	if a := order.ShippingAddress; a != nil {
		resp.ShippingAddress = &dto.AddressResponse{
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

	for _, f := range order.Fulfillments {
		resp.Fulfillments = append(resp.Fulfillments, dto.FulfillmentResponse{
			ID:              f.ID,
			Status:          f.Status,
			TrackingNumber:  f.TrackingNumber,
			TrackingCompany: f.TrackingCompany,
			TrackingURL:     f.TrackingURL,
		})
	}
	return resp
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
	"github.com/polkiloo/ordertrack/internal/server/http/dto"
)

const (
	msgUnauthorized    = "Unauthorized"
	msgNotifyProcessed = "Email notifications processed"
	msgNotifyFailed    = "Failed to process email notifications"
)

// NotifyHandler triggers reminder runs.
type NotifyHandler struct {
	facade NotifyFacade
	logger *slog.Logger
}

// NewNotifyHandler constructs NotifyHandler.
func NewNotifyHandler(facade NotifyFacade, logger *slog.Logger) *NotifyHandler {
	return &NotifyHandler{facade: facade, logger: logger}
}

// Notify handles POST /notify.
func (h *NotifyHandler) Notify(c *gin.Context) {
	var req dto.NotifyRequest
	// an unreadable body is treated as a missing key
	_ = c.ShouldBindJSON(&req)

	if err := h.facade.AuthorizeNotify(req.APIKey); err != nil {
		c.JSON(http.StatusUnauthorized, dto.NotifyResponse{Error: msgUnauthorized})
		return
	}

	report, err := h.facade.RunNotifications(c.Request.Context())
	if err != nil {
		h.logger.Error("reminder run aborted", slog.String("error", err.Error()))
		msg := msgNotifyFailed
		if errors.Is(err, domainErrors.ErrNotConfigured) {
			msg = msgConfiguration
		}
		c.JSON(http.StatusInternalServerError, dto.NotifyResponse{Error: msg})
		return
	}

	resp := dto.NotifyResponse{
		Success: true,
		Message: msgNotifyProcessed,
		Stats: &dto.NotifyStats{
			TotalOrders:    report.TotalOrders,
			EligibleOrders: report.EligibleOrders,
			EmailsSent:     report.EmailsSent,
			Errors:         len(report.Failures),
		},
	}
	for _, f := range report.Failures {
		resp.Errors = append(resp.Errors, dto.NotifyFailure{Order: f.Order, Email: f.Email, Error: f.Error})
	}
	c.JSON(http.StatusOK, resp)
}

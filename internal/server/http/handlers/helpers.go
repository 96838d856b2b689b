package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ordertrack/internal/server/http/dto"
)

const msgMethodNotAllowed = "Method not allowed"

// MethodNotAllowed answers requests with an unsupported method.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, dto.MessageResponse{Success: false, Message: msgMethodNotAllowed})
}

// Preflight answers CORS preflight requests that reach the router.
func Preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Health handles GET /healthz.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

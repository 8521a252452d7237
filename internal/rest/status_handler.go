package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Status is a readiness probe: a live DB ping plus which optional
// integrations are configured.
func (h *Handler) Status(c *gin.Context) {
	dbConnected := h.DB != nil && h.DB.PingContext(c.Request.Context()) == nil

	c.JSON(http.StatusOK, gin.H{
		"dbConnected":       dbConnected,
		"paymentConfigured": h.Cfg.PaymentConfigured(),
		"emailConfigured":   h.Cfg.EmailConfigured(),
	})
}

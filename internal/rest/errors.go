package rest

import (
	"errors"
	"net/http"

	"shopease-be/internal/admin"
	"shopease-be/internal/cart"
	"shopease-be/internal/logger"
	"shopease-be/internal/notification"
	"shopease-be/internal/order"
	"shopease-be/internal/product"
	"shopease-be/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var badRequestErrors = []error{
	user.ErrValidation,
	admin.ErrValidation,
	user.ErrEmailExists,
	user.ErrInvalidCredentials,
	admin.ErrInvalidCredentials,
	product.ErrMissingFields,
	cart.ErrInvalidQuantity,
	cart.ErrUserRequired,
	order.ErrCartEmpty,
}

var notFoundErrors = []error{
	user.ErrUserNotFound,
	product.ErrProductNotFound,
	cart.ErrProductNotFound,
	cart.ErrCartItemNotFound,
	order.ErrOrderNotFound,
	order.ErrUserNotFound,
	notification.ErrNotificationNotFound,
}

// respondError maps domain sentinels to HTTP statuses. Anything unmatched is
// logged and surfaced as a generic 500 with no internal detail.
func respondError(c *gin.Context, err error) {
	for _, sentinel := range badRequestErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
	}

	if errors.Is(err, admin.ErrAdminExists) {
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
		return
	}

	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
	}

	logger.FromCtx(c.Request.Context()).Error("unhandled error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
}

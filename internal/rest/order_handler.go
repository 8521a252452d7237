package rest

import (
	"net/http"
	"strconv"

	"shopease-be/internal/order"
	"shopease-be/internal/utils"

	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	Address       order.Address `json:"address"`
	PaymentMethod string        `json:"paymentMethod"`
}

func (h *Handler) Checkout(c *gin.Context) {
	userID, _ := utils.GetUserIDFromContext(c.Request.Context())

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	o, err := h.OrderSvc.Checkout(c.Request.Context(), order.CheckoutParams{
		UserID:        userID,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "order placed",
		"order":   o,
	})
}

func (h *Handler) RecentOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, err := h.OrderSvc.RecentOrders(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) AllOrders(c *gin.Context) {
	orders, err := h.OrderSvc.AllOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}

	o, err := h.OrderSvc.DeleteOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "order deleted",
		"order":   o,
	})
}

func (h *Handler) DeliverOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}

	if err := h.OrderSvc.MarkDelivered(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order marked as delivered"})
}

package rest

import (
	"net/http"
	"strconv"

	"shopease-be/internal/cart"
	"shopease-be/internal/utils"

	"github.com/gin-gonic/gin"
)

type cartMutationRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

func (h *Handler) GetCart(c *gin.Context) {
	userID, _ := utils.GetUserIDFromContext(c.Request.Context())

	lines, err := h.CartSvc.GetCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": lines})
}

func (h *Handler) AddToCart(c *gin.Context) {
	userID, _ := utils.GetUserIDFromContext(c.Request.Context())

	var req cartMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	lines, err := h.CartSvc.AddToCart(c.Request.Context(), cart.AddToCartParams{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "added to cart",
		"cart":    lines,
	})
}

func (h *Handler) UpdateCart(c *gin.Context) {
	userID, _ := utils.GetUserIDFromContext(c.Request.Context())

	var req cartMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	lines, err := h.CartSvc.UpdateQuantity(c.Request.Context(), cart.UpdateQuantityParams{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "cart updated",
		"cart":    lines,
	})
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	userID, _ := utils.GetUserIDFromContext(c.Request.Context())

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}

	lines, err := h.CartSvc.RemoveFromCart(c.Request.Context(), userID, productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "removed from cart",
		"cart":    lines,
	})
}

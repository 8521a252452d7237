package rest

import (
	"net/http"
	"strconv"

	"shopease-be/internal/product"

	"github.com/gin-gonic/gin"
)

type createProductRequest struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	ImageURL string `json:"img"`
}

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.ProductSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	p, err := h.ProductSvc.Create(c.Request.Context(), product.CreateParams{
		Title:    req.Title,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "product created",
		"product": p,
	})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}

	p, err := h.ProductSvc.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "product deleted",
		"product": p,
	})
}

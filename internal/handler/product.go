package handler

import (
	"errors"
	"net/http"

	"github.com/EasWay/bina-mobile/internal/models"
	"github.com/EasWay/bina-mobile/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	products *store.ProductStore
	logger   *zap.Logger
}

func NewProductHandler(products *store.ProductStore, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{products: products, logger: logger}
}

func (h *ProductHandler) List(c *gin.Context) {
	userID := c.GetString("userID")

	products, err := h.products.List(userID)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		respondError(c, http.StatusInternalServerError, kindInternal, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, kindValidation, err.Error())
		return
	}
	if req.Price.IsNegative() {
		respondError(c, http.StatusBadRequest, kindValidation, "price must not be negative")
		return
	}
	if req.Quantity < 0 {
		respondError(c, http.StatusBadRequest, kindValidation, "quantity must not be negative")
		return
	}

	userID := c.GetString("userID")

	product, err := h.products.Create(userID, req.Name, req.Category, req.ImageBase64, req.Price, req.Quantity)
	if err != nil {
		h.logger.Error("failed to create product", zap.Error(err))
		respondError(c, http.StatusInternalServerError, kindInternal, "Failed to create product")
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, kindValidation, err.Error())
		return
	}
	if req.Price != nil && req.Price.IsNegative() {
		respondError(c, http.StatusBadRequest, kindValidation, "price must not be negative")
		return
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		respondError(c, http.StatusBadRequest, kindValidation, "quantity must not be negative")
		return
	}

	// Only fields present in the patch are applied.
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.ImageBase64 != nil {
		fields["image_base64"] = *req.ImageBase64
	}

	userID := c.GetString("userID")

	product, err := h.products.Update(userID, c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, kindNotFound, "Product not found")
			return
		}
		h.logger.Error("failed to update product", zap.Error(err))
		respondError(c, http.StatusInternalServerError, kindInternal, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.products.Delete(userID, c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, kindNotFound, "Product not found")
			return
		}
		h.logger.Error("failed to delete product", zap.Error(err))
		respondError(c, http.StatusInternalServerError, kindInternal, "Failed to delete product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

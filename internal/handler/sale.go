package handler

import (
	"errors"
	"net/http"

	"github.com/EasWay/bina-mobile/internal/models"
	"github.com/EasWay/bina-mobile/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SaleHandler struct {
	sales  *store.SaleStore
	logger *zap.Logger
}

func NewSaleHandler(sales *store.SaleStore, logger *zap.Logger) *SaleHandler {
	return &SaleHandler{sales: sales, logger: logger}
}

func (h *SaleHandler) List(c *gin.Context) {
	userID := c.GetString("userID")

	sales, err := h.sales.List(userID)
	if err != nil {
		h.logger.Error("failed to list sales", zap.Error(err))
		respondError(c, http.StatusInternalServerError, kindInternal, "Failed to fetch sales")
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (h *SaleHandler) Create(c *gin.Context) {
	var req models.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, kindValidation, err.Error())
		return
	}
	if req.QuantitySold <= 0 {
		respondError(c, http.StatusBadRequest, kindValidation, "quantity_sold must be positive")
		return
	}
	if req.UnitPrice.IsNegative() {
		respondError(c, http.StatusBadRequest, kindValidation, "unit_price must not be negative")
		return
	}

	userID := c.GetString("userID")

	sale, err := h.sales.Create(userID, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			respondError(c, http.StatusNotFound, kindNotFound, "Product not found")
		case errors.Is(err, store.ErrInsufficientStock):
			respondError(c, http.StatusBadRequest, kindInsufficientStock, "Insufficient stock")
		default:
			h.logger.Error("failed to create sale",
				zap.String("product_id", req.ProductID),
				zap.Int("quantity_sold", req.QuantitySold),
				zap.Error(err),
			)
			respondError(c, http.StatusInternalServerError, kindInternal, "Failed to create sale")
		}
		return
	}

	h.logger.Info("sale created",
		zap.String("sale_id", sale.ID),
		zap.String("product_id", sale.ProductID),
		zap.Int("quantity_sold", sale.QuantitySold),
	)
	c.JSON(http.StatusOK, sale)
}

func (h *SaleHandler) Analytics(c *gin.Context) {
	userID := c.GetString("userID")

	report, err := h.sales.Analytics(userID)
	if err != nil {
		h.logger.Error("failed to compute analytics", zap.Error(err))
		respondError(c, http.StatusInternalServerError, kindInternal, "Failed to compute analytics")
		return
	}
	c.JSON(http.StatusOK, report)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/EasWay/bina-mobile/internal/models"
	"github.com/EasWay/bina-mobile/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	customers *store.CustomerStore
	logger    *zap.Logger
}

func NewCustomerHandler(customers *store.CustomerStore, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{customers: customers, logger: logger}
}

func (h *CustomerHandler) List(c *gin.Context) {
	userID := c.GetString("userID")

	customers, err := h.customers.List(userID)
	if err != nil {
		h.logger.Error("failed to list customers", zap.Error(err))
		respondError(c, http.StatusInternalServerError, kindInternal, "Failed to fetch customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req models.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, kindValidation, err.Error())
		return
	}

	userID := c.GetString("userID")

	customer, err := h.customers.Create(userID, req)
	if err != nil {
		h.logger.Error("failed to create customer", zap.Error(err))
		respondError(c, http.StatusInternalServerError, kindInternal, "Failed to create customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.customers.Delete(userID, c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, kindNotFound, "Customer not found")
			return
		}
		h.logger.Error("failed to delete customer", zap.Error(err))
		respondError(c, http.StatusInternalServerError, kindInternal, "Failed to delete customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

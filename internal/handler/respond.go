package handler

import "github.com/gin-gonic/gin"

// Stable error kinds surfaced to clients.
const (
	kindValidation        = "validation_error"
	kindUnauthorized      = "unauthorized"
	kindNotFound          = "not_found"
	kindConflict          = "conflict"
	kindInsufficientStock = "insufficient_stock"
	kindInternal          = "internal"
)

func respondError(c *gin.Context, status int, kind, message string) {
	c.JSON(status, gin.H{"error": kind, "message": message})
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money fields serialize as plain JSON numbers, matching the API contract.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	Name        string          `gorm:"size:150;not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity    int             `gorm:"not null;default:0" json:"quantity"`
	Category    string          `gorm:"size:100" json:"category"`
	ImageBase64 string          `gorm:"type:longtext" json:"image_base64,omitempty"`
	UserID      string          `gorm:"size:36;index;not null" json:"user_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Category    string          `json:"category" binding:"required"`
	ImageBase64 string          `json:"image_base64"`
}

// UpdateProductRequest is a partial patch: nil fields are left untouched.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	Category    *string          `json:"category"`
	ImageBase64 *string          `json:"image_base64"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sale struct {
	ID           string          `gorm:"primaryKey;size:36" json:"id"`
	ProductID    string          `gorm:"size:36;index;not null" json:"product_id"`
	ProductName  string          `gorm:"size:150;not null" json:"product_name"` // snapshot at sale time
	QuantitySold int             `gorm:"not null" json:"quantity_sold"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	CustomerID   *string         `gorm:"size:36" json:"customer_id,omitempty"`
	UserID       string          `gorm:"size:36;index;not null" json:"user_id"`
	CreatedAt    time.Time       `json:"created_at"`
}

type CreateSaleRequest struct {
	ProductID    string          `json:"product_id" binding:"required"`
	QuantitySold int             `json:"quantity_sold" binding:"required"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CustomerID   *string         `json:"customer_id"`
}

// AnalyticsReport is computed on demand over all of an owner's sales.
type AnalyticsReport struct {
	TotalSales  decimal.Decimal            `json:"total_sales"`
	TotalOrders int                        `json:"total_orders"`
	SalesByDate map[string]decimal.Decimal `json:"sales_by_date"`
	TopProducts []ProductSales             `json:"top_products"`
}

type ProductSales struct {
	ProductName  string          `json:"product_name"`
	QuantitySold int             `json:"quantity_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

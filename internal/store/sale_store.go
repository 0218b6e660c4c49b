package store

import (
	"errors"
	"sort"
	"time"

	"github.com/EasWay/bina-mobile/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleStore struct {
	db *gorm.DB
}

func NewSaleStore(db *gorm.DB) *SaleStore {
	return &SaleStore{db: db}
}

func (s *SaleStore) List(userID string) ([]models.Sale, error) {
	sales := []models.Sale{}
	if err := s.db.Where("user_id = ?", userID).Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// Create records a sale and decrements product stock as one transaction.
// The decrement is conditional (quantity >= quantity_sold), so two
// concurrent sales against the same product cannot both pass the stock
// check: the second one sees zero rows affected and the transaction
// rolls back, leaving neither the sale nor the decrement applied.
func (s *SaleStore) Create(userID string, req models.CreateSaleRequest) (*models.Sale, error) {
	var sale models.Sale

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Where("id = ? AND user_id = ?", req.ProductID, userID).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		res := tx.Model(&models.Product{}).
			Where("id = ? AND user_id = ? AND quantity >= ?", req.ProductID, userID, req.QuantitySold).
			Updates(map[string]interface{}{
				"quantity":   gorm.Expr("quantity - ?", req.QuantitySold),
				"updated_at": time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock
		}

		sale = models.Sale{
			ID:           uuid.NewString(),
			ProductID:    req.ProductID,
			ProductName:  product.Name,
			QuantitySold: req.QuantitySold,
			UnitPrice:    req.UnitPrice,
			TotalAmount:  req.UnitPrice.Mul(decimal.NewFromInt(int64(req.QuantitySold))),
			CustomerID:   req.CustomerID,
			UserID:       userID,
			CreatedAt:    time.Now().UTC(),
		}
		return tx.Create(&sale).Error
	})
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// Analytics aggregates all of the owner's sales in memory. Date keys are
// UTC calendar days.
func (s *SaleStore) Analytics(userID string) (*models.AnalyticsReport, error) {
	sales, err := s.List(userID)
	if err != nil {
		return nil, err
	}

	report := models.AnalyticsReport{
		TotalSales:  decimal.Zero,
		TotalOrders: len(sales),
		SalesByDate: map[string]decimal.Decimal{},
	}

	type productAgg struct {
		name     string
		quantity int
		revenue  decimal.Decimal
	}
	perProduct := map[string]*productAgg{}
	productOrder := []string{}

	for _, sale := range sales {
		report.TotalSales = report.TotalSales.Add(sale.TotalAmount)

		day := sale.CreatedAt.UTC().Format("2006-01-02")
		report.SalesByDate[day] = report.SalesByDate[day].Add(sale.TotalAmount)

		agg, ok := perProduct[sale.ProductID]
		if !ok {
			agg = &productAgg{revenue: decimal.Zero}
			perProduct[sale.ProductID] = agg
			productOrder = append(productOrder, sale.ProductID)
		}
		agg.name = sale.ProductName
		agg.quantity += sale.QuantitySold
		agg.revenue = agg.revenue.Add(sale.TotalAmount)
	}

	top := make([]models.ProductSales, 0, len(productOrder))
	for _, id := range productOrder {
		agg := perProduct[id]
		top = append(top, models.ProductSales{
			ProductName:  agg.name,
			QuantitySold: agg.quantity,
			TotalRevenue: agg.revenue,
		})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].QuantitySold > top[j].QuantitySold
	})
	if len(top) > 5 {
		top = top[:5]
	}
	report.TopProducts = top

	return &report, nil
}

package store

import (
	"errors"
	"time"

	"github.com/EasWay/bina-mobile/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) List(userID string) ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.Where("user_id = ?", userID).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) Create(userID, name, category, imageBase64 string, price decimal.Decimal, quantity int) (*models.Product, error) {
	now := time.Now().UTC()
	product := models.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Price:       price,
		Quantity:    quantity,
		Category:    category,
		ImageBase64: imageBase64,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductStore) Get(userID, id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Update applies a partial patch. An empty patch is a successful no-op that
// returns the product unchanged without touching updated_at.
func (s *ProductStore) Update(userID, id string, fields map[string]interface{}) (*models.Product, error) {
	product, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return product, nil
	}

	fields["updated_at"] = time.Now().UTC()
	if err := s.db.Model(&models.Product{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields).Error; err != nil {
		return nil, err
	}

	return s.Get(userID, id)
}

func (s *ProductStore) Delete(userID, id string) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package store

import (
	"time"

	"github.com/EasWay/bina-mobile/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerStore struct {
	db *gorm.DB
}

func NewCustomerStore(db *gorm.DB) *CustomerStore {
	return &CustomerStore{db: db}
}

func (s *CustomerStore) List(userID string) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := s.db.Where("user_id = ?", userID).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *CustomerStore) Create(userID string, req models.CreateCustomerRequest) (*models.Customer, error) {
	customer := models.Customer{
		ID:             uuid.NewString(),
		FullName:       req.FullName,
		PhoneNumber:    req.PhoneNumber,
		Address:        req.Address,
		Gender:         req.Gender,
		ReferralSource: req.ReferralSource,
		UserID:         userID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.db.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// Delete is unconditional; sales referencing the customer keep the dangling ID.
func (s *CustomerStore) Delete(userID, id string) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Customer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

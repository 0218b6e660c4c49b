package models

import (
	"time"
)

type Customer struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	FullName       string    `gorm:"size:150;not null" json:"full_name"`
	PhoneNumber    string    `gorm:"size:30" json:"phone_number"`
	Address        string    `gorm:"type:text" json:"address"`
	Gender         string    `gorm:"size:20" json:"gender"`
	ReferralSource string    `gorm:"size:100" json:"referral_source"`
	UserID         string    `gorm:"size:36;index;not null" json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateCustomerRequest struct {
	FullName       string `json:"full_name"`
	PhoneNumber    string `json:"phone_number"`
	Address        string `json:"address"`
	Gender         string `json:"gender"`
	ReferralSource string `json:"referral_source"`
}

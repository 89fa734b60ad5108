package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"` // preload only when the customer detail is needed

	DeliveryCrewID *uint `gorm:"index" json:"deliveryCrewId"`
	DeliveryCrew   *User `json:"-"`

	// false = placed, true = delivered
	Status bool      `gorm:"not null;default:false" json:"status"`
	Total  float64   `gorm:"type:decimal(8,2);not null" json:"total"`
	Date   time.Time `gorm:"type:date;not null" json:"date"`

	OrderItems []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

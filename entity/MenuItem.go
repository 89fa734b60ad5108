package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Title    string  `gorm:"not null;index" json:"title"`
	Price    float64 `gorm:"type:decimal(6,2);not null" json:"price"`
	Featured bool    `gorm:"not null;default:false" json:"featured"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only on detail

	CartItems  []Cart      `json:"-"`
	OrderItems []OrderItem `json:"-"`
}

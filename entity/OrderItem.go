package entity

import (
	"gorm.io/gorm"
)

// OrderItem is the snapshot of a cart row at order-creation time.
// Never updated afterward.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload only when the item title is needed

	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"type:decimal(6,2);not null" json:"unitPrice"`
	Price     float64 `gorm:"type:decimal(6,2);not null" json:"price"`
}

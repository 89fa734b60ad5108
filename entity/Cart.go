package entity

import (
	"gorm.io/gorm"
)

// Cart is one pending line per (user, menu item). The pair is unique: adding
// the same item twice is a conflict, not a quantity bump.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_cart_user_item;not null" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_item;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"type:decimal(6,2);not null" json:"unitPrice"`
	Price     float64 `gorm:"type:decimal(6,2);not null" json:"price"` // always quantity * unit price, server computed
}

package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `json:"email"` // read-only after creation, no handler updates it
	Password string `json:"-"`
	IsStaff  bool   `gorm:"not null;default:false" json:"-"`

	// Role groups — preload only when the role has to be resolved
	Groups []Group `gorm:"many2many:user_groups;" json:"-"`

	Orders     []Order `gorm:"foreignKey:UserID" json:"-"`
	Deliveries []Order `gorm:"foreignKey:DeliveryCrewID" json:"-"`
	CartItems  []Cart  `json:"-"`
}

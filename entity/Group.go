package entity

import (
	"gorm.io/gorm"
)

// Names with behavioral meaning: "Manager" and "Delivery crew".
// Anyone in neither group is a customer.
const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "Delivery crew"
)

type Group struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Users []User `gorm:"many2many:user_groups;" json:"-"`
}

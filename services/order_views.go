package services

import (
	"time"

	"github.com/hgpnguyen/restaurant/entity"
)

// Two response shapes for orders, picked per request by the caller's role.
// Delivery crew get the restricted view; everyone else the full one.

type OrderFullView struct {
	ID             uint               `json:"id"`
	UserID         uint               `json:"userId"`
	DeliveryCrewID *uint              `json:"deliveryCrewId"`
	Status         bool               `json:"status"`
	Total          float64            `json:"total"`
	Date           time.Time          `json:"date"`
	Items          []entity.OrderItem `json:"items,omitempty"`
}

type OrderCrewView struct {
	ID     uint      `json:"id"`
	Status bool      `json:"status"`
	Total  float64   `json:"total"`
	Date   time.Time `json:"date"`
}

// ViewOrder is a pure function of the caller's role; no handler picks a shape
// on its own.
func ViewOrder(role entity.Role, o *entity.Order, items []entity.OrderItem) any {
	if role == entity.RoleDeliveryCrew {
		return OrderCrewView{ID: o.ID, Status: o.Status, Total: o.Total, Date: o.Date}
	}
	return OrderFullView{
		ID:             o.ID,
		UserID:         o.UserID,
		DeliveryCrewID: o.DeliveryCrewID,
		Status:         o.Status,
		Total:          o.Total,
		Date:           o.Date,
		Items:          items,
	}
}

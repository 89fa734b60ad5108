package repository

import (
	"github.com/hgpnguyen/restaurant/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// scope narrows every order query to what the caller may see. This filter is
// the only access control on order visibility, so it runs on list, detail and
// mutation fetches alike.
func (r *OrderRepository) scope(q *gorm.DB, role entity.Role, userID uint) *gorm.DB {
	switch role {
	case entity.RoleManager:
		return q
	case entity.RoleDeliveryCrew:
		return q.Where("delivery_crew_id = ?", userID)
	default:
		return q.Where("user_id = ?", userID)
	}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) ListOrders(role entity.Role, userID uint, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	if err := r.scope(r.DB.Model(&entity.Order{}), role, userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := r.scope(r.DB.Model(&entity.Order{}), role, userID).
		Order("id DESC").Limit(limit).Offset(offset).
		Find(&orders).Error
	return orders, total, err
}

// GetOrder fetches one order under the caller's scope; an order outside the
// scope comes back as record-not-found, never as forbidden.
func (r *OrderRepository) GetOrder(role entity.Role, userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	q := r.scope(r.DB.Where("id = ?", orderID), role, userID)
	if err := q.First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderItems is the shared "line items for order X" query used by the
// detail endpoint.
func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *OrderRepository) UpdateOrder(orderID uint, updates map[string]any) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}

// DeleteOrder removes the order and its items together.
func (r *OrderRepository) DeleteOrder(orderID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Order{}, orderID).Error
	})
}

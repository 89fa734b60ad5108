package services

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hgpnguyen/restaurant/entity"
	"github.com/hgpnguyen/restaurant/pkg/logger"
	"github.com/hgpnguyen/restaurant/repository"
)

// OrderService holds the cart-to-order conversion and the role-scoped order
// workflow. The visibility scope lives in the repository so list, detail and
// mutation all go through the same filter.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo}
}

// ----- Create (cart -> order) -----

// Place converts the caller's cart into an order: one OrderItem snapshot per
// cart row, total summed from the rows, cart cleared. All inside a single
// transaction with the cart rows locked, so a double-submitted checkout can't
// bill twice or strand rows.
func (s *OrderService) Place(userID uint) (*entity.Order, error) {
	var order entity.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		rows, err := s.CartRepo.ListForUpdate(tx, userID)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return ErrCartEmpty
		}

		var total float64
		for _, row := range rows {
			total += row.Price
		}

		order = entity.Order{
			UserID: userID,
			Status: false,
			Total:  total,
			Date:   time.Now().UTC().Truncate(24 * time.Hour),
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, row := range rows {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: row.MenuItemID,
				Quantity:   row.Quantity,
				UnitPrice:  row.UnitPrice,
				Price:      row.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		return s.CartRepo.ClearForUser(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	logger.L().Info("order placed",
		zap.Uint("orderId", order.ID),
		zap.Uint("userId", userID),
		zap.Float64("total", order.Total),
	)
	return &order, nil
}

// ----- List & Detail -----

func (s *OrderService) List(role entity.Role, userID uint, page, limit int) ([]entity.Order, int64, error) {
	return s.Repo.ListOrders(role, userID, page, limit)
}

type OrderDetail struct {
	Order entity.Order
	Items []entity.OrderItem
}

func (s *OrderService) Detail(role entity.Role, userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(role, userID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

// ----- Updates -----

type UpdateOrderIn struct {
	DeliveryCrewID *uint `json:"deliveryCrewId"`
	Status         *bool `json:"status"`
}

// Update is the manager path (PUT and PATCH): assign the delivery crew and/or
// set the status. The assignee must actually be in the Delivery crew group.
func (s *OrderService) Update(orderID uint, in *UpdateOrderIn) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(entity.RoleManager, 0, orderID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.DeliveryCrewID != nil {
		ok, err := s.UserRepo.InGroup(*in.DeliveryCrewID, entity.GroupDeliveryCrew)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrNotDeliveryCrew
		}
		updates["delivery_crew_id"] = *in.DeliveryCrewID
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}

	if len(updates) > 0 {
		if err := s.Repo.UpdateOrder(o.ID, updates); err != nil {
			return nil, err
		}
	}
	return s.Repo.GetOrder(entity.RoleManager, 0, orderID)
}

type DeliveryUpdateIn struct {
	Status *bool `json:"status"`
}

// MarkDelivered is the delivery-crew path: the mutable surface is the status
// field alone and the only accepted value is true. The crew scope applies, so
// a courier can't touch orders assigned to someone else.
func (s *OrderService) MarkDelivered(crewID, orderID uint, in *DeliveryUpdateIn) (*entity.Order, error) {
	if in.Status == nil || !*in.Status {
		return nil, ErrStatusInvalid
	}

	o, err := s.Repo.GetOrder(entity.RoleDeliveryCrew, crewID, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateOrder(o.ID, map[string]any{"status": true}); err != nil {
		return nil, err
	}
	return s.Repo.GetOrder(entity.RoleDeliveryCrew, crewID, orderID)
}

func (s *OrderService) Delete(orderID uint) error {
	if _, err := s.Repo.GetOrder(entity.RoleManager, 0, orderID); err != nil {
		return err
	}
	return s.Repo.DeleteOrder(orderID)
}

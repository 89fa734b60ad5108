package services

import (
	"github.com/hgpnguyen/restaurant/entity"
	"github.com/hgpnguyen/restaurant/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, catalog *repository.CatalogRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, CatalogRepo: catalog}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

func (s *CartService) List(userID uint) ([]entity.Cart, float64, error) {
	rows, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, 0, err
	}
	var subtotal float64
	for _, row := range rows {
		subtotal += row.Price
	}
	return rows, subtotal, nil
}

// Add creates a line for the caller. The owner is always the caller and the
// prices always come from the menu item — nothing money-related is trusted
// from the request body.
func (s *CartService) Add(userID uint, in *AddToCartIn) (*entity.Cart, error) {
	item, err := s.CatalogRepo.GetMenuItem(in.MenuItemID)
	if err != nil {
		return nil, err
	}

	exists, err := s.CartRepo.Exists(userID, item.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyInCart
	}

	row := &entity.Cart{
		UserID:     userID,
		MenuItemID: item.ID,
		Quantity:   in.Quantity,
		UnitPrice:  item.Price,
		Price:      item.Price * float64(in.Quantity),
	}
	if err := s.CartRepo.Add(row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearForUser(tx, userID)
	})
}

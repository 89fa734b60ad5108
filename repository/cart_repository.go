package repository

import (
	"github.com/hgpnguyen/restaurant/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) ListForUser(userID uint) ([]entity.Cart, error) {
	var rows []entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("MenuItem").
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

// Exists reports whether the user already has a row for this menu item.
// The (user_id, menu_item_id) unique index backs this up at the DB level.
func (r *CartRepository) Exists(userID, menuItemID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Cart{}).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Count(&count).Error
	return count > 0, err
}

func (r *CartRepository) Add(row *entity.Cart) error {
	return r.DB.Create(row).Error
}

// ListForUpdate loads the user's rows inside a transaction with row locks,
// so two simultaneous checkouts can't both convert the same cart.
func (r *CartRepository) ListForUpdate(tx *gorm.DB, userID uint) ([]entity.Cart, error) {
	q := tx
	// sqlite has no SELECT ... FOR UPDATE; its transaction write lock gives
	// the same guarantee there
	if tx.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var rows []entity.Cart
	err := q.Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

// ClearForUser hard-deletes: a soft-deleted row would keep its slot in the
// (user, menu item) unique index and block re-adding the item later.
func (r *CartRepository) ClearForUser(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.Cart{}).Error
}

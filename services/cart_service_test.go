package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hgpnguyen/restaurant/repository"
	"github.com/hgpnguyen/restaurant/services"
)

func newCartService(db *gorm.DB) *services.CartService {
	return services.NewCartService(db, repository.NewCartRepository(db), repository.NewCatalogRepository(db))
}

func TestCartAddComputesPrice(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)

	user := createUser(t, db, "alice")
	item := createMenuItem(t, db, "Bruschetta", 7.50)

	row, err := svc.Add(user.ID, &services.AddToCartIn{MenuItemID: item.ID, Quantity: 3})
	require.NoError(t, err)

	// prices come from the menu item, never the client
	assert.Equal(t, user.ID, row.UserID)
	assert.Equal(t, 7.50, row.UnitPrice)
	assert.Equal(t, 22.50, row.Price)
}

func TestCartAddDuplicateIsConflict(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)

	user := createUser(t, db, "alice")
	item := createMenuItem(t, db, "Bruschetta", 7.50)

	_, err := svc.Add(user.ID, &services.AddToCartIn{MenuItemID: item.ID, Quantity: 1})
	require.NoError(t, err)

	_, err = svc.Add(user.ID, &services.AddToCartIn{MenuItemID: item.ID, Quantity: 2})
	assert.ErrorIs(t, err, services.ErrAlreadyInCart)
}

func TestCartAddUnknownItem(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)

	user := createUser(t, db, "alice")

	_, err := svc.Add(user.ID, &services.AddToCartIn{MenuItemID: 999, Quantity: 1})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCartListOnlyOwnRows(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	item := createMenuItem(t, db, "Bruschetta", 7.50)
	other := createMenuItem(t, db, "Greek Salad", 9.00)

	_, err := svc.Add(alice.ID, &services.AddToCartIn{MenuItemID: item.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Add(bob.ID, &services.AddToCartIn{MenuItemID: other.ID, Quantity: 2})
	require.NoError(t, err)

	rows, subtotal, err := svc.List(alice.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, item.ID, rows[0].MenuItemID)
	assert.Equal(t, 7.50, subtotal)
}

func TestCartClear(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)

	user := createUser(t, db, "alice")
	item := createMenuItem(t, db, "Bruschetta", 7.50)

	_, err := svc.Add(user.ID, &services.AddToCartIn{MenuItemID: item.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(user.ID))

	rows, _, err := svc.List(user.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

package services_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hgpnguyen/restaurant/entity"
)

// setupDB opens a fresh in-memory database per test. The shared-cache DSN
// keeps gorm's pooled connections on the same database.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Group{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Cart{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, groups ...string) *entity.User {
	t.Helper()

	u := &entity.User{Username: username, Email: username + "@littlelemon.test", Password: "x"}
	require.NoError(t, db.Create(u).Error)

	for _, name := range groups {
		var g entity.Group
		require.NoError(t, db.Where(entity.Group{Name: name}).FirstOrCreate(&g).Error)
		require.NoError(t, db.Model(u).Association("Groups").Append(&g))
	}
	return u
}

func createMenuItem(t *testing.T, db *gorm.DB, title string, price float64) *entity.MenuItem {
	t.Helper()

	var cat entity.Category
	require.NoError(t, db.Where(entity.Category{Title: "Mains", Slug: "mains"}).FirstOrCreate(&cat).Error)

	item := &entity.MenuItem{Title: title, Price: price, CategoryID: cat.ID}
	require.NoError(t, db.Create(item).Error)
	return item
}

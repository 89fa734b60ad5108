package repository_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hgpnguyen/restaurant/entity"
	"github.com/hgpnguyen/restaurant/repository"
)

func setupCatalog(t *testing.T) (*repository.CatalogRepository, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Category{}, &entity.MenuItem{}))

	mains := entity.Category{Title: "Mains", Slug: "mains"}
	desserts := entity.Category{Title: "Desserts", Slug: "desserts"}
	require.NoError(t, db.Create(&mains).Error)
	require.NoError(t, db.Create(&desserts).Error)

	items := []entity.MenuItem{
		{Title: "Greek Salad", Price: 9.00, Featured: true, CategoryID: mains.ID},
		{Title: "Bruschetta", Price: 7.50, CategoryID: mains.ID},
		{Title: "Lemon Cake", Price: 5.00, Featured: true, CategoryID: desserts.ID},
	}
	require.NoError(t, db.Create(&items).Error)

	return repository.NewCatalogRepository(db), db
}

func TestListMenuItemsFilters(t *testing.T) {
	repo, db := setupCatalog(t)

	var desserts entity.Category
	require.NoError(t, db.Where("slug = ?", "desserts").First(&desserts).Error)

	featured := true
	items, total, err := repo.ListMenuItems(repository.MenuItemFilter{Featured: &featured})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, items, 2)

	items, total, err = repo.ListMenuItems(repository.MenuItemFilter{CategoryID: &desserts.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Lemon Cake", items[0].Title)

	items, _, err = repo.ListMenuItems(repository.MenuItemFilter{Search: "lemon"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Lemon Cake", items[0].Title)
}

func TestListMenuItemsOrderingAndPaging(t *testing.T) {
	repo, _ := setupCatalog(t)

	items, _, err := repo.ListMenuItems(repository.MenuItemFilter{Ordering: "price"})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Lemon Cake", items[0].Title)
	assert.Equal(t, "Greek Salad", items[2].Title)

	page2, total, err := repo.ListMenuItems(repository.MenuItemFilter{Ordering: "-price", Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, page2, 1)
	assert.Equal(t, "Lemon Cake", page2[0].Title)
}

func TestUniqueCategorySlug(t *testing.T) {
	repo, _ := setupCatalog(t)

	err := repo.CreateCategory(&entity.Category{Title: "Mains 2", Slug: "mains"})
	assert.Error(t, err)
}

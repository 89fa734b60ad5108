package repository

import (
	"github.com/hgpnguyen/restaurant/entity"

	"gorm.io/gorm"
)

// CatalogRepository covers menu items and their categories.
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// ---------------- Menu items ----------------

// MenuItemFilter mirrors the list query params. Zero values mean "no filter".
type MenuItemFilter struct {
	CategoryID *uint
	Featured   *bool
	Search     string
	Ordering   string // "price", "-price", "title", "-title"
	Page       int
	Limit      int
}

func (f *MenuItemFilter) orderClause() string {
	switch f.Ordering {
	case "price":
		return "price ASC"
	case "-price":
		return "price DESC"
	case "title":
		return "title ASC"
	case "-title":
		return "title DESC"
	default:
		return "id ASC"
	}
}

func (r *CatalogRepository) ListMenuItems(f MenuItemFilter) ([]entity.MenuItem, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	offset := (f.Page - 1) * f.Limit

	filtered := func() *gorm.DB {
		q := r.DB.Model(&entity.MenuItem{})
		if f.CategoryID != nil {
			q = q.Where("category_id = ?", *f.CategoryID)
		}
		if f.Featured != nil {
			q = q.Where("featured = ?", *f.Featured)
		}
		if f.Search != "" {
			q = q.Where("title LIKE ?", "%"+f.Search+"%")
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []entity.MenuItem
	err := filtered().Order(f.orderClause()).Limit(f.Limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *CatalogRepository) GetMenuItem(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *CatalogRepository) CreateMenuItem(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *CatalogRepository) UpdateMenuItem(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CatalogRepository) DeleteMenuItem(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// ---------------- Categories ----------------

func (r *CatalogRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("id ASC").Find(&cats).Error
	return cats, err
}

func (r *CatalogRepository) GetCategory(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CatalogRepository) CategoryExists(id uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CatalogRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CatalogRepository) UpdateCategory(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CatalogRepository) DeleteCategory(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

package repository

import (
	"github.com/hgpnguyen/restaurant/entity"

	"gorm.io/gorm"
)

// UserRepository owns the users and user_groups tables.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ResolveRole derives the caller's role from live membership. Called once per
// request by the auth middleware — never cached across requests.
func (r *UserRepository) ResolveRole(userID uint) (entity.Role, error) {
	var user entity.User
	if err := r.DB.Preload("Groups").First(&user, userID).Error; err != nil {
		return "", err
	}
	return entity.RoleFromGroups(user.IsStaff, user.Groups), nil
}

// ---------------- Groups ----------------

func (r *UserRepository) GetOrCreateGroup(name string) (*entity.Group, error) {
	var g entity.Group
	if err := r.DB.Where(entity.Group{Name: name}).FirstOrCreate(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *UserRepository) AddToGroup(user *entity.User, group *entity.Group) error {
	return r.DB.Model(user).Association("Groups").Append(group)
}

func (r *UserRepository) RemoveFromGroup(user *entity.User, group *entity.Group) error {
	return r.DB.Model(user).Association("Groups").Delete(group)
}

// ListInGroup returns the members of a named group.
func (r *UserRepository) ListInGroup(name string) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.
		Joins("JOIN user_groups ug ON ug.user_id = users.id").
		Joins("JOIN groups g ON g.id = ug.group_id").
		Where("g.name = ?", name).
		Find(&users).Error
	return users, err
}

// InGroup reports whether the user belongs to the named group.
func (r *UserRepository) InGroup(userID uint, name string) (bool, error) {
	var count int64
	err := r.DB.Table("user_groups AS ug").
		Joins("JOIN groups g ON g.id = ug.group_id").
		Where("ug.user_id = ? AND g.name = ?", userID, name).
		Count(&count).Error
	return count > 0, err
}

package configs

import (
	"log"

	"github.com/hgpnguyen/restaurant/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedGroups makes sure both role groups exist. Membership is what gives a
// user a role, so the groups themselves are safe to create up front.
func SeedGroups() error {
	db := DB()
	for _, name := range []string{entity.GroupManager, entity.GroupDeliveryCrew} {
		if err := db.FirstOrCreate(&entity.Group{}, entity.Group{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin creates the first staff account from env, once.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", cfg.AdminUsername).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: string(hash),
		IsStaff:  true,
	}
	return db.Create(&admin).Error
}

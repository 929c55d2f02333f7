package configs

import (
	"log"

	"cerocafe-backend/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedOwner creates the first owner account from env, once.
func SeedOwner(db *gorm.DB, cfg *Config) error {
	if cfg.OwnerEmail == "" || cfg.OwnerPassword == "" {
		log.Println("skip seeding owner: missing OWNER_EMAIL/OWNER_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.OwnerEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	owner := entity.User{
		Dni:      cfg.OwnerDni,
		Email:    cfg.OwnerEmail,
		Password: string(hash),
		Name:     "Owner",
		Role:     entity.RoleOwner,
	}
	return db.Create(&owner).Error
}

// SeedMenu fills an empty menu with a starter card.
func SeedMenu(db *gorm.DB) error {
	var count int64
	db.Model(&entity.Dish{}).Count(&count)
	if count > 0 {
		return nil
	}

	dishes := []entity.Dish{
		{Name: "Espresso", Price: 250, Category: "coffee"},
		{Name: "Latte", Price: 350, Category: "coffee"},
		{Name: "Cappuccino", Price: 350, Category: "coffee"},
		{Name: "Medialuna", Price: 150, Category: "bakery"},
		{Name: "Tostado", Price: 450, Category: "bakery"},
	}
	return db.Create(&dishes).Error
}

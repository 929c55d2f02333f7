package configs

import (
	"cerocafe-backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the database and hands the handle back to the caller;
// main owns its lifecycle and injects it where needed.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	// TranslateError turns driver uniqueness violations into
	// gorm.ErrDuplicatedKey, which order numbering and webhook dedup
	// depend on
	return gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{TranslateError: true})
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.PointTransaction{},
		&entity.Dish{},
		&entity.Order{},
		&entity.OrderItem{},
	)
}

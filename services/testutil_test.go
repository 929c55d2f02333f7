package services

import (
	"fmt"
	"testing"

	"cerocafe-backend/entity"
	"cerocafe-backend/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test its own named in-memory database. A single
// open connection keeps sqlite from handing concurrent writers SQLITE_BUSY
// instead of letting the guard queries race properly.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.PointTransaction{},
		&entity.Dish{},
		&entity.Order{},
		&entity.OrderItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, dni string, balance int64) *entity.User {
	t.Helper()
	u := &entity.User{
		Dni:           dni,
		Email:         dni + "@test.local",
		Name:          "Test " + dni,
		Role:          entity.RoleCustomer,
		BalancePoints: balance,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func newPointsService(t *testing.T) (*PointsService, *gorm.DB) {
	db := openTestDB(t)
	return NewPointsService(db, repository.NewUserRepository(db)), db
}

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	db := openTestDB(t)
	return NewOrderService(db, repository.NewOrderRepository(db)), db
}

var staffActor = Actor{ID: 7, Name: "Marta", Role: entity.RoleStaff}

func pickupOrderReq() *CreateOrderReq {
	return &CreateOrderReq{
		Items: []OrderItemIn{
			{DishID: 1, Name: "Latte", UnitPrice: 5, Quantity: 2},
		},
		Total:        10,
		Customer:     CustomerIn{Name: "Ana", Phone: "111"},
		DeliveryType: entity.DeliveryPickup,
	}
}

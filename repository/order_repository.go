package repository

import (
	"cerocafe-backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders (CRUD) ----------------

// CreateOrder inserts the order together with its items. Uniqueness of
// order_number and payment_id is enforced by the store; callers handle
// gorm.ErrDuplicatedKey.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindByPaymentID(paymentID string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").Where("payment_id = ?", paymentID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) CountOrders() (int64, error) {
	var cnt int64
	err := r.DB.Unscoped().Model(&entity.Order{}).Count(&cnt).Error
	return cnt, err
}

func (r *OrderRepository) ListOrders(status *entity.OrderStatus, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	} else if limit > 200 {
		limit = 200
	}
	db := r.DB.Preload("Items").Order("id DESC").Limit(limit)
	if status != nil && *status != "" {
		db = db.Where("status = ?", *status)
	}
	var out []entity.Order
	err := db.Find(&out).Error
	return out, err
}

// ---------------- Status transitions ----------------

// UpdateStatusGuard advances the status only when the current row still
// holds the expected one; the losing side of a concurrent transition sees
// rows affected 0.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

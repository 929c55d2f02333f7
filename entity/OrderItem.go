package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	DishID    uint   `json:"dishId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`
}

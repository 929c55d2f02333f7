package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNumber string `gorm:"size:20;uniqueIndex;not null" json:"orderNumber"`
	Total       int64  `json:"total"`

	// customer snapshot; AccountID only set for logged-in customers
	AccountID     *uint  `gorm:"index" json:"accountId,omitempty"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail,omitempty"`

	DeliveryType DeliveryType `gorm:"size:10;not null" json:"deliveryType"`
	Address      string       `json:"address,omitempty"`

	Status        OrderStatus   `gorm:"size:20;not null" json:"status"`
	PaymentStatus PaymentStatus `gorm:"size:20;not null;default:pending" json:"paymentStatus"`

	// gateway payment identifier; unique when present, drives webhook dedup
	PaymentID *string `gorm:"size:64;uniqueIndex" json:"paymentId,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

type DeliveryType string

const (
	DeliveryPickup   DeliveryType = "pickup"
	DeliveryDelivery DeliveryType = "delivery"
)

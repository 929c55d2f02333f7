package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Dni      string `gorm:"size:20;uniqueIndex;not null" json:"dni"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	// only the points service writes this column
	BalancePoints int64 `gorm:"not null;default:0" json:"balancePoints"`

	Transactions []PointTransaction `gorm:"foreignKey:UserID" json:"-"`
	Orders       []Order            `gorm:"foreignKey:AccountID" json:"-"`
}

const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleOwner    = "owner"
)

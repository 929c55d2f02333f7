package entity

import (
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"`
	Category    string `json:"category"`
	Available   bool   `gorm:"not null;default:true" json:"available"`
}

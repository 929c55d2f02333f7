package entity

import (
	"time"
)

// PointTransaction is the append-only ledger behind every balance change.
// Rows are never updated or deleted.
type PointTransaction struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	ActorID   uint   `json:"actorId"`
	ActorName string `json:"actorName"`
	ActorRole string `json:"actorRole"`

	Points        int64     `gorm:"not null" json:"points"`
	Direction     Direction `gorm:"size:10;not null" json:"direction"`
	BalanceBefore int64     `gorm:"not null" json:"balanceBefore"`
	BalanceAfter  int64     `gorm:"not null" json:"balanceAfter"`
}

type Direction string

const (
	DirectionAdd      Direction = "add"
	DirectionSubtract Direction = "subtract"
)

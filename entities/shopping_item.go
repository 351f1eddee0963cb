package entities

import (
	"github.com/google/uuid"
)

type ShoppingItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID `gorm:"index" json:"user_id"`
	Name     string    `json:"name"`
	Amount   float64   `json:"amount"`
	Unit     string    `json:"unit"`
	Category string    `json:"category"`
	Checked  bool      `json:"checked"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

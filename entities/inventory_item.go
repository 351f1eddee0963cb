package entities

import (
	"github.com/google/uuid"
)

// Categories an item can be shelved under. Anything else is coerced to
// CategoryOther before it is stored.
const (
	CategoryProtein = "Protein"
	CategoryDairy   = "Dairy"
	CategoryProduce = "Produce"
	CategoryPantry  = "Pantry"
	CategoryOther   = "Other"
)

const (
	DefaultUnit   = "count"
	DefaultAmount = 1
)

var Categories = []string{
	CategoryProtein,
	CategoryDairy,
	CategoryProduce,
	CategoryPantry,
	CategoryOther,
}

var Units = []string{
	"count", "dozen", "lb", "oz", "kg", "g", "L", "ml",
	"cups", "bunch", "clove", "head", "block", "slice", "container", "pack",
}

type InventoryItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID `gorm:"index" json:"user_id"`
	Name          string    `json:"name"`
	Amount        float64   `json:"amount"`
	Unit          string    `json:"unit"`
	DaysLeft      int       `json:"days_left"`
	Category      string    `json:"category"`
	AddedManually bool      `json:"added_manually"`
	ReceiptScanID *string   `json:"receipt_scan_id,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func ValidUnit(unit string) bool {
	for _, u := range Units {
		if u == unit {
			return true
		}
	}
	return false
}

package entities

import (
	"github.com/google/uuid"
)

// Recipe is the read-only catalog entry. Multi-valued text fields
// (Tags, Ingredients, UseUpSoon) are pipe-delimited; splitting happens
// at the domain boundary, never in handlers.
type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title       string    `gorm:"index" json:"title"`
	ImageURL    string    `json:"image_url,omitempty"`
	Tags        string    `gorm:"type:text" json:"tags"`
	CookTime    int       `json:"cook_time"`
	TotalTime   int       `json:"total_time"`
	Ingredients string    `gorm:"type:text" json:"ingredients"`
	UseUpSoon   string    `gorm:"type:text" json:"use_up_soon"`

	Timestamp
}

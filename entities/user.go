package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	Password   string    `json:"-"`
	Name       string    `json:"name"`
	IsVerified bool      `json:"is_verified"`

	// Preferences used by recipe filtering. Multi-valued fields are
	// stored pipe-delimited, same encoding as recipe ingredients.
	Dietary        string `gorm:"type:text" json:"dietary"`
	Allergies      string `gorm:"type:text" json:"allergies"`
	TimePreference string `json:"time_preference"` // "quick", "under30", "any"

	Timestamp
}

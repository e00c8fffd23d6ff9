package models

import (
	"time"
)

// User owns recipes. Deleting a user removes every recipe they authored,
// along with the recipes' ingredients and steps.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Nom          string    `gorm:"size:100;not null" json:"nom"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`

	Recipes []Recipe `gorm:"foreignKey:AuteurID;constraint:OnDelete:CASCADE" json:"-"`
}

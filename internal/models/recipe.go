package models

import (
	"time"
)

type Recipe struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Titre     string    `gorm:"size:200;not null;index" json:"titre"`
	// Stored as an open string; validated against KnownCategories at the API
	// boundary so the set can grow without a schema migration.
	Categorie    string  `gorm:"size:50;not null;index" json:"categorie"`
	TempsPrep    *int    `json:"temps_prep"`    // minutes
	TempsCuisson *int    `json:"temps_cuisson"` // minutes
	Temperature  *int    `json:"temperature"`   // °C
	Tags         TagList `gorm:"type:text" json:"tags"`
	AuteurID     uint    `gorm:"not null;index" json:"auteur_id"`

	Auteur      *User        `gorm:"foreignKey:AuteurID" json:"auteur,omitempty"`
	Ingredients []Ingredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Steps       []Step       `gorm:"constraint:OnDelete:CASCADE" json:"steps,omitempty"`
}

type Ingredient struct {
	ID       uint     `gorm:"primarykey" json:"id"`
	Nom      string   `gorm:"size:100;not null;index" json:"nom"`
	Quantite *float64 `json:"quantite"`
	Unite    *string  `gorm:"size:50" json:"unite"` // "g", "ml", "pièce"...
	RecipeID uint     `gorm:"not null;index" json:"-"`
}

// Step order is carried by Ordre (1, 2, 3...). Uniqueness within a recipe is
// intended but not enforced; retrieval always sorts by Ordre ascending.
type Step struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Description string `gorm:"size:1000;not null" json:"description"`
	Ordre       int    `gorm:"not null" json:"ordre"`
	RecipeID    uint   `gorm:"not null;index" json:"-"`
}

package types

import (
	"bytes"
	"encoding/json"
)

// TagsPatch tracks whether the tags key was sent at all. A key that is
// present replaces the stored sequence, and both null and an empty list clear
// it; only a missing key leaves the tags alone.
type TagsPatch struct {
	Present bool
	Values  []string
}

func (p *TagsPatch) UnmarshalJSON(data []byte) error {
	p.Present = true
	if bytes.Equal(data, []byte("null")) {
		p.Values = nil
		return nil
	}
	return json.Unmarshal(data, &p.Values)
}

// IngredientInput is an ingredient as supplied by a client. Bounds mirror the
// public API contract (nom 1-100, unite up to 50 chars).
type IngredientInput struct {
	Nom      string   `json:"nom" binding:"required,min=1,max=100"`
	Quantite *float64 `json:"quantite"`
	Unite    *string  `json:"unite" binding:"omitempty,max=50"`
}

type StepInput struct {
	Description string `json:"description" binding:"required,min=1,max=1000"`
	Ordre       int    `json:"ordre" binding:"required,min=1"`
}

type RegisterRequest struct {
	Nom      string `json:"nom" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RecipeCreateRequest struct {
	Titre        string            `json:"titre" binding:"required,min=2,max=200"`
	Categorie    string            `json:"categorie" binding:"required"`
	TempsPrep    *int              `json:"temps_prep" binding:"omitempty,min=0"`
	TempsCuisson *int              `json:"temps_cuisson" binding:"omitempty,min=0"`
	Temperature  *int              `json:"temperature" binding:"omitempty,min=0"`
	Tags         []string          `json:"tags"`
	Ingredients  []IngredientInput `json:"ingredients" binding:"dive"`
	Steps        []StepInput       `json:"steps" binding:"dive"`
}

// RecipeUpdateRequest is a partial update. Nil pointers mean "leave
// unchanged"; a non-nil Ingredients/Steps pointer wholesale-replaces the
// stored collection, even when the supplied slice is empty. Tags follow the
// same rule through TagsPatch, where an explicit null also counts as sent.
type RecipeUpdateRequest struct {
	Titre        *string            `json:"titre" binding:"omitempty,min=2,max=200"`
	Categorie    *string            `json:"categorie"`
	TempsPrep    *int               `json:"temps_prep" binding:"omitempty,min=0"`
	TempsCuisson *int               `json:"temps_cuisson" binding:"omitempty,min=0"`
	Temperature  *int               `json:"temperature" binding:"omitempty,min=0"`
	Tags         TagsPatch          `json:"tags"`
	Ingredients  *[]IngredientInput `json:"ingredients" binding:"omitempty,dive"`
	Steps        *[]StepInput       `json:"steps" binding:"omitempty,dive"`
}

type FridgeSearchRequest struct {
	Ingredients []string `json:"ingredients"`
	Strict      bool     `json:"strict"`
}

package types

import "github.com/monlivredecuisine/backend/internal/models"

// RecipeFilters narrows a recipe listing. Zero values are ignored.
type RecipeFilters struct {
	Categorie string
	Search    string // case-insensitive substring on titre
	AuteurID  uint
	Tag       string // substring on the stored tag blob
	Offset    int
	Limit     int
}

// FridgeMatch is one ranked result of a fridge search.
type FridgeMatch struct {
	Recipe             models.Recipe `json:"recipe"`
	MatchCount         int           `json:"match_count"`
	MatchedIngredients []string      `json:"matched_ingredients"`
}

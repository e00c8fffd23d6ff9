package models

// Recipe categories known to the API. The storage layer keeps categorie as an
// open string; only the request boundary checks membership.
const (
	CategorieEntree       = "Entrée"
	CategoriePlat         = "Plat"
	CategorieDessert      = "Dessert"
	CategorieGourmandises = "Gourmandises"
)

var KnownCategories = []string{
	CategorieEntree,
	CategoriePlat,
	CategorieDessert,
	CategorieGourmandises,
}

func IsKnownCategorie(c string) bool {
	for _, known := range KnownCategories {
		if c == known {
			return true
		}
	}
	return false
}

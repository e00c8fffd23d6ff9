package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/monlivredecuisine/backend/config"
	"github.com/monlivredecuisine/backend/internal/database"
	"github.com/monlivredecuisine/backend/internal/models"
)

// Seeds a demo user and a handful of recipes for local development.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	demo := models.User{
		Nom:          "Démo",
		Email:        "demo@monlivredecuisine.fr",
		PasswordHash: string(hashed),
	}
	if err := db.Where("email = ?", demo.Email).FirstOrCreate(&demo).Error; err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	quantite := func(v float64) *float64 { return &v }
	unite := func(v string) *string { return &v }
	minutes := func(v int) *int { return &v }

	recipes := []models.Recipe{
		{
			Titre:        "Omelette aux fines herbes",
			Categorie:    models.CategoriePlat,
			TempsPrep:    minutes(5),
			TempsCuisson: minutes(10),
			Tags:         models.TagList{"rapide", "végé"},
			AuteurID:     demo.ID,
			Ingredients: []models.Ingredient{
				{Nom: "Oeuf", Quantite: quantite(3), Unite: unite("pièce")},
				{Nom: "Beurre", Quantite: quantite(20), Unite: unite("g")},
				{Nom: "Ciboulette"},
			},
			Steps: []models.Step{
				{Description: "Battre les oeufs avec les herbes.", Ordre: 1},
				{Description: "Cuire à feu doux dans le beurre fondu.", Ordre: 2},
			},
		},
		{
			Titre:        "Salade de tomates",
			Categorie:    models.CategorieEntree,
			TempsPrep:    minutes(10),
			Tags:         models.TagList{"rapide", "été"},
			AuteurID:     demo.ID,
			Ingredients: []models.Ingredient{
				{Nom: "Tomate fraîche", Quantite: quantite(4), Unite: unite("pièce")},
				{Nom: "Huile d'olive", Quantite: quantite(2), Unite: unite("c. à soupe")},
				{Nom: "Sel"},
			},
			Steps: []models.Step{
				{Description: "Couper les tomates en quartiers.", Ordre: 1},
				{Description: "Assaisonner et servir frais.", Ordre: 2},
			},
		},
		{
			Titre:        "Gâteau au chocolat",
			Categorie:    models.CategorieDessert,
			TempsPrep:    minutes(20),
			TempsCuisson: minutes(25),
			Temperature:  minutes(180),
			AuteurID:     demo.ID,
			Ingredients: []models.Ingredient{
				{Nom: "Chocolat noir", Quantite: quantite(200), Unite: unite("g")},
				{Nom: "Oeuf", Quantite: quantite(4), Unite: unite("pièce")},
				{Nom: "Farine", Quantite: quantite(100), Unite: unite("g")},
				{Nom: "Sucre", Quantite: quantite(120), Unite: unite("g")},
			},
			Steps: []models.Step{
				{Description: "Faire fondre le chocolat au bain-marie.", Ordre: 1},
				{Description: "Mélanger tous les ingrédients.", Ordre: 2},
				{Description: "Cuire 25 minutes à 180°C.", Ordre: 3},
			},
		},
	}

	for i := range recipes {
		if err := db.Where("titre = ? AND auteur_id = ?", recipes[i].Titre, demo.ID).
			FirstOrCreate(&recipes[i]).Error; err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", recipes[i].Titre, err)
		}
	}

	log.Printf("Seeded %d recipes for %s", len(recipes), demo.Email)
}

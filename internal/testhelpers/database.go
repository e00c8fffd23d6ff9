package testhelpers

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/monlivredecuisine/backend/internal/database"
	"github.com/monlivredecuisine/backend/internal/models"
)

// SetupTestDatabase opens an in-memory SQLite database migrated with the full
// schema. Each test gets its own named database; cache=shared keeps every
// pooled connection on the same one, and the single-connection pool avoids
// SQLite table locks.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access test database pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// CreateTestUser inserts a user with a bcrypt-hashed password.
func CreateTestUser(t *testing.T, db *gorm.DB, nom, email, password string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		Nom:          nom,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

// CreateTestAdmin inserts a user with the admin flag set.
func CreateTestAdmin(t *testing.T, db *gorm.DB, nom, email string) *models.User {
	t.Helper()

	user := CreateTestUser(t, db, nom, email, "admin-password")
	if err := db.Model(user).Update("is_admin", true).Error; err != nil {
		t.Fatalf("failed to promote test admin: %v", err)
	}
	return user
}

// CreateTestRecipe inserts a recipe with the given ingredient names, one step
// per ingredient.
func CreateTestRecipe(t *testing.T, db *gorm.DB, auteurID uint, titre string, ingredientNames ...string) *models.Recipe {
	t.Helper()

	recipe := models.Recipe{
		Titre:     titre,
		Categorie: models.CategoriePlat,
		AuteurID:  auteurID,
	}
	for i, nom := range ingredientNames {
		recipe.Ingredients = append(recipe.Ingredients, models.Ingredient{Nom: nom})
		recipe.Steps = append(recipe.Steps, models.Step{
			Description: fmt.Sprintf("Étape %d", i+1),
			Ordre:       i + 1,
		})
	}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	return &recipe
}

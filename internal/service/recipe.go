package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/monlivredecuisine/backend/internal/models"
	"github.com/monlivredecuisine/backend/internal/types"
)

// RecipeService handles recipe CRUD. Ingredient and step collections are
// owned by their recipe and always written inside the same transaction as the
// recipe row, so a failure never leaves a recipe without its children.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// List returns recipe summaries (author preloaded, no children), ordered by
// (categorie, titre) ascending.
func (s *RecipeService) List(ctx context.Context, f types.RecipeFilters) ([]models.Recipe, error) {
	query := s.db.WithContext(ctx).Model(&models.Recipe{}).Preload("Auteur")

	if f.Categorie != "" {
		query = query.Where("categorie = ?", f.Categorie)
	}
	if f.Search != "" {
		query = query.Where(`LOWER(titre) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(f.Search))+"%")
	}
	if f.AuteurID != 0 {
		query = query.Where("auteur_id = ?", f.AuteurID)
	}
	if f.Tag != "" {
		// Tags live in a JSON text blob; match the quoted form first so
		// "rapide" does not rely on accidental substrings, then fall back to a
		// plain substring for partial tags.
		tag := escapeLike(strings.ToLower(f.Tag))
		query = query.Where(`LOWER(tags) LIKE ? ESCAPE '\' OR LOWER(tags) LIKE ? ESCAPE '\'`, `%"`+tag+`"%`, "%"+tag+"%")
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}

	var recipes []models.Recipe
	err := query.
		Order("categorie ASC, titre ASC").
		Offset(f.Offset).
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// Get returns a full recipe: author, ingredients and steps (ordered by ordre).
func (s *RecipeService) Get(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Auteur").
		Preload("Ingredients").
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordre ASC")
		}).
		First(&recipe, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Create inserts a recipe owned by auteurID together with its ingredients and
// steps, then returns the stored aggregate.
func (s *RecipeService) Create(ctx context.Context, auteurID uint, recipe *models.Recipe) (*models.Recipe, error) {
	recipe.AuteurID = auteurID
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, recipe.ID)
}

// Update applies a partial update. Only the owner or an admin may update.
// A non-nil Ingredients/Steps pointer replaces the whole collection; a sent
// tags key replaces the tag sequence, with null or an empty slice clearing it
// to NULL.
func (s *RecipeService) Update(ctx context.Context, actor *models.User, id uint, req types.RecipeUpdateRequest) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if recipe.AuteurID != actor.ID && !actor.IsAdmin {
		return nil, ErrForbidden
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if req.Titre != nil {
			updates["titre"] = *req.Titre
		}
		if req.Categorie != nil {
			updates["categorie"] = *req.Categorie
		}
		if req.TempsPrep != nil {
			updates["temps_prep"] = *req.TempsPrep
		}
		if req.TempsCuisson != nil {
			updates["temps_cuisson"] = *req.TempsCuisson
		}
		if req.Temperature != nil {
			updates["temperature"] = *req.Temperature
		}
		if req.Tags.Present {
			if len(req.Tags.Values) == 0 {
				updates["tags"] = nil
			} else {
				updates["tags"] = models.TagList(req.Tags.Values)
			}
		}
		if len(updates) > 0 {
			if err := tx.Model(&recipe).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.Ingredients != nil {
			if err := tx.Where("recipe_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
				return err
			}
			if len(*req.Ingredients) > 0 {
				ingredients := make([]models.Ingredient, 0, len(*req.Ingredients))
				for _, in := range *req.Ingredients {
					ingredients = append(ingredients, models.Ingredient{
						Nom:      in.Nom,
						Quantite: in.Quantite,
						Unite:    in.Unite,
						RecipeID: id,
					})
				}
				if err := tx.Create(&ingredients).Error; err != nil {
					return err
				}
			}
		}

		if req.Steps != nil {
			if err := tx.Where("recipe_id = ?", id).Delete(&models.Step{}).Error; err != nil {
				return err
			}
			if len(*req.Steps) > 0 {
				steps := make([]models.Step, 0, len(*req.Steps))
				for _, st := range *req.Steps {
					steps = append(steps, models.Step{
						Description: st.Description,
						Ordre:       st.Ordre,
						RecipeID:    id,
					})
				}
				if err := tx.Create(&steps).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// Delete removes a recipe and its children. Only the owner may delete through
// this path; admins use the dedicated admin route instead.
func (s *RecipeService) Delete(ctx context.Context, actor *models.User, id uint) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if recipe.AuteurID != actor.ID {
		return ErrForbidden
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteRecipeTx(tx, id)
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters in user-supplied terms so a
// search for "100%" does not match everything. Patterns built from the result
// must carry ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// deleteRecipeTx removes a recipe with its ingredients and steps inside an
// existing transaction. The schema carries ON DELETE CASCADE as well, but the
// explicit cascade keeps the guarantee independent of driver pragmas.
func deleteRecipeTx(tx *gorm.DB, id uint) error {
	if err := tx.Where("recipe_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
		return err
	}
	if err := tx.Where("recipe_id = ?", id).Delete(&models.Step{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Recipe{}, id).Error
}

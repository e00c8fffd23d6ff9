package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/monlivredecuisine/backend/internal/models"
	"github.com/monlivredecuisine/backend/internal/types"
)

// FridgeService ranks recipes by how many of the caller's pantry ingredients
// they contain.
type FridgeService struct {
	db *gorm.DB
}

func NewFridgeService(db *gorm.DB) *FridgeService {
	return &FridgeService{db: db}
}

// Search matches pantry terms against ingredient names by case-insensitive
// substring containment. An ingredient row counts at most once per recipe no
// matter how many terms it matches, since the predicate is a single OR across
// terms. With strict set, only recipes whose every ingredient matched
// survive. Results are ordered by match count descending, recipe id ascending
// on ties.
func (s *FridgeService) Search(ctx context.Context, pantry []string, strict bool) ([]types.FridgeMatch, error) {
	terms := make([]string, 0, len(pantry))
	for _, p := range pantry {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			terms = append(terms, p)
		}
	}
	if len(terms) == 0 {
		return []types.FridgeMatch{}, nil
	}

	cond := s.db.Where(`LOWER(nom) LIKE ? ESCAPE '\'`, "%"+escapeLike(terms[0])+"%")
	for _, t := range terms[1:] {
		cond = cond.Or(`LOWER(nom) LIKE ? ESCAPE '\'`, "%"+escapeLike(t)+"%")
	}

	var matched []models.Ingredient
	if err := s.db.WithContext(ctx).Where(cond).Order("id ASC").Find(&matched).Error; err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return []types.FridgeMatch{}, nil
	}

	// Group matched rows by recipe, keeping database match order.
	var recipeIDs []uint
	matchCounts := make(map[uint]int)
	matchedNames := make(map[uint][]string)
	for _, ing := range matched {
		if matchCounts[ing.RecipeID] == 0 {
			recipeIDs = append(recipeIDs, ing.RecipeID)
		}
		matchCounts[ing.RecipeID]++
		matchedNames[ing.RecipeID] = append(matchedNames[ing.RecipeID], ing.Nom)
	}

	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Preload("Auteur").Where("id IN ?", recipeIDs).Find(&recipes).Error; err != nil {
		return nil, err
	}
	recipesByID := make(map[uint]models.Recipe, len(recipes))
	for _, r := range recipes {
		recipesByID[r.ID] = r
	}

	totals := make(map[uint]int)
	if strict {
		var rows []struct {
			RecipeID uint
			Total    int
		}
		err := s.db.WithContext(ctx).
			Model(&models.Ingredient{}).
			Select("recipe_id, COUNT(*) AS total").
			Where("recipe_id IN ?", recipeIDs).
			Group("recipe_id").
			Scan(&rows).Error
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			totals[row.RecipeID] = row.Total
		}
	}

	results := make([]types.FridgeMatch, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		recipe, ok := recipesByID[id]
		if !ok {
			continue
		}
		if strict && matchCounts[id] < totals[id] {
			continue
		}
		results = append(results, types.FridgeMatch{
			Recipe:             recipe,
			MatchCount:         matchCounts[id],
			MatchedIngredients: matchedNames[id],
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].MatchCount != results[j].MatchCount {
			return results[i].MatchCount > results[j].MatchCount
		}
		return results[i].Recipe.ID < results[j].Recipe.ID
	})

	return results, nil
}

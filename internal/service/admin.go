package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/monlivredecuisine/backend/internal/models"
)

// AdminService holds the privileged mutations. Callers are expected to have
// passed the admin check already, except for PromoteFirstAdmin which is open
// to any authenticated user while the system has no admin.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a user and cascades to all their recipes, ingredients
// and steps. Admins cannot delete their own account through this path.
func (s *AdminService) DeleteUser(ctx context.Context, actor *models.User, userID uint) error {
	if userID == actor.ID {
		return ErrSelfDeletion
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipeIDs []uint
		if err := tx.Model(&models.Recipe{}).Where("auteur_id = ?", user.ID).Pluck("id", &recipeIDs).Error; err != nil {
			return err
		}
		if len(recipeIDs) > 0 {
			if err := tx.Where("recipe_id IN ?", recipeIDs).Delete(&models.Ingredient{}).Error; err != nil {
				return err
			}
			if err := tx.Where("recipe_id IN ?", recipeIDs).Delete(&models.Step{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", recipeIDs).Delete(&models.Recipe{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.User{}, user.ID).Error
	})
}

// DeleteRecipe removes any recipe regardless of ownership.
func (s *AdminService) DeleteRecipe(ctx context.Context, recipeID uint) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteRecipeTx(tx, recipe.ID)
	})
}

// ToggleAdmin flips the target's admin flag. Admins cannot toggle themselves.
func (s *AdminService) ToggleAdmin(ctx context.Context, actor *models.User, userID uint) (*models.User, error) {
	if userID == actor.ID {
		return nil, ErrSelfModification
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&user).Update("is_admin", !user.IsAdmin).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// adminBootstrapLockID keys the advisory lock serializing first-admin
// promotion. Arbitrary, but it must stay stable across releases.
const adminBootstrapLockID = 727150001

// PromoteFirstAdmin makes the caller an admin, but only while the system has
// none. Exactly one concurrent caller can win; the losers get
// ErrAdminAlreadyExists.
func (s *AdminService) PromoteFirstAdmin(ctx context.Context, actorID uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Under READ COMMITTED, concurrent callers update different user
		// rows, so the zero-admin subquery in both statements can see the
		// pre-commit state and both would win. The advisory lock makes the
		// attempts queue; SQLite's single writer already serializes them.
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", adminBootstrapLockID).Error; err != nil {
				return err
			}
		}

		res := tx.Model(&models.User{}).
			Where("id = ? AND (SELECT COUNT(*) FROM users WHERE is_admin = ?) = 0", actorID, true).
			Update("is_admin", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAdminAlreadyExists
		}

		return tx.First(&user, actorID).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

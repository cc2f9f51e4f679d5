package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/recipebook-dev/recipebook/internal/models"
)

// IngredientStore manages the global master list.
type IngredientStore struct {
	db *gorm.DB
}

func NewIngredientStore(db *gorm.DB) *IngredientStore {
	return &IngredientStore{db: db}
}

// Create adds a name to the master list. Duplicate detection is
// case-insensitive, matching the lookup path.
func (s *IngredientStore) Create(name string) (*models.Ingredient, error) {
	ingredient := models.Ingredient{Name: name}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Ingredient

		err := tx.Where("LOWER(name) = LOWER(?)", name).First(&existing).Error

		if err == nil {
			return conflictf("ingredient already exists")
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(&ingredient).Error
	})

	if err != nil {
		return nil, err
	}

	return &ingredient, nil
}

func (s *IngredientStore) GetByID(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient

	if err := s.db.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("ingredient %d not found in master list", id)
		}
		return nil, err
	}

	return &ingredient, nil
}

func (s *IngredientStore) GetByName(name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient

	if err := s.db.Where("LOWER(name) = LOWER(?)", name).First(&ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("ingredient %q not found in master list", name)
		}
		return nil, err
	}

	return &ingredient, nil
}

// ListUsedByUser returns the distinct master-list ingredients linked into any
// recipe owned by the user: the pantry view, not the full master list.
func (s *IngredientStore) ListUsedByUser(userID uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient

	err := s.db.
		Distinct("ingredients.*").
		Joins("JOIN recipe_ingredients ON recipe_ingredients.ingredient_id = ingredients.id").
		Joins("JOIN recipes ON recipes.id = recipe_ingredients.recipe_id").
		Where("recipes.user_id = ?", userID).
		Find(&ingredients).Error

	if err != nil {
		return nil, err
	}

	return ingredients, nil
}

// Delete removes an ingredient from the master list. An ingredient still
// referenced by any recipe link cannot be deleted; cascading would silently
// edit recipes, so the delete is blocked instead.
func (s *IngredientStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var ingredient models.Ingredient

		if err := tx.First(&ingredient, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("ingredient %d not found in master list", id)
			}
			return err
		}

		var linked int64

		if err := tx.Model(&models.RecipeIngredient{}).Where("ingredient_id = ?", id).Count(&linked).Error; err != nil {
			return err
		}

		if linked > 0 {
			return conflictf("ingredient %d is used by existing recipes", id)
		}

		return tx.Delete(&ingredient).Error
	})
}

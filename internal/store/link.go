package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/recipebook-dev/recipebook/internal/models"
)

// LinkStore manages recipe-ingredient links. Recipe existence and ownership
// are the caller's concern (RecipeStore.GetOwned); this store enforces the
// remaining preconditions: the ingredient must be in the master list and the
// (recipe, ingredient) pair must not already be linked.
type LinkStore struct {
	db *gorm.DB
}

func NewLinkStore(db *gorm.DB) *LinkStore {
	return &LinkStore{db: db}
}

func (s *LinkStore) Find(recipeID, ingredientID uint) (*models.RecipeIngredient, error) {
	var link models.RecipeIngredient

	err := s.db.Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).First(&link).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("ingredient is not linked to this recipe")
		}
		return nil, err
	}

	return &link, nil
}

// Add links an ingredient to a recipe with a quantity. Returns the link with
// the ingredient resolved so the display name is available immediately.
func (s *LinkStore) Add(recipeID, ingredientID uint, quantity string) (*models.RecipeIngredient, error) {
	link := models.RecipeIngredient{
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Quantity:     quantity,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var ingredient models.Ingredient

		if err := tx.First(&ingredient, ingredientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("ingredient %d not found in master list", ingredientID)
			}
			return err
		}

		var existing models.RecipeIngredient

		err := tx.Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).First(&existing).Error

		if err == nil {
			return conflictf("ingredient already in this recipe, remove it and add again to change quantity")
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&link).Error; err != nil {
			return err
		}

		link.Ingredient = ingredient
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &link, nil
}

// Remove deletes a single link. The recipe and the master-list ingredient
// stay as they are.
func (s *LinkStore) Remove(recipeID, ingredientID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var link models.RecipeIngredient

		err := tx.Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).First(&link).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("ingredient is not linked to this recipe")
			}
			return err
		}

		return tx.Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).Delete(&models.RecipeIngredient{}).Error
	})
}

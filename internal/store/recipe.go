package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/recipebook-dev/recipebook/internal/models"
)

// RecipeStore manages user-owned recipes.
type RecipeStore struct {
	db *gorm.DB
}

func NewRecipeStore(db *gorm.DB) *RecipeStore {
	return &RecipeStore{db: db}
}

// Create stores a new recipe for the owner. Titles are unique per owner,
// case-insensitively; the title is stored as given, no trimming.
func (s *RecipeStore) Create(ownerID uint, title, description string) (*models.Recipe, error) {
	recipe := models.Recipe{
		Title:       title,
		Description: description,
		UserID:      ownerID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Recipe

		err := tx.Where("user_id = ? AND LOWER(title) = LOWER(?)", ownerID, title).First(&existing).Error

		if err == nil {
			return conflictf("you already have a recipe titled %q", title)
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(&recipe).Error
	})

	if err != nil {
		return nil, err
	}

	return &recipe, nil
}

// Get loads a recipe with its ingredient links and each link's master-list
// ingredient, so consumers always see a resolvable display name.
func (s *RecipeStore) Get(id uint) (*models.Recipe, error) {
	var recipe models.Recipe

	err := s.db.Preload("Ingredients.Ingredient").First(&recipe, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("recipe not found")
		}
		return nil, err
	}

	return &recipe, nil
}

// GetOwned resolves a recipe on behalf of a caller. Existence is checked
// before ownership: a missing id is ErrNotFound even for non-owners, and
// only an existing recipe belonging to someone else is ErrForbidden. Every
// recipe-scoped operation goes through this, in this exact order.
func (s *RecipeStore) GetOwned(id, userID uint) (*models.Recipe, error) {
	recipe, err := s.Get(id)

	if err != nil {
		return nil, err
	}

	if recipe.UserID != userID {
		return nil, forbiddenf("you do not own this recipe")
	}

	return recipe, nil
}

// ListByUser returns all recipes owned by the user, links resolved.
func (s *RecipeStore) ListByUser(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe

	err := s.db.Preload("Ingredients.Ingredient").Where("user_id = ?", userID).Find(&recipes).Error

	if err != nil {
		return nil, err
	}

	return recipes, nil
}

// Update overwrites the fields that are present and leaves the rest alone.
// Title uniqueness is checked on create only, not here.
func (s *RecipeStore) Update(recipe *models.Recipe, title, description *string) (*models.Recipe, error) {
	updates := make(map[string]interface{})

	if title != nil {
		updates["title"] = *title
		recipe.Title = *title
	}

	if description != nil {
		updates["description"] = *description
		recipe.Description = *description
	}

	if len(updates) == 0 {
		return recipe, nil
	}

	if err := s.db.Model(&models.Recipe{}).Where("id = ?", recipe.ID).Updates(updates).Error; err != nil {
		return nil, err
	}

	return recipe, nil
}

// Delete removes the recipe and all of its ingredient links in one
// transaction. The master list is untouched.
func (s *RecipeStore) Delete(recipe *models.Recipe) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}

		return tx.Delete(recipe).Error
	})
}

package types

import "github.com/recipebook-dev/recipebook/internal/models"

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type IngredientResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// RecipeIngredientResponse is a link joined with the master-list name.
type RecipeIngredientResponse struct {
	IngredientID uint   `json:"ingredient_id"`
	Name         string `json:"name"`
	Quantity     string `json:"quantity"`
}

type RecipeResponse struct {
	ID          uint                       `json:"id"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	UserID      uint                       `json:"user_id"`
	Ingredients []RecipeIngredientResponse `json:"ingredients"`
}

func NewRecipeResponse(recipe *models.Recipe) RecipeResponse {
	ingredients := make([]RecipeIngredientResponse, 0, len(recipe.Ingredients))

	for _, link := range recipe.Ingredients {
		ingredients = append(ingredients, RecipeIngredientResponse{
			IngredientID: link.IngredientID,
			Name:         link.Ingredient.Name,
			Quantity:     link.Quantity,
		})
	}

	return RecipeResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Description: recipe.Description,
		UserID:      recipe.UserID,
		Ingredients: ingredients,
	}
}

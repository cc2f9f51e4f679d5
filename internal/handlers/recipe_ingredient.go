package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipebook-dev/recipebook/internal/store"
	"github.com/recipebook-dev/recipebook/internal/types"
	"github.com/recipebook-dev/recipebook/internal/utils"
)

type LinkHandler struct {
	recipes *store.RecipeStore
	links   *store.LinkStore
}

func NewLinkHandler(recipes *store.RecipeStore, links *store.LinkStore) *LinkHandler {
	return &LinkHandler{recipes: recipes, links: links}
}

type AddLinkRequest struct {
	IngredientID uint   `json:"ingredient_id" binding:"required"`
	Quantity     string `json:"quantity" binding:"required"`
}

// Add links a master-list ingredient to one of the caller's recipes.
// Preconditions run in a fixed order, each with its own failure: recipe
// exists, caller owns it, ingredient exists, pair not already linked.
func (h *LinkHandler) Add(ctx *gin.Context) {
	recipeID, ok := parseIDParam(ctx, "recipe_id")

	if !ok {
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req AddLinkRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if _, err := h.recipes.GetOwned(recipeID, userID); err != nil {
		respondError(ctx, err)
		return
	}

	link, err := h.links.Add(recipeID, req.IngredientID, req.Quantity)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.RecipeIngredientResponse{
		IngredientID: link.IngredientID,
		Name:         link.Ingredient.Name,
		Quantity:     link.Quantity,
	})
}

func (h *LinkHandler) Remove(ctx *gin.Context) {
	recipeID, ok := parseIDParam(ctx, "recipe_id")

	if !ok {
		return
	}

	ingredientID, ok := parseIDParam(ctx, "ingredient_id")

	if !ok {
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if _, err := h.recipes.GetOwned(recipeID, userID); err != nil {
		respondError(ctx, err)
		return
	}

	if err := h.links.Remove(recipeID, ingredientID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

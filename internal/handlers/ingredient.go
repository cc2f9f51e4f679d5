package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipebook-dev/recipebook/internal/store"
	"github.com/recipebook-dev/recipebook/internal/types"
	"github.com/recipebook-dev/recipebook/internal/utils"
)

type IngredientHandler struct {
	ingredients *store.IngredientStore
}

func NewIngredientHandler(ingredients *store.IngredientStore) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

type CreateIngredientRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *IngredientHandler) Create(ctx *gin.Context) {
	var req CreateIngredientRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ingredient, err := h.ingredients.Create(req.Name)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.IngredientResponse{
		ID:   ingredient.ID,
		Name: ingredient.Name,
	})
}

// List returns the caller's pantry: the distinct ingredients used across
// their recipes, not the whole master list.
func (h *IngredientHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ingredients, err := h.ingredients.ListUsedByUser(userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.IngredientResponse, 0, len(ingredients))

	for _, ingredient := range ingredients {
		response = append(response, types.IngredientResponse{
			ID:   ingredient.ID,
			Name: ingredient.Name,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *IngredientHandler) Delete(ctx *gin.Context) {
	ingredientID, ok := parseIDParam(ctx, "ingredient_id")

	if !ok {
		return
	}

	if err := h.ingredients.Delete(ingredientID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipebook-dev/recipebook/internal/store"
	"github.com/recipebook-dev/recipebook/internal/types"
	"github.com/recipebook-dev/recipebook/internal/utils"
)

type RecipeHandler struct {
	recipes *store.RecipeStore
}

func NewRecipeHandler(recipes *store.RecipeStore) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

type CreateRecipeRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// UpdateRecipeRequest is a partial update: nil fields are left unchanged.
type UpdateRecipeRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (h *RecipeHandler) Create(ctx *gin.Context) {
	var req CreateRecipeRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipe, err := h.recipes.Create(userID, req.Title, req.Description)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewRecipeResponse(recipe))
}

func (h *RecipeHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipes, err := h.recipes.ListByUser(userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.RecipeResponse, 0, len(recipes))

	for i := range recipes {
		response = append(response, types.NewRecipeResponse(&recipes[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *RecipeHandler) Get(ctx *gin.Context) {
	recipeID, ok := parseIDParam(ctx, "recipe_id")

	if !ok {
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipe, err := h.recipes.GetOwned(recipeID, userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewRecipeResponse(recipe))
}

func (h *RecipeHandler) Update(ctx *gin.Context) {
	recipeID, ok := parseIDParam(ctx, "recipe_id")

	if !ok {
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req UpdateRecipeRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	recipe, err := h.recipes.GetOwned(recipeID, userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	updated, err := h.recipes.Update(recipe, req.Title, req.Description)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewRecipeResponse(updated))
}

func (h *RecipeHandler) Delete(ctx *gin.Context) {
	recipeID, ok := parseIDParam(ctx, "recipe_id")

	if !ok {
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipe, err := h.recipes.GetOwned(recipeID, userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := h.recipes.Delete(recipe); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

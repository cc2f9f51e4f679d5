package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/recipebook-dev/recipebook/internal/auth"
	"github.com/recipebook-dev/recipebook/internal/config"
	"github.com/recipebook-dev/recipebook/internal/handlers"
	"github.com/recipebook-dev/recipebook/internal/middleware"
	"github.com/recipebook-dev/recipebook/internal/store"
)

func NewRouter(conn *gorm.DB, cfg *config.Config) *gin.Engine {
	users := store.NewUserStore(conn)
	ingredients := store.NewIngredientStore(conn)
	recipes := store.NewRecipeStore(conn)
	links := store.NewLinkStore(conn)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	authHandler := handlers.NewAuthHandler(users, tokens)
	recipeHandler := handlers.NewRecipeHandler(recipes)
	ingredientHandler := handlers.NewIngredientHandler(ingredients)
	linkHandler := handlers.NewLinkHandler(recipes, links)

	requireAuth := middleware.RequireAuth(users, tokens)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", requireAuth, authHandler.Me)
		}

		ingredientGroup := api.Group("/ingredients")
		{
			// The master list is shared; adding to it needs no account.
			ingredientGroup.POST("", ingredientHandler.Create)
			ingredientGroup.DELETE("/:ingredient_id", ingredientHandler.Delete)

			// Listing is the caller's pantry view, so it does.
			ingredientGroup.GET("", requireAuth, ingredientHandler.List)
		}

		recipeGroup := api.Group("/recipes", requireAuth)
		{
			recipeGroup.POST("", recipeHandler.Create)
			recipeGroup.GET("", recipeHandler.List)
			recipeGroup.GET("/:recipe_id", recipeHandler.Get)
			recipeGroup.PUT("/:recipe_id", recipeHandler.Update)
			recipeGroup.DELETE("/:recipe_id", recipeHandler.Delete)

			recipeGroup.POST("/:recipe_id/ingredients", linkHandler.Add)
			recipeGroup.DELETE("/:recipe_id/ingredients/:ingredient_id", linkHandler.Remove)
		}
	}

	return r
}

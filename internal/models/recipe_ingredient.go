package models

import "time"

// RecipeIngredient links a recipe to a master-list ingredient with a
// free-text quantity ("2 cups"). The composite primary key makes a second
// link for the same (recipe, ingredient) pair impossible at the storage
// level, not just in the application check.
type RecipeIngredient struct {
	RecipeID     uint   `gorm:"primaryKey;autoIncrement:false"`
	IngredientID uint   `gorm:"primaryKey;autoIncrement:false"`
	Quantity     string `gorm:"not null"`
	CreatedAt    time.Time

	// Relationships
	Recipe     Recipe     `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Ingredient Ingredient `gorm:"foreignKey:IngredientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

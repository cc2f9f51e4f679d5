package models

// Ingredient is a row in the global master list. It belongs to no user;
// uniqueness of the name is case-insensitive (see db.Migrate for the
// functional index backing that).
type Ingredient struct {
	BaseModel

	Name string `gorm:"uniqueIndex;not null"`

	// Relationships
	RecipeLinks []RecipeIngredient `gorm:"foreignKey:IngredientID"`
}

package models

type Recipe struct {
	BaseModel

	Title       string `gorm:"not null;index"`
	Description string
	UserID      uint `gorm:"not null;index"` // Owner, immutable after create

	// Relationships
	Owner       User               `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

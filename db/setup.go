package db

import (
	"gorm.io/gorm"

	"github.com/recipebook-dev/recipebook/internal/models"
)

// Connect opens the database and hands the connection back to the caller.
// Nothing in this package holds onto it; the handle is passed explicitly
// into every component that needs one.
func Connect(dialector gorm.Dialector) (*gorm.DB, error) {
	conn, err := gorm.Open(dialector, &gorm.Config{})

	if err != nil {
		return nil, err
	}

	return conn, nil
}

// Migrate creates the schema plus the unique indexes that backstop the
// application-level duplicate checks. Check-then-insert alone is not
// race-free under concurrent requests, so case-insensitive uniqueness of
// ingredient names and per-owner recipe titles is also enforced here at
// the database level.
func Migrate(conn *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
	}

	migrator := conn.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := conn.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_ingredients_name_lower ON ingredients (LOWER(name))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_recipes_owner_title_lower ON recipes (user_id, LOWER(title))`,
	}

	for _, stmt := range indexes {
		if err := conn.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}

package store

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/recipebook-dev/recipebook/db"
	"github.com/recipebook-dev/recipebook/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := db.Connect(sqlite.Open(":memory:"))
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)

	// One connection, or each pooled conn would see its own :memory: db.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(conn))

	return conn
}

func registerTestUser(t *testing.T, users *UserStore, email string) *models.User {
	t.Helper()

	user, err := users.Register("testuser", email, "password123")
	require.NoError(t, err)

	return user
}

func TestRegisterAndAuthenticate(t *testing.T) {
	conn := newTestDB(t)
	users := NewUserStore(conn)

	user, err := users.Register("alice", "alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "password123", user.PasswordHash, "plaintext must never be persisted")

	authed, err := users.Authenticate("alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	conn := newTestDB(t)
	users := NewUserStore(conn)

	registerTestUser(t, users, "alice@example.com")

	_, err := users.Register("different-name", "alice@example.com", "other-password")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAuthenticateBadCredentials(t *testing.T) {
	conn := newTestDB(t)
	users := NewUserStore(conn)

	registerTestUser(t, users, "alice@example.com")

	_, wrongPassword := users.Authenticate("alice@example.com", "not-the-password")
	_, unknownEmail := users.Authenticate("nobody@example.com", "password123")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)

	// Same message either way, so callers cannot enumerate accounts.
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestIngredientCaseInsensitiveUniqueness(t *testing.T) {
	conn := newTestDB(t)
	ingredients := NewIngredientStore(conn)

	first, err := ingredients.Create("Tomato")
	require.NoError(t, err)

	_, err = ingredients.Create("tomato")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	found, err := ingredients.GetByName("TOMATO")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestRecipeTitleUniquePerOwnerNotGlobal(t *testing.T) {
	conn := newTestDB(t)
	users := NewUserStore(conn)
	recipes := NewRecipeStore(conn)

	alice := registerTestUser(t, users, "alice@example.com")
	bob := registerTestUser(t, users, "bob@example.com")

	_, err := recipes.Create(alice.ID, "Soup", "hot")
	require.NoError(t, err)

	_, err = recipes.Create(alice.ID, "soup", "still hot")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = recipes.Create(bob.ID, "Soup", "bob's soup")
	assert.NoError(t, err, "title uniqueness is per owner, not global")
}

func TestGetOwnedChecksExistenceBeforeOwnership(t *testing.T) {
	conn := newTestDB(t)
	users := NewUserStore(conn)
	recipes := NewRecipeStore(conn)

	alice := registerTestUser(t, users, "alice@example.com")
	bob := registerTestUser(t, users, "bob@example.com")

	recipe, err := recipes.Create(alice.ID, "Soup", "")
	require.NoError(t, err)

	_, err = recipes.GetOwned(99999, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound, "nonexistent id is not-found even for non-owners")

	_, err = recipes.GetOwned(recipe.ID, bob.ID)
	assert.ErrorIs(t, err, ErrForbidden, "existing id owned by someone else is forbidden")

	owned, err := recipes.GetOwned(recipe.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, owned.ID)
}

func TestRecipeUpdatePartial(t *testing.T) {
	conn := newTestDB(t)
	users := NewUserStore(conn)
	recipes := NewRecipeStore(conn)

	alice := registerTestUser(t, users, "alice@example.com")

	recipe, err := recipes.Create(alice.ID, "Soup", "original description")
	require.NoError(t, err)

	newTitle := "Stew"

	updated, err := recipes.Update(recipe, &newTitle, nil)
	require.NoError(t, err)
	assert.Equal(t, "Stew", updated.Title)
	assert.Equal(t, "original description", updated.Description)

	reloaded, err := recipes.Get(recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stew", reloaded.Title)
	assert.Equal(t, "original description", reloaded.Description)
	assert.Equal(t, alice.ID, reloaded.UserID, "owner never changes")
}

func TestRecipeUpdateSkipsTitleUniquenessCheck(t *testing.T) {
	conn := newTestDB(t)
	users := NewUserStore(conn)
	recipes := NewRecipeStore(conn)

	alice := registerTestUser(t, users, "alice@example.com")

	_, err := recipes.Create(alice.ID, "Soup", "")
	require.NoError(t, err)

	other, err := recipes.Create(alice.ID, "Stew", "")
	require.NoError(t, err)

	// Update does not re-check uniqueness; only the database backstop can
	// refuse it. In-memory sqlite enforces the same functional index, so
	// this documents the asymmetry: create rejects early, update does not.
	title := "Soup"
	_, err = recipes.Update(other, &title, nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConflict, "update path has no application-level uniqueness check")
}

func TestLinkLifecycle(t *testing.T) {
	conn := newTestDB(t)
	users := NewUserStore(conn)
	recipes := NewRecipeStore(conn)
	ingredients := NewIngredientStore(conn)
	links := NewLinkStore(conn)

	alice := registerTestUser(t, users, "alice@example.com")

	recipe, err := recipes.Create(alice.ID, "Soup", "")
	require.NoError(t, err)

	tomato, err := ingredients.Create("Tomato")
	require.NoError(t, err)

	link, err := links.Add(recipe.ID, tomato.ID, "2 cups")
	require.NoError(t, err)
	assert.Equal(t, "2 cups", link.Quantity)
	assert.Equal(t, "Tomato", link.Ingredient.Name, "link is returned with the display name resolved")

	_, err = links.Add(recipe.ID, tomato.ID, "3 cups")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict, "second link for the same pair is a conflict, not an upsert")

	require.NoError(t, links.Remove(recipe.ID, tomato.ID))

	relinked, err := links.Add(recipe.ID, tomato.ID, "3 cups")
	require.NoError(t, err)
	assert.Equal(t, "3 cups", relinked.Quantity)
}

func TestLinkAddUnknownIngredient(t *testing.T) {
	conn := newTestDB(t)
	users := NewUserStore(conn)
	recipes := NewRecipeStore(conn)
	links := NewLinkStore(conn)

	alice := registerTestUser(t, users, "alice@example.com")

	recipe, err := recipes.Create(alice.ID, "Soup", "")
	require.NoError(t, err)

	_, err = links.Add(recipe.ID, 42, "1 pinch")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "42", "failure names the missing ingredient id")
}

func TestLinkRemoveAbsent(t *testing.T) {
	conn := newTestDB(t)
	users := NewUserStore(conn)
	recipes := NewRecipeStore(conn)
	ingredients := NewIngredientStore(conn)
	links := NewLinkStore(conn)

	alice := registerTestUser(t, users, "alice@example.com")

	recipe, err := recipes.Create(alice.ID, "Soup", "")
	require.NoError(t, err)

	tomato, err := ingredients.Create("Tomato")
	require.NoError(t, err)

	err = links.Remove(recipe.ID, tomato.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecipeDeleteCascadesLinksOnly(t *testing.T) {
	conn := newTestDB(t)
	users := NewUserStore(conn)
	recipes := NewRecipeStore(conn)
	ingredients := NewIngredientStore(conn)
	links := NewLinkStore(conn)

	alice := registerTestUser(t, users, "alice@example.com")

	recipe, err := recipes.Create(alice.ID, "Soup", "")
	require.NoError(t, err)

	tomato, err := ingredients.Create("Tomato")
	require.NoError(t, err)

	onion, err := ingredients.Create("Onion")
	require.NoError(t, err)

	_, err = links.Add(recipe.ID, tomato.ID, "2 cups")
	require.NoError(t, err)

	_, err = links.Add(recipe.ID, onion.ID, "1")
	require.NoError(t, err)

	require.NoError(t, recipes.Delete(recipe))

	_, err = recipes.Get(recipe.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = links.Find(recipe.ID, tomato.ID)
	assert.ErrorIs(t, err, ErrNotFound, "links must not be left orphaned")

	_, err = links.Find(recipe.ID, onion.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ingredients.GetByID(tomato.ID)
	assert.NoError(t, err, "master list entries survive recipe deletion")

	_, err = ingredients.GetByID(onion.ID)
	assert.NoError(t, err)
}

func TestPantryViewIsScopedToUser(t *testing.T) {
	conn := newTestDB(t)
	users := NewUserStore(conn)
	recipes := NewRecipeStore(conn)
	ingredients := NewIngredientStore(conn)
	links := NewLinkStore(conn)

	alice := registerTestUser(t, users, "alice@example.com")
	bob := registerTestUser(t, users, "bob@example.com")

	aliceRecipe, err := recipes.Create(alice.ID, "Soup", "")
	require.NoError(t, err)

	aliceSalad, err := recipes.Create(alice.ID, "Salad", "")
	require.NoError(t, err)

	bobRecipe, err := recipes.Create(bob.ID, "Curry", "")
	require.NoError(t, err)

	tomato, err := ingredients.Create("Tomato")
	require.NoError(t, err)

	onion, err := ingredients.Create("Onion")
	require.NoError(t, err)

	cumin, err := ingredients.Create("Cumin")
	require.NoError(t, err)

	// Tomato appears in both of alice's recipes; it must come back once.
	_, err = links.Add(aliceRecipe.ID, tomato.ID, "2 cups")
	require.NoError(t, err)

	_, err = links.Add(aliceSalad.ID, tomato.ID, "1 cup")
	require.NoError(t, err)

	_, err = links.Add(aliceRecipe.ID, onion.ID, "1")
	require.NoError(t, err)

	_, err = links.Add(bobRecipe.ID, cumin.ID, "1 tsp")
	require.NoError(t, err)

	pantry, err := ingredients.ListUsedByUser(alice.ID)
	require.NoError(t, err)

	names := make([]string, 0, len(pantry))
	for _, ingredient := range pantry {
		names = append(names, ingredient.Name)
	}

	assert.ElementsMatch(t, []string{"Tomato", "Onion"}, names)
}

func TestIngredientDeleteBlockedWhileReferenced(t *testing.T) {
	conn := newTestDB(t)
	users := NewUserStore(conn)
	recipes := NewRecipeStore(conn)
	ingredients := NewIngredientStore(conn)
	links := NewLinkStore(conn)

	alice := registerTestUser(t, users, "alice@example.com")

	recipe, err := recipes.Create(alice.ID, "Soup", "")
	require.NoError(t, err)

	tomato, err := ingredients.Create("Tomato")
	require.NoError(t, err)

	_, err = links.Add(recipe.ID, tomato.ID, "2 cups")
	require.NoError(t, err)

	err = ingredients.Delete(tomato.ID)
	assert.ErrorIs(t, err, ErrConflict)

	require.NoError(t, links.Remove(recipe.ID, tomato.ID))
	require.NoError(t, ingredients.Delete(tomato.ID))

	_, err = ingredients.GetByID(tomato.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIngredientDeleteUnknown(t *testing.T) {
	conn := newTestDB(t)
	ingredients := NewIngredientStore(conn)

	err := ingredients.Delete(1234)
	assert.ErrorIs(t, err, ErrNotFound)
}

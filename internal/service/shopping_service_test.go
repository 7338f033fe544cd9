package service

import (
	"testing"
	"time"

	"foodgram-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type shoppingEnv struct {
	db              *gorm.DB
	relationService *RelationService
	shoppingService *ShoppingService
}

func newShoppingEnv(t *testing.T) *shoppingEnv {
	t.Helper()
	db := newTestDB(t)
	return &shoppingEnv{
		db: db,
		relationService: NewRelationService(
			repository.NewRelationRepository(db),
			repository.NewRecipeRepository(db),
			repository.NewUserRepository(db),
		),
		shoppingService: NewShoppingService(repository.NewShoppingRepository(db)),
	}
}

func TestFormatShoppingList(t *testing.T) {
	totals := []repository.IngredientTotal{
		{Name: "flour", MeasurementUnit: "g", Total: 300},
		{Name: "salt", MeasurementUnit: "g", Total: 5},
	}
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	got := formatShoppingList(totals, now)

	want := "Foodgram\n购物清单:\n\n" +
		"flour - 300 g\n" +
		"salt - 5 g\n" +
		"\n生成日期: 2026-03-15\n"
	assert.Equal(t, want, got)
}

func TestBuildShoppingList_AggregatesAcrossRecipes(t *testing.T) {
	env := newShoppingEnv(t)
	author := mustCreateUser(t, env.db, "author")
	buyer := mustCreateUser(t, env.db, "buyer")

	flour := mustCreateIngredient(t, env.db, "flour", "g")
	salt := mustCreateIngredient(t, env.db, "salt", "g")

	bread := mustCreateRecipe(t, env.db, author, "面包",
		ingredientAmount{flour, 200}, ingredientAmount{salt, 5})
	pancake := mustCreateRecipe(t, env.db, author, "薄饼",
		ingredientAmount{flour, 100})

	_, err := env.relationService.AddToCart(buyer.ID, bread.ID)
	require.NoError(t, err)
	_, err = env.relationService.AddToCart(buyer.ID, pancake.ID)
	require.NoError(t, err)

	filename, content, err := env.shoppingService.BuildShoppingList(buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, "shopping_cart.txt", filename)

	text := string(content)
	// 同名同单位合并求和，按名称升序
	assert.Contains(t, text, "flour - 300 g\nsalt - 5 g\n")
	assert.Contains(t, text, "Foodgram\n购物清单:\n")
	assert.Contains(t, text, "\n生成日期: ")
}

func TestBuildShoppingList_SameNameDifferentUnitNotMerged(t *testing.T) {
	env := newShoppingEnv(t)
	author := mustCreateUser(t, env.db, "author")
	buyer := mustCreateUser(t, env.db, "buyer")

	sugarG := mustCreateIngredient(t, env.db, "sugar", "g")
	sugarCube := mustCreateIngredient(t, env.db, "sugar", "块")

	cake := mustCreateRecipe(t, env.db, author, "蛋糕",
		ingredientAmount{sugarG, 50}, ingredientAmount{sugarCube, 3})

	_, err := env.relationService.AddToCart(buyer.ID, cake.ID)
	require.NoError(t, err)

	_, content, err := env.shoppingService.BuildShoppingList(buyer.ID)
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "sugar - 50 g\n")
	assert.Contains(t, text, "sugar - 3 块\n")
}

func TestBuildShoppingList_EmptyCart(t *testing.T) {
	env := newShoppingEnv(t)
	buyer := mustCreateUser(t, env.db, "buyer")

	_, _, err := env.shoppingService.BuildShoppingList(buyer.ID)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

package service

import (
	"testing"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recipeEnv struct {
	db              *gorm.DB
	recipeService   *RecipeService
	relationService *RelationService
}

func newRecipeEnv(t *testing.T) *recipeEnv {
	t.Helper()
	db := newTestDB(t)
	recipeRepo := repository.NewRecipeRepository(db)
	relationRepo := repository.NewRelationRepository(db)
	userRepo := repository.NewUserRepository(db)
	return &recipeEnv{
		db: db,
		recipeService: NewRecipeService(
			recipeRepo,
			repository.NewIngredientRepository(db),
			repository.NewTagRepository(db),
			relationRepo,
		),
		relationService: NewRelationService(relationRepo, recipeRepo, userRepo),
	}
}

func TestCreateRecipe_RoundTrip(t *testing.T) {
	env := newRecipeEnv(t)
	author := mustCreateUser(t, env.db, "author")
	flour := mustCreateIngredient(t, env.db, "flour", "g")
	egg := mustCreateIngredient(t, env.db, "egg", "个")
	breakfast := mustCreateTag(t, env.db, "早餐", "breakfast")

	req := &dto.RecipeCreateRequest{
		Name:        "鸡蛋饼",
		Text:        "搅拌后煎熟",
		CookingTime: 15,
		Ingredients: []dto.IngredientAmountRequest{
			{ID: flour.ID, Amount: 200},
			{ID: egg.ID, Amount: 2},
		},
		Tags: []int64{breakfast.ID},
	}

	info, err := env.recipeService.CreateRecipe(author.ID, req)
	require.NoError(t, err)

	assert.Equal(t, "鸡蛋饼", info.Name)
	assert.Equal(t, 15, info.CookingTime)
	assert.Equal(t, author.ID, info.Author.ID)
	assert.False(t, info.IsFavorited)
	assert.False(t, info.IsInShoppingCart)

	require.Len(t, info.Tags, 1)
	assert.Equal(t, "breakfast", info.Tags[0].Slug)

	require.Len(t, info.Ingredients, 2)
	amounts := map[string]int{}
	for _, ing := range info.Ingredients {
		amounts[ing.Name] = ing.Amount
	}
	assert.Equal(t, 200, amounts["flour"])
	assert.Equal(t, 2, amounts["egg"])
}

func TestCreateRecipe_DuplicateIngredientWritesNothing(t *testing.T) {
	env := newRecipeEnv(t)
	author := mustCreateUser(t, env.db, "author")
	flour := mustCreateIngredient(t, env.db, "flour", "g")
	tag := mustCreateTag(t, env.db, "早餐", "breakfast")

	req := &dto.RecipeCreateRequest{
		Name:        "失败的菜谱",
		Text:        "不应入库",
		CookingTime: 10,
		Ingredients: []dto.IngredientAmountRequest{
			{ID: flour.ID, Amount: 100},
			{ID: flour.ID, Amount: 200},
		},
		Tags: []int64{tag.ID},
	}

	_, err := env.recipeService.CreateRecipe(author.ID, req)
	assert.ErrorIs(t, err, ErrDuplicateIngredient)

	var count int64
	require.NoError(t, env.db.Model(&model.Recipe{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateRecipe_UnknownIngredientAndTag(t *testing.T) {
	env := newRecipeEnv(t)
	author := mustCreateUser(t, env.db, "author")
	flour := mustCreateIngredient(t, env.db, "flour", "g")
	tag := mustCreateTag(t, env.db, "早餐", "breakfast")

	_, err := env.recipeService.CreateRecipe(author.ID, &dto.RecipeCreateRequest{
		Name:        "菜谱",
		Text:        "做法",
		CookingTime: 10,
		Ingredients: []dto.IngredientAmountRequest{{ID: 9999, Amount: 100}},
		Tags:        []int64{tag.ID},
	})
	assert.ErrorIs(t, err, ErrIngredientNotFound)

	_, err = env.recipeService.CreateRecipe(author.ID, &dto.RecipeCreateRequest{
		Name:        "菜谱",
		Text:        "做法",
		CookingTime: 10,
		Ingredients: []dto.IngredientAmountRequest{{ID: flour.ID, Amount: 100}},
		Tags:        []int64{9999},
	})
	assert.ErrorIs(t, err, ErrTagNotFound)
}

func TestUpdateRecipe_AuthorOnly(t *testing.T) {
	env := newRecipeEnv(t)
	author := mustCreateUser(t, env.db, "author")
	other := mustCreateUser(t, env.db, "other")
	flour := mustCreateIngredient(t, env.db, "flour", "g")
	recipe := mustCreateRecipe(t, env.db, author, "原名", ingredientAmount{flour, 100})

	newName := "新名"
	_, err := env.recipeService.UpdateRecipe(other.ID, recipe.ID, &dto.RecipeUpdateRequest{Name: &newName})
	assert.ErrorIs(t, err, ErrNotRecipeAuthor)

	info, err := env.recipeService.UpdateRecipe(author.ID, recipe.ID, &dto.RecipeUpdateRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "新名", info.Name)
}

func TestUpdateRecipe_ReplacesIngredients(t *testing.T) {
	env := newRecipeEnv(t)
	author := mustCreateUser(t, env.db, "author")
	flour := mustCreateIngredient(t, env.db, "flour", "g")
	egg := mustCreateIngredient(t, env.db, "egg", "个")
	recipe := mustCreateRecipe(t, env.db, author, "菜谱",
		ingredientAmount{flour, 100}, ingredientAmount{egg, 2})

	info, err := env.recipeService.UpdateRecipe(author.ID, recipe.ID, &dto.RecipeUpdateRequest{
		Ingredients: []dto.IngredientAmountRequest{{ID: egg.ID, Amount: 5}},
	})
	require.NoError(t, err)

	require.Len(t, info.Ingredients, 1)
	assert.Equal(t, "egg", info.Ingredients[0].Name)
	assert.Equal(t, 5, info.Ingredients[0].Amount)

	var count int64
	require.NoError(t, env.db.Model(&model.RecipeIngredient{}).
		Where("recipe_id = ?", recipe.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteRecipe_CascadesRelations(t *testing.T) {
	env := newRecipeEnv(t)
	author := mustCreateUser(t, env.db, "author")
	fan := mustCreateUser(t, env.db, "fan")
	flour := mustCreateIngredient(t, env.db, "flour", "g")
	recipe := mustCreateRecipe(t, env.db, author, "菜谱", ingredientAmount{flour, 100})

	_, err := env.relationService.FavoriteRecipe(fan.ID, recipe.ID)
	require.NoError(t, err)
	_, err = env.relationService.AddToCart(fan.ID, recipe.ID)
	require.NoError(t, err)

	_, err = env.recipeService.GetRecipe(recipe.ID, nil)
	require.NoError(t, err)

	err = env.recipeService.DeleteRecipe(fan.ID, recipe.ID)
	assert.ErrorIs(t, err, ErrNotRecipeAuthor)

	require.NoError(t, env.recipeService.DeleteRecipe(author.ID, recipe.ID))

	_, err = env.recipeService.GetRecipe(recipe.ID, nil)
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	var favorites, carts, recipeIngredients int64
	require.NoError(t, env.db.Model(&model.Favorite{}).Count(&favorites).Error)
	require.NoError(t, env.db.Model(&model.ShoppingCart{}).Count(&carts).Error)
	require.NoError(t, env.db.Model(&model.RecipeIngredient{}).Count(&recipeIngredients).Error)
	assert.Zero(t, favorites)
	assert.Zero(t, carts)
	assert.Zero(t, recipeIngredients)
}

func TestListRecipes_Filters(t *testing.T) {
	env := newRecipeEnv(t)
	alice := mustCreateUser(t, env.db, "alice")
	bob := mustCreateUser(t, env.db, "bob")
	breakfast := mustCreateTag(t, env.db, "早餐", "breakfast")
	dinner := mustCreateTag(t, env.db, "晚餐", "dinner")

	r1 := mustCreateRecipe(t, env.db, alice, "菜谱一")
	r2 := mustCreateRecipe(t, env.db, bob, "菜谱二")
	mustCreateRecipe(t, env.db, bob, "菜谱三")

	require.NoError(t, env.db.Model(&model.Recipe{ID: r1.ID}).Association("Tags").Append(breakfast))
	require.NoError(t, env.db.Model(&model.Recipe{ID: r2.ID}).Association("Tags").Append(dinner))

	// 按作者筛选
	data, err := env.recipeService.ListRecipes(repository.RecipeFilter{AuthorID: &bob.ID}, nil, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Total)

	// 标签任一匹配
	data, err = env.recipeService.ListRecipes(repository.RecipeFilter{TagSlugs: []string{"breakfast", "dinner"}}, nil, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Total)

	// 收藏筛选与作者筛选取交集
	_, err = env.relationService.FavoriteRecipe(alice.ID, r2.ID)
	require.NoError(t, err)

	data, err = env.recipeService.ListRecipes(repository.RecipeFilter{
		AuthorID:    &bob.ID,
		FavoritedBy: &alice.ID,
	}, &alice.ID, 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(1), data.Total)
	assert.Equal(t, r2.ID, data.Recipes[0].ID)
	assert.True(t, data.Recipes[0].IsFavorited)
}

func TestListRecipes_AnonymousFlagsFalse(t *testing.T) {
	env := newRecipeEnv(t)
	author := mustCreateUser(t, env.db, "author")
	fan := mustCreateUser(t, env.db, "fan")
	recipe := mustCreateRecipe(t, env.db, author, "菜谱")

	_, err := env.relationService.FavoriteRecipe(fan.ID, recipe.ID)
	require.NoError(t, err)

	data, err := env.recipeService.ListRecipes(repository.RecipeFilter{}, nil, 1, 20)
	require.NoError(t, err)
	require.Len(t, data.Recipes, 1)
	assert.False(t, data.Recipes[0].IsFavorited)
	assert.False(t, data.Recipes[0].IsInShoppingCart)
}

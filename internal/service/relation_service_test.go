package service

import (
	"testing"

	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type relationEnv struct {
	db              *gorm.DB
	relationService *RelationService
}

func newRelationEnv(t *testing.T) *relationEnv {
	t.Helper()
	db := newTestDB(t)
	return &relationEnv{
		db: db,
		relationService: NewRelationService(
			repository.NewRelationRepository(db),
			repository.NewRecipeRepository(db),
			repository.NewUserRepository(db),
		),
	}
}

func TestFavoriteRecipe(t *testing.T) {
	env := newRelationEnv(t)
	author := mustCreateUser(t, env.db, "author")
	viewer := mustCreateUser(t, env.db, "viewer")
	recipe := mustCreateRecipe(t, env.db, author, "红烧肉")

	short, err := env.relationService.FavoriteRecipe(viewer.ID, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, short.ID)
	assert.Equal(t, "红烧肉", short.Name)

	// 重复收藏由唯一索引拦截，且不会产生第二行
	_, err = env.relationService.FavoriteRecipe(viewer.ID, recipe.ID)
	assert.ErrorIs(t, err, ErrAlreadyFavorited)

	var count int64
	require.NoError(t, env.db.Model(&model.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", viewer.ID, recipe.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFavoriteRecipe_NotFound(t *testing.T) {
	env := newRelationEnv(t)
	viewer := mustCreateUser(t, env.db, "viewer")

	_, err := env.relationService.FavoriteRecipe(viewer.ID, 9999)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestUnfavoriteRecipe_WithoutPriorFavorite(t *testing.T) {
	env := newRelationEnv(t)
	author := mustCreateUser(t, env.db, "author")
	viewer := mustCreateUser(t, env.db, "viewer")
	recipe := mustCreateRecipe(t, env.db, author, "红烧肉")

	err := env.relationService.UnfavoriteRecipe(viewer.ID, recipe.ID)
	assert.ErrorIs(t, err, ErrNotFavorited)
}

func TestShoppingCart_AddAndRemove(t *testing.T) {
	env := newRelationEnv(t)
	author := mustCreateUser(t, env.db, "author")
	viewer := mustCreateUser(t, env.db, "viewer")
	recipe := mustCreateRecipe(t, env.db, author, "蛋炒饭")

	short, err := env.relationService.AddToCart(viewer.ID, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, short.ID)

	_, err = env.relationService.AddToCart(viewer.ID, recipe.ID)
	assert.ErrorIs(t, err, ErrAlreadyInCart)

	require.NoError(t, env.relationService.RemoveFromCart(viewer.ID, recipe.ID))

	err = env.relationService.RemoveFromCart(viewer.ID, recipe.ID)
	assert.ErrorIs(t, err, ErrNotInCart)
}

func TestSubscribe_Self(t *testing.T) {
	env := newRelationEnv(t)
	user := mustCreateUser(t, env.db, "loner")

	_, err := env.relationService.Subscribe(user.ID, user.ID, 0)
	assert.ErrorIs(t, err, ErrSelfSubscribe)

	var count int64
	require.NoError(t, env.db.Model(&model.Subscribe{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSubscribe_Flow(t *testing.T) {
	env := newRelationEnv(t)
	author := mustCreateUser(t, env.db, "author")
	reader := mustCreateUser(t, env.db, "reader")
	mustCreateRecipe(t, env.db, author, "菜谱一")
	mustCreateRecipe(t, env.db, author, "菜谱二")

	info, err := env.relationService.Subscribe(reader.ID, author.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, author.ID, info.ID)
	assert.True(t, info.IsSubscribed)
	assert.Equal(t, int64(2), info.RecipesCount)
	assert.Len(t, info.Recipes, 2)

	_, err = env.relationService.Subscribe(reader.ID, author.ID, 0)
	assert.ErrorIs(t, err, ErrAlreadySubscribed)

	require.NoError(t, env.relationService.Unsubscribe(reader.ID, author.ID))

	err = env.relationService.Unsubscribe(reader.ID, author.ID)
	assert.ErrorIs(t, err, ErrNotSubscribed)
}

func TestSubscribe_UnknownAuthor(t *testing.T) {
	env := newRelationEnv(t)
	reader := mustCreateUser(t, env.db, "reader")

	_, err := env.relationService.Subscribe(reader.ID, 9999, 0)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListSubscriptions_RecipesLimit(t *testing.T) {
	env := newRelationEnv(t)
	author := mustCreateUser(t, env.db, "author")
	reader := mustCreateUser(t, env.db, "reader")
	mustCreateRecipe(t, env.db, author, "菜谱一")
	mustCreateRecipe(t, env.db, author, "菜谱二")
	mustCreateRecipe(t, env.db, author, "菜谱三")

	_, err := env.relationService.Subscribe(reader.ID, author.ID, 0)
	require.NoError(t, err)

	data, err := env.relationService.ListSubscriptions(reader.ID, 1, 20, 2)
	require.NoError(t, err)
	require.Len(t, data.Subscriptions, 1)
	assert.Equal(t, int64(1), data.Total)

	sub := data.Subscriptions[0]
	assert.Equal(t, author.ID, sub.ID)
	assert.Len(t, sub.Recipes, 2)
	assert.Equal(t, int64(3), sub.RecipesCount)
}

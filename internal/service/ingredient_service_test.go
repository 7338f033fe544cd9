package service

import (
	"context"
	"testing"

	"foodgram-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ES 未初始化时搜索走数据库前缀匹配
func TestSearchIngredients_DatabaseFallback(t *testing.T) {
	db := newTestDB(t)
	mustCreateIngredient(t, db, "flour", "g")
	mustCreateIngredient(t, db, "flaxseed", "g")
	mustCreateIngredient(t, db, "salt", "g")

	ingredientService := NewIngredientService(repository.NewIngredientRepository(db))

	items, err := ingredientService.SearchIngredients(context.Background(), "fl")
	require.NoError(t, err)
	require.Len(t, items, 2)
	// 按名称升序
	assert.Equal(t, "flaxseed", items[0].Name)
	assert.Equal(t, "flour", items[1].Name)

	items, err = ingredientService.SearchIngredients(context.Background(), "pepper")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetIngredient(t *testing.T) {
	db := newTestDB(t)
	flour := mustCreateIngredient(t, db, "flour", "g")

	ingredientService := NewIngredientService(repository.NewIngredientRepository(db))

	info, err := ingredientService.GetIngredient(flour.ID)
	require.NoError(t, err)
	assert.Equal(t, "flour", info.Name)
	assert.Equal(t, "g", info.MeasurementUnit)

	_, err = ingredientService.GetIngredient(9999)
	assert.ErrorIs(t, err, ErrIngredientNotFound)
}

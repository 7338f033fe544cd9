package repository

import (
	"foodgram-go/internal/model"

	"gorm.io/gorm"
)

// IngredientTotal 购物清单聚合结果行
// 按（名称+计量单位）分组，同名不同单位的食材不会合并
type IngredientTotal struct {
	Name            string `gorm:"column:name"`
	MeasurementUnit string `gorm:"column:measurement_unit"`
	Total           int64  `gorm:"column:total"`
}

type ShoppingRepository struct {
	db *gorm.DB
}

func NewShoppingRepository(db *gorm.DB) *ShoppingRepository {
	return &ShoppingRepository{db: db}
}

// CartCount 统计用户购物车中的菜谱数
func (r *ShoppingRepository) CartCount(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.ShoppingCart{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CartIngredientTotals 聚合用户购物车中全部菜谱的食材用量
// 一条 group-by-and-sum 查询，结果按食材名称升序
func (r *ShoppingRepository) CartIngredientTotals(userID int64) ([]IngredientTotal, error) {
	var totals []IngredientTotal
	err := r.db.Model(&model.RecipeIngredient{}).
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS total").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_carts.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name ASC").
		Scan(&totals).Error
	return totals, err
}

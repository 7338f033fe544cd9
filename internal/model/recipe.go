package model

import "time"

// Recipe 菜谱模型
type Recipe struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:菜谱ID" json:"id"`
	AuthorID    int64     `gorm:"not null;index:idx_recipes_author_id;comment:作者ID" json:"author_id"`
	Name        string    `gorm:"size:200;not null;comment:菜谱名称" json:"name"`
	Text        string    `gorm:"type:text;not null;comment:做法描述" json:"text"`
	CookingTime int       `gorm:"not null;comment:烹饪时间（分钟）" json:"cooking_time"`
	Image       *string   `gorm:"size:500;comment:图片地址" json:"image"`
	Thumbnail   *string   `gorm:"size:500;comment:缩略图地址" json:"thumbnail"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_recipes_created_at;comment:发布时间" json:"created_at"`

	// 关联关系
	Author      User               `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Tags        []Tag              `gorm:"many2many:recipe_tags" json:"tags,omitempty"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients,omitempty"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient 菜谱与食材的中间模型，记录用量
// 同一菜谱中同一食材只能出现一次
type RecipeIngredient struct {
	ID           int64 `gorm:"primaryKey;autoIncrement;comment:记录ID" json:"id"`
	RecipeID     int64 `gorm:"not null;uniqueIndex:uq_recipe_ingredient;index:idx_recipe_ingredients_recipe_id;comment:菜谱ID" json:"recipe_id"`
	IngredientID int64 `gorm:"not null;uniqueIndex:uq_recipe_ingredient;comment:食材ID" json:"ingredient_id"`
	Amount       int   `gorm:"not null;comment:用量" json:"amount"`

	// 关联关系
	Ingredient Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"ingredient,omitempty"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

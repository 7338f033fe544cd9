package dto

import "time"

// IngredientAmountRequest 菜谱创建/更新时的食材用量
type IngredientAmountRequest struct {
	ID     int64 `json:"id" binding:"required"`
	Amount int   `json:"amount" binding:"required,min=1"`
}

// RecipeCreateRequest 菜谱创建请求
type RecipeCreateRequest struct {
	Name        string                    `json:"name" binding:"required,min=1,max=200"`
	Text        string                    `json:"text" binding:"required"`
	CookingTime int                       `json:"cooking_time" binding:"required,min=1"`
	Ingredients []IngredientAmountRequest `json:"ingredients" binding:"required,min=1,dive"`
	Tags        []int64                   `json:"tags" binding:"required,min=1"`
}

// RecipeUpdateRequest 菜谱更新请求（部分更新）
type RecipeUpdateRequest struct {
	Name        *string                   `json:"name" binding:"omitempty,min=1,max=200"`
	Text        *string                   `json:"text" binding:"omitempty"`
	CookingTime *int                      `json:"cooking_time" binding:"omitempty,min=1"`
	Ingredients []IngredientAmountRequest `json:"ingredients" binding:"omitempty,min=1,dive"`
	Tags        []int64                   `json:"tags" binding:"omitempty,min=1"`
}

// RecipeIngredientInfo 菜谱中的食材用量视图
type RecipeIngredientInfo struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeShort 菜谱简要视图（收藏/购物车/订阅嵌入用）
type RecipeShort struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Image       *string `json:"image"`
	Thumbnail   *string `json:"thumbnail"`
	CookingTime int     `json:"cooking_time"`
}

// RecipeInfo 菜谱完整视图
// IsFavorited / IsInShoppingCart 为当前请求者视角的标记，匿名请求恒为 false
type RecipeInfo struct {
	ID               int64                  `json:"id"`
	Tags             []TagInfo              `json:"tags"`
	Author           UserInfo               `json:"author"`
	Ingredients      []RecipeIngredientInfo `json:"ingredients"`
	IsFavorited      bool                   `json:"is_favorited"`
	IsInShoppingCart bool                   `json:"is_in_shopping_cart"`
	Name             string                 `json:"name"`
	Image            *string                `json:"image"`
	Thumbnail        *string                `json:"thumbnail"`
	Text             string                 `json:"text"`
	CookingTime      int                    `json:"cooking_time"`
	CreatedAt        time.Time              `json:"created_at"`
}

// RecipeListData 菜谱列表数据
type RecipeListData struct {
	Recipes    []RecipeInfo `json:"recipes"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int64        `json:"total_pages"`
}

package repository

import (
	"foodgram-go/internal/model"

	"gorm.io/gorm"
)

// RecipeFilter 菜谱列表筛选条件，多个条件取交集
type RecipeFilter struct {
	AuthorID    *int64
	TagSlugs    []string // 任一匹配
	FavoritedBy *int64
	InCartOf    *int64
}

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// GetByID 根据 ID 获取菜谱（不带关联，关系操作解析目标用）
func (r *RecipeRepository) GetByID(id int64) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.db.Where("id = ?", id).First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetByIDDetailed 根据 ID 获取菜谱（含作者、标签、食材用量）
func (r *RecipeRepository) GetByIDDetailed(id int64) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.db.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Where("id = ?", id).First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Create 创建菜谱及其食材用量、标签关联，整体一个事务
func (r *RecipeRepository) Create(recipe *model.Recipe, tags []model.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(recipe).Error; err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(recipe).Association("Tags").Append(&tags); err != nil {
				return err
			}
		}
		return nil
	})
}

// Update 更新菜谱字段并整体替换食材用量和标签关联
func (r *RecipeRepository) Update(recipe *model.Recipe, updates map[string]interface{}, ingredients []model.RecipeIngredient, tags []model.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(recipe).Updates(updates).Error; err != nil {
				return err
			}
		}
		if ingredients != nil {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&model.RecipeIngredient{}).Error; err != nil {
				return err
			}
			for i := range ingredients {
				ingredients[i].RecipeID = recipe.ID
			}
			if err := tx.Create(&ingredients).Error; err != nil {
				return err
			}
		}
		if tags != nil {
			if err := tx.Model(recipe).Association("Tags").Replace(&tags); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete 删除菜谱，级联清理食材用量、收藏、购物车和标签关联
func (r *RecipeRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&model.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&model.ShoppingCart{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Recipe{ID: id}).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.Recipe{}, id).Error
	})
}

// List 菜谱列表查询（筛选、分页，按发布时间倒序）
func (r *RecipeRepository) List(filter RecipeFilter, skip, limit int) ([]model.Recipe, int64, error) {
	query := r.db.Model(&model.Recipe{})

	if filter.AuthorID != nil {
		query = query.Where("recipes.author_id = ?", *filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		query = query.Where("recipes.id IN (?)",
			r.db.Table("recipe_tags").
				Select("recipe_tags.recipe_id").
				Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
				Where("tags.slug IN ?", filter.TagSlugs))
	}
	if filter.FavoritedBy != nil {
		query = query.Where("recipes.id IN (?)",
			r.db.Model(&model.Favorite{}).Select("recipe_id").Where("user_id = ?", *filter.FavoritedBy))
	}
	if filter.InCartOf != nil {
		query = query.Where("recipes.id IN (?)",
			r.db.Model(&model.ShoppingCart{}).Select("recipe_id").Where("user_id = ?", *filter.InCartOf))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []model.Recipe
	err := query.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Order("recipes.created_at DESC").
		Offset(skip).Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// ListByAuthor 获取作者的菜谱（订阅视图嵌入用，limit <= 0 表示不限制）
func (r *RecipeRepository) ListByAuthor(authorID int64, limit int) ([]model.Recipe, error) {
	query := r.db.Where("author_id = ?", authorID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var recipes []model.Recipe
	err := query.Find(&recipes).Error
	return recipes, err
}

// CountByAuthor 统计作者的菜谱数
func (r *RecipeRepository) CountByAuthor(authorID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Recipe{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// UpdateImage 更新菜谱图片地址
func (r *RecipeRepository) UpdateImage(id int64, imageURL string) error {
	result := r.db.Model(&model.Recipe{}).Where("id = ?", id).Update("image", imageURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateThumbnail 更新菜谱缩略图地址（缩略图 worker 回写用）
func (r *RecipeRepository) UpdateThumbnail(id int64, thumbnailURL string) error {
	result := r.db.Model(&model.Recipe{}).Where("id = ?", id).Update("thumbnail", thumbnailURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

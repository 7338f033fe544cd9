package repository

import (
	"foodgram-go/internal/model"

	"gorm.io/gorm"
)

type IngredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// GetByID 根据 ID 获取食材
func (r *IngredientRepository) GetByID(id int64) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	err := r.db.Where("id = ?", id).First(&ingredient).Error
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// GetByIDs 批量获取食材
func (r *IngredientRepository) GetByIDs(ids []int64) ([]model.Ingredient, error) {
	if len(ids) == 0 {
		return []model.Ingredient{}, nil
	}
	var ingredients []model.Ingredient
	err := r.db.Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, err
}

// SearchByNamePrefix 按名称前缀搜索食材
func (r *IngredientRepository) SearchByNamePrefix(prefix string, limit int) ([]model.Ingredient, error) {
	query := r.db.Model(&model.Ingredient{})
	if prefix != "" {
		query = query.Where("name LIKE ?", prefix+"%")
	}

	var ingredients []model.Ingredient
	err := query.Order("name ASC").Limit(limit).Find(&ingredients).Error
	return ingredients, err
}

// ListAll 获取全部食材（ES 同步用）
func (r *IngredientRepository) ListAll() ([]model.Ingredient, error) {
	var ingredients []model.Ingredient
	err := r.db.Order("id ASC").Find(&ingredients).Error
	return ingredients, err
}

// FirstOrCreate 按（名称+计量单位）幂等创建食材，返回是否新建
func (r *IngredientRepository) FirstOrCreate(ingredient *model.Ingredient) (bool, error) {
	result := r.db.Where("name = ? AND measurement_unit = ?",
		ingredient.Name, ingredient.MeasurementUnit).FirstOrCreate(ingredient)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

package repository

import (
	"foodgram-go/internal/model"

	"gorm.io/gorm"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// List 获取全部标签（按名称排序，参考数据不分页）
func (r *TagRepository) List() ([]model.Tag, error) {
	var tags []model.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}

// GetByID 根据 ID 获取标签
func (r *TagRepository) GetByID(id int64) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.Where("id = ?", id).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByIDs 批量获取标签
func (r *TagRepository) GetByIDs(ids []int64) ([]model.Tag, error) {
	if len(ids) == 0 {
		return []model.Tag{}, nil
	}
	var tags []model.Tag
	err := r.db.Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

// FirstOrCreate 按 slug 幂等创建标签，返回是否新建
func (r *TagRepository) FirstOrCreate(tag *model.Tag) (bool, error) {
	result := r.db.Where("slug = ?", tag.Slug).FirstOrCreate(tag)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

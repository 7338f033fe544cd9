package repository

import (
	"fmt"

	"foodgram-go/internal/model"

	"gorm.io/gorm"
)

// RelationKind 二元关系类型：收藏、购物车、订阅
type RelationKind string

const (
	RelationFavorite     RelationKind = "favorite"
	RelationShoppingCart RelationKind = "shopping_cart"
	RelationSubscribe    RelationKind = "subscribe"
)

// row 返回该关系类型对应的新记录
func (k RelationKind) row(userID, targetID int64) (interface{}, error) {
	switch k {
	case RelationFavorite:
		return &model.Favorite{UserID: userID, RecipeID: targetID}, nil
	case RelationShoppingCart:
		return &model.ShoppingCart{UserID: userID, RecipeID: targetID}, nil
	case RelationSubscribe:
		return &model.Subscribe{UserID: userID, AuthorID: targetID}, nil
	default:
		return nil, fmt.Errorf("unknown relation kind: %s", k)
	}
}

// blank 返回该关系类型的空模型（查询/删除用）
func (k RelationKind) blank() interface{} {
	switch k {
	case RelationFavorite:
		return &model.Favorite{}
	case RelationShoppingCart:
		return &model.ShoppingCart{}
	default:
		return &model.Subscribe{}
	}
}

// targetColumn 返回目标实体外键列名
func (k RelationKind) targetColumn() string {
	if k == RelationSubscribe {
		return "author_id"
	}
	return "recipe_id"
}

// RelationRepository 统一管理三种 (user, target) 唯一键关系
type RelationRepository struct {
	db *gorm.DB
}

func NewRelationRepository(db *gorm.DB) *RelationRepository {
	return &RelationRepository{db: db}
}

// Add 创建关系记录
// 不做存在性预检查：重复插入由唯一索引拦截并返回 gorm.ErrDuplicatedKey，
// 两个并发 Add 至多只有一个成功
func (r *RelationRepository) Add(kind RelationKind, userID, targetID int64) error {
	row, err := kind.row(userID, targetID)
	if err != nil {
		return err
	}
	return r.db.Create(row).Error
}

// Remove 删除关系记录，返回是否确实删除了一条
func (r *RelationRepository) Remove(kind RelationKind, userID, targetID int64) (bool, error) {
	result := r.db.Where("user_id = ? AND "+kind.targetColumn()+" = ?", userID, targetID).
		Delete(kind.blank())
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists 检查关系是否存在（只读场景用，如序列化时的标记位）
func (r *RelationRepository) Exists(kind RelationKind, userID, targetID int64) (bool, error) {
	var count int64
	err := r.db.Model(kind.blank()).
		Where("user_id = ? AND "+kind.targetColumn()+" = ?", userID, targetID).
		Count(&count).Error
	return count > 0, err
}

// BatchCheck 批量检查关系是否存在，返回 targetID -> bool
func (r *RelationRepository) BatchCheck(kind RelationKind, userID int64, targetIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(targetIDs))
	if len(targetIDs) == 0 {
		return result, nil
	}

	var foundIDs []int64
	err := r.db.Model(kind.blank()).
		Where("user_id = ? AND "+kind.targetColumn()+" IN ?", userID, targetIDs).
		Pluck(kind.targetColumn(), &foundIDs).Error
	if err != nil {
		return nil, err
	}

	foundSet := make(map[int64]bool, len(foundIDs))
	for _, id := range foundIDs {
		foundSet[id] = true
	}
	for _, id := range targetIDs {
		result[id] = foundSet[id]
	}
	return result, nil
}

// SubscribedAuthorIDs 获取用户订阅的作者 ID 列表（分页，按订阅时间倒序）
func (r *RelationRepository) SubscribedAuthorIDs(userID int64, skip, limit int) ([]int64, error) {
	var authorIDs []int64
	err := r.db.Model(&model.Subscribe{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(skip).Limit(limit).
		Pluck("author_id", &authorIDs).Error
	return authorIDs, err
}

// CountSubscriptions 统计用户订阅数
func (r *RelationRepository) CountSubscriptions(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscribe{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

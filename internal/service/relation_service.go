package service

import (
	"errors"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrAlreadyFavorited  = errors.New("菜谱已在收藏中")
	ErrNotFavorited      = errors.New("菜谱不在收藏中")
	ErrAlreadyInCart     = errors.New("菜谱已在购物车中")
	ErrNotInCart         = errors.New("菜谱不在购物车中")
	ErrAlreadySubscribed = errors.New("已订阅该作者")
	ErrNotSubscribed     = errors.New("未订阅该作者")
	ErrSelfSubscribe     = errors.New("不能订阅自己")
)

// RelationService 收藏、购物车、订阅三种关系的统一开关逻辑
type RelationService struct {
	relationRepo *repository.RelationRepository
	recipeRepo   *repository.RecipeRepository
	userRepo     *repository.UserRepository
}

func NewRelationService(
	relationRepo *repository.RelationRepository,
	recipeRepo *repository.RecipeRepository,
	userRepo *repository.UserRepository,
) *RelationService {
	return &RelationService{
		relationRepo: relationRepo,
		recipeRepo:   recipeRepo,
		userRepo:     userRepo,
	}
}

// FavoriteRecipe 收藏菜谱
func (s *RelationService) FavoriteRecipe(userID, recipeID int64) (*dto.RecipeShort, error) {
	return s.addRecipeRelation(repository.RelationFavorite, userID, recipeID, ErrAlreadyFavorited)
}

// UnfavoriteRecipe 取消收藏
func (s *RelationService) UnfavoriteRecipe(userID, recipeID int64) error {
	return s.removeRecipeRelation(repository.RelationFavorite, userID, recipeID, ErrNotFavorited)
}

// AddToCart 将菜谱加入购物车
func (s *RelationService) AddToCart(userID, recipeID int64) (*dto.RecipeShort, error) {
	return s.addRecipeRelation(repository.RelationShoppingCart, userID, recipeID, ErrAlreadyInCart)
}

// RemoveFromCart 将菜谱移出购物车
func (s *RelationService) RemoveFromCart(userID, recipeID int64) error {
	return s.removeRecipeRelation(repository.RelationShoppingCart, userID, recipeID, ErrNotInCart)
}

// addRecipeRelation 添加以菜谱为目标的关系
// 不做存在性预检查，重复由唯一索引拦截为 gorm.ErrDuplicatedKey 后翻译为业务错误，
// 并发场景下至多一个请求成功
func (s *RelationService) addRecipeRelation(kind repository.RelationKind, userID, recipeID int64, dupErr error) (*dto.RecipeShort, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	if err := s.relationRepo.Add(kind, userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, dupErr
		}
		return nil, err
	}

	return toRecipeShort(recipe), nil
}

// removeRecipeRelation 移除以菜谱为目标的关系
// 关系本就不存在时返回业务错误而非静默成功
func (s *RelationService) removeRecipeRelation(kind repository.RelationKind, userID, recipeID int64, missingErr error) error {
	if _, err := s.recipeRepo.GetByID(recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	deleted, err := s.relationRepo.Remove(kind, userID, recipeID)
	if err != nil {
		return err
	}
	if !deleted {
		return missingErr
	}
	return nil
}

// Subscribe 订阅作者，返回作者及其菜谱视图
// 自订阅在任何写入之前就被拒绝
func (s *RelationService) Subscribe(userID, authorID int64, recipesLimit int) (*dto.SubscriptionInfo, error) {
	if userID == authorID {
		return nil, ErrSelfSubscribe
	}

	author, err := s.userRepo.GetByID(authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := s.relationRepo.Add(repository.RelationSubscribe, userID, authorID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}

	return s.buildSubscriptionInfo(author, recipesLimit)
}

// Unsubscribe 取消订阅
func (s *RelationService) Unsubscribe(userID, authorID int64) error {
	if _, err := s.userRepo.GetByID(authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	deleted, err := s.relationRepo.Remove(repository.RelationSubscribe, userID, authorID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotSubscribed
	}
	return nil
}

// ListSubscriptions 订阅列表（按订阅时间倒序分页），每个作者附带其菜谱
func (s *RelationService) ListSubscriptions(userID int64, page, pageSize, recipesLimit int) (*dto.SubscriptionListData, error) {
	total, err := s.relationRepo.CountSubscriptions(userID)
	if err != nil {
		return nil, err
	}

	skip := (page - 1) * pageSize
	authorIDs, err := s.relationRepo.SubscribedAuthorIDs(userID, skip, pageSize)
	if err != nil {
		return nil, err
	}

	authors, err := s.userRepo.GetByIDs(authorIDs)
	if err != nil {
		return nil, err
	}
	authorByID := make(map[int64]*model.User, len(authors))
	for i := range authors {
		authorByID[authors[i].ID] = &authors[i]
	}

	items := make([]dto.SubscriptionInfo, 0, len(authorIDs))
	for _, id := range authorIDs {
		author, ok := authorByID[id]
		if !ok {
			continue
		}
		info, err := s.buildSubscriptionInfo(author, recipesLimit)
		if err != nil {
			return nil, err
		}
		items = append(items, *info)
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	return &dto.SubscriptionListData{
		Subscriptions: items,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
		TotalPages:    totalPages,
	}, nil
}

// buildSubscriptionInfo 组装订阅视图，recipesLimit <= 0 表示不限制菜谱数
func (s *RelationService) buildSubscriptionInfo(author *model.User, recipesLimit int) (*dto.SubscriptionInfo, error) {
	recipes, err := s.recipeRepo.ListByAuthor(author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}

	count, err := s.recipeRepo.CountByAuthor(author.ID)
	if err != nil {
		return nil, err
	}

	shorts := make([]dto.RecipeShort, 0, len(recipes))
	for i := range recipes {
		shorts = append(shorts, *toRecipeShort(&recipes[i]))
	}

	return &dto.SubscriptionInfo{
		UserInfo:     *toUserInfo(author, true),
		Recipes:      shorts,
		RecipesCount: count,
	}, nil
}

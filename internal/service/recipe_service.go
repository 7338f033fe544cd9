package service

import (
	"errors"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrRecipeNotFound      = errors.New("菜谱不存在")
	ErrNotRecipeAuthor     = errors.New("只有作者可以修改或删除菜谱")
	ErrDuplicateIngredient = errors.New("食材列表中存在重复食材")
)

type RecipeService struct {
	recipeRepo     *repository.RecipeRepository
	ingredientRepo *repository.IngredientRepository
	tagRepo        *repository.TagRepository
	relationRepo   *repository.RelationRepository
}

func NewRecipeService(
	recipeRepo *repository.RecipeRepository,
	ingredientRepo *repository.IngredientRepository,
	tagRepo *repository.TagRepository,
	relationRepo *repository.RelationRepository,
) *RecipeService {
	return &RecipeService{
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
		tagRepo:        tagRepo,
		relationRepo:   relationRepo,
	}
}

// CreateRecipe 创建菜谱
// 所有校验（重复食材、食材/标签存在性）通过后才写库，失败时不留下任何记录
func (s *RecipeService) CreateRecipe(authorID int64, req *dto.RecipeCreateRequest) (*dto.RecipeInfo, error) {
	ingredients, err := s.resolveIngredients(req.Ingredients)
	if err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(req.Tags)
	if err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Ingredients: ingredients,
	}

	if err := s.recipeRepo.Create(recipe, tags); err != nil {
		return nil, err
	}

	return s.GetRecipe(recipe.ID, &authorID)
}

// GetRecipe 获取菜谱详情，viewerID 非空时计算收藏/购物车/订阅标记
func (s *RecipeService) GetRecipe(id int64, viewerID *int64) (*dto.RecipeInfo, error) {
	recipe, err := s.recipeRepo.GetByIDDetailed(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	infos, err := s.buildRecipeInfos([]model.Recipe{*recipe}, viewerID)
	if err != nil {
		return nil, err
	}
	return &infos[0], nil
}

// UpdateRecipe 更新菜谱（仅作者，部分更新）
func (s *RecipeService) UpdateRecipe(userID, id int64, req *dto.RecipeUpdateRequest) (*dto.RecipeInfo, error) {
	recipe, err := s.recipeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.AuthorID != userID {
		return nil, ErrNotRecipeAuthor
	}

	var ingredients []model.RecipeIngredient
	if req.Ingredients != nil {
		ingredients, err = s.resolveIngredients(req.Ingredients)
		if err != nil {
			return nil, err
		}
	}

	var tags []model.Tag
	if req.Tags != nil {
		tags, err = s.resolveTags(req.Tags)
		if err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Text != nil {
		updates["text"] = *req.Text
	}
	if req.CookingTime != nil {
		updates["cooking_time"] = *req.CookingTime
	}

	if err := s.recipeRepo.Update(recipe, updates, ingredients, tags); err != nil {
		return nil, err
	}

	return s.GetRecipe(id, &userID)
}

// DeleteRecipe 删除菜谱（仅作者）
func (s *RecipeService) DeleteRecipe(userID, id int64) error {
	recipe, err := s.recipeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	if recipe.AuthorID != userID {
		return ErrNotRecipeAuthor
	}

	return s.recipeRepo.Delete(id)
}

// ListRecipes 菜谱列表，支持作者/标签/收藏/购物车筛选（多条件取交集）
func (s *RecipeService) ListRecipes(filter repository.RecipeFilter, viewerID *int64, page, pageSize int) (*dto.RecipeListData, error) {
	skip := (page - 1) * pageSize
	recipes, total, err := s.recipeRepo.List(filter, skip, pageSize)
	if err != nil {
		return nil, err
	}

	infos, err := s.buildRecipeInfos(recipes, viewerID)
	if err != nil {
		return nil, err
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	return &dto.RecipeListData{
		Recipes:    infos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// resolveIngredients 校验并解析食材用量列表
// 同一食材出现两次直接报错，不做合并
func (s *RecipeService) resolveIngredients(reqs []dto.IngredientAmountRequest) ([]model.RecipeIngredient, error) {
	seen := make(map[int64]bool, len(reqs))
	ids := make([]int64, 0, len(reqs))
	for _, item := range reqs {
		if seen[item.ID] {
			return nil, ErrDuplicateIngredient
		}
		seen[item.ID] = true
		ids = append(ids, item.ID)
	}

	found, err := s.ingredientRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, ErrIngredientNotFound
	}

	result := make([]model.RecipeIngredient, 0, len(reqs))
	for _, item := range reqs {
		result = append(result, model.RecipeIngredient{
			IngredientID: item.ID,
			Amount:       item.Amount,
		})
	}
	return result, nil
}

// resolveTags 校验并解析标签 ID 列表
func (s *RecipeService) resolveTags(ids []int64) ([]model.Tag, error) {
	seen := make(map[int64]bool, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	tags, err := s.tagRepo.GetByIDs(unique)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(unique) {
		return nil, ErrTagNotFound
	}
	return tags, nil
}

// buildRecipeInfos 批量构建菜谱视图
// 收藏/购物车/订阅标记对匿名请求恒为 false
func (s *RecipeService) buildRecipeInfos(recipes []model.Recipe, viewerID *int64) ([]dto.RecipeInfo, error) {
	favorited := map[int64]bool{}
	inCart := map[int64]bool{}
	subscribed := map[int64]bool{}

	if viewerID != nil && len(recipes) > 0 {
		recipeIDs := make([]int64, 0, len(recipes))
		authorIDs := make([]int64, 0, len(recipes))
		for i := range recipes {
			recipeIDs = append(recipeIDs, recipes[i].ID)
			authorIDs = append(authorIDs, recipes[i].AuthorID)
		}

		var err error
		favorited, err = s.relationRepo.BatchCheck(repository.RelationFavorite, *viewerID, recipeIDs)
		if err != nil {
			return nil, err
		}
		inCart, err = s.relationRepo.BatchCheck(repository.RelationShoppingCart, *viewerID, recipeIDs)
		if err != nil {
			return nil, err
		}
		subscribed, err = s.relationRepo.BatchCheck(repository.RelationSubscribe, *viewerID, authorIDs)
		if err != nil {
			return nil, err
		}
	}

	infos := make([]dto.RecipeInfo, 0, len(recipes))
	for i := range recipes {
		r := &recipes[i]

		tags := make([]dto.TagInfo, 0, len(r.Tags))
		for _, t := range r.Tags {
			tags = append(tags, dto.TagInfo{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug})
		}

		ingredients := make([]dto.RecipeIngredientInfo, 0, len(r.Ingredients))
		for _, ri := range r.Ingredients {
			ingredients = append(ingredients, dto.RecipeIngredientInfo{
				ID:              ri.IngredientID,
				Name:            ri.Ingredient.Name,
				MeasurementUnit: ri.Ingredient.MeasurementUnit,
				Amount:          ri.Amount,
			})
		}

		infos = append(infos, dto.RecipeInfo{
			ID:               r.ID,
			Tags:             tags,
			Author:           *toUserInfo(&r.Author, subscribed[r.AuthorID]),
			Ingredients:      ingredients,
			IsFavorited:      favorited[r.ID],
			IsInShoppingCart: inCart[r.ID],
			Name:             r.Name,
			Image:            r.Image,
			Thumbnail:        r.Thumbnail,
			Text:             r.Text,
			CookingTime:      r.CookingTime,
			CreatedAt:        r.CreatedAt,
		})
	}
	return infos, nil
}

// toRecipeShort 菜谱简要视图（收藏/购物车/订阅响应嵌入用）
func toRecipeShort(recipe *model.Recipe) *dto.RecipeShort {
	return &dto.RecipeShort{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		Thumbnail:   recipe.Thumbnail,
		CookingTime: recipe.CookingTime,
	}
}

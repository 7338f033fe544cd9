package handler

import (
	"errors"
	"strconv"
	"strings"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/api/middleware"
	"foodgram-go/internal/api/response"
	"foodgram-go/internal/repository"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxImageSize = 10 << 20 // 10MB

type RecipeHandler struct {
	recipeService   *service.RecipeService
	relationService *service.RelationService
	shoppingService *service.ShoppingService
	imageService    *service.ImageService
}

func NewRecipeHandler(
	recipeService *service.RecipeService,
	relationService *service.RelationService,
	shoppingService *service.ShoppingService,
	imageService *service.ImageService,
) *RecipeHandler {
	return &RecipeHandler{
		recipeService:   recipeService,
		relationService: relationService,
		shoppingService: shoppingService,
		imageService:    imageService,
	}
}

// List 菜谱列表
// @Summary 菜谱列表
// @Description 分页获取菜谱，支持作者、标签、收藏、购物车筛选，多条件取交集
// @Tags 菜谱
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Param author query int false "作者ID"
// @Param tags query []string false "标签slug，可多值，任一匹配"
// @Param is_favorited query int false "仅已收藏（需登录）"
// @Param is_in_shopping_cart query int false "仅购物车中（需登录）"
// @Success 200 {object} dto.RecipeListData "获取成功"
// @Router /recipes [get]
func (h *RecipeHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)
	viewerID := currentUserIDPtr(c)

	filter := repository.RecipeFilter{}

	if authorStr := c.Query("author"); authorStr != "" {
		authorID, err := strconv.ParseInt(authorStr, 10, 64)
		if err != nil {
			response.BadRequest(c, "无效的作者ID")
			return
		}
		filter.AuthorID = &authorID
	}

	for _, slug := range c.QueryArray("tags") {
		if slug = strings.TrimSpace(slug); slug != "" {
			filter.TagSlugs = append(filter.TagSlugs, slug)
		}
	}

	// 布尔筛选仅对已登录用户生效，匿名请求静默忽略
	if viewerID != nil {
		if isTruthy(c.Query("is_favorited")) {
			filter.FavoritedBy = viewerID
		}
		if isTruthy(c.Query("is_in_shopping_cart")) {
			filter.InCartOf = viewerID
		}
	}

	data, err := h.recipeService.ListRecipes(filter, viewerID, page, pageSize)
	if err != nil {
		logger.Error("List recipes failed", zap.Error(err))
		response.InternalError(c, "获取菜谱列表失败")
		return
	}

	response.OK(c, data)
}

// Create 创建菜谱
// @Summary 创建菜谱
// @Description 创建菜谱，食材不能重复，校验全部通过后才写库
// @Tags 菜谱
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecipeCreateRequest true "菜谱信息"
// @Success 201 {object} dto.RecipeInfo "创建成功"
// @Failure 400 {object} response.ErrorBody "参数无效或食材重复"
// @Router /recipes [post]
func (h *RecipeHandler) Create(c *gin.Context) {
	var req dto.RecipeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	info, err := h.recipeService.CreateRecipe(userID, &req)
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.Created(c, info)
}

// GetByID 获取菜谱详情
// @Summary 获取菜谱详情
// @Tags 菜谱
// @Produce json
// @Param id path int true "菜谱ID"
// @Success 200 {object} dto.RecipeInfo "获取成功"
// @Failure 404 {object} response.ErrorBody "菜谱不存在"
// @Router /recipes/{id} [get]
func (h *RecipeHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	info, err := h.recipeService.GetRecipe(id, currentUserIDPtr(c))
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.OK(c, info)
}

// Update 更新菜谱
// @Summary 更新菜谱
// @Description 部分更新菜谱，仅作者可操作，食材和标签整体替换
// @Tags 菜谱
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "菜谱ID"
// @Param request body dto.RecipeUpdateRequest true "更新字段"
// @Success 200 {object} dto.RecipeInfo "更新成功"
// @Failure 403 {object} response.ErrorBody "非作者"
// @Failure 404 {object} response.ErrorBody "菜谱不存在"
// @Router /recipes/{id} [patch]
func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	var req dto.RecipeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	info, err := h.recipeService.UpdateRecipe(userID, id, &req)
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.OK(c, info)
}

// Delete 删除菜谱
// @Summary 删除菜谱
// @Description 删除菜谱及其关联记录，仅作者可操作
// @Tags 菜谱
// @Produce json
// @Security BearerAuth
// @Param id path int true "菜谱ID"
// @Success 204 "删除成功"
// @Failure 403 {object} response.ErrorBody "非作者"
// @Failure 404 {object} response.ErrorBody "菜谱不存在"
// @Router /recipes/{id} [delete]
func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.recipeService.DeleteRecipe(userID, id); err != nil {
		handleRecipeError(c, err)
		return
	}

	response.NoContent(c)
}

// Favorite 收藏菜谱
// @Summary 收藏菜谱
// @Description 收藏指定菜谱，重复收藏报错
// @Tags 收藏
// @Produce json
// @Security BearerAuth
// @Param id path int true "菜谱ID"
// @Success 201 {object} dto.RecipeShort "收藏成功"
// @Failure 400 {object} response.ErrorBody "已收藏"
// @Failure 404 {object} response.ErrorBody "菜谱不存在"
// @Router /recipes/{id}/favorite [post]
func (h *RecipeHandler) Favorite(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	short, err := h.relationService.FavoriteRecipe(userID, id)
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.Created(c, short)
}

// Unfavorite 取消收藏
// @Summary 取消收藏
// @Description 取消收藏，未收藏时报错
// @Tags 收藏
// @Produce json
// @Security BearerAuth
// @Param id path int true "菜谱ID"
// @Success 204 "取消成功"
// @Failure 400 {object} response.ErrorBody "未收藏"
// @Failure 404 {object} response.ErrorBody "菜谱不存在"
// @Router /recipes/{id}/favorite [delete]
func (h *RecipeHandler) Unfavorite(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.relationService.UnfavoriteRecipe(userID, id); err != nil {
		handleRecipeError(c, err)
		return
	}

	response.NoContent(c)
}

// AddToCart 加入购物车
// @Summary 加入购物车
// @Description 将菜谱加入购物车，重复加入报错
// @Tags 购物车
// @Produce json
// @Security BearerAuth
// @Param id path int true "菜谱ID"
// @Success 201 {object} dto.RecipeShort "加入成功"
// @Failure 400 {object} response.ErrorBody "已在购物车"
// @Failure 404 {object} response.ErrorBody "菜谱不存在"
// @Router /recipes/{id}/shopping_cart [post]
func (h *RecipeHandler) AddToCart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	short, err := h.relationService.AddToCart(userID, id)
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.Created(c, short)
}

// RemoveFromCart 移出购物车
// @Summary 移出购物车
// @Description 将菜谱移出购物车，不在购物车时报错
// @Tags 购物车
// @Produce json
// @Security BearerAuth
// @Param id path int true "菜谱ID"
// @Success 204 "移出成功"
// @Failure 400 {object} response.ErrorBody "不在购物车"
// @Failure 404 {object} response.ErrorBody "菜谱不存在"
// @Router /recipes/{id}/shopping_cart [delete]
func (h *RecipeHandler) RemoveFromCart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.relationService.RemoveFromCart(userID, id); err != nil {
		handleRecipeError(c, err)
		return
	}

	response.NoContent(c)
}

// DownloadShoppingCart 下载购物清单
// @Summary 下载购物清单
// @Description 聚合购物车中全部菜谱的食材用量，生成文本文件下载
// @Tags 购物车
// @Produce plain
// @Security BearerAuth
// @Success 200 {string} string "shopping_cart.txt"
// @Failure 400 {object} response.ErrorBody "购物车为空"
// @Router /recipes/download_shopping_cart [get]
func (h *RecipeHandler) DownloadShoppingCart(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	filename, content, err := h.shoppingService.BuildShoppingList(userID)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Build shopping list failed", zap.Error(err))
		response.InternalError(c, "生成购物清单失败")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "text/plain; charset=utf-8", content)
}

// UploadImage 上传菜谱图片
// @Summary 上传菜谱图片
// @Description 上传菜谱图片，仅作者可操作，异步生成缩略图
// @Tags 菜谱
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "菜谱ID"
// @Param image formData file true "图片文件"
// @Success 200 {object} dto.RecipeShort "上传成功"
// @Failure 400 {object} response.ErrorBody "文件无效"
// @Failure 403 {object} response.ErrorBody "非作者"
// @Router /recipes/{id}/image [post]
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的菜谱ID")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "缺少图片文件")
		return
	}
	if fileHeader.Size > maxImageSize {
		response.BadRequest(c, "图片文件过大，最大支持10MB")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.BadRequest(c, "仅支持图片文件")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "无法读取图片文件")
		return
	}
	defer file.Close()

	userID, _ := middleware.GetCurrentUserID(c)

	short, err := h.imageService.UploadRecipeImage(
		c.Request.Context(), userID, id,
		file, fileHeader.Size, contentType, fileHeader.Filename,
	)
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.OK(c, short)
}

func handleRecipeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrNotRecipeAuthor):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrDuplicateIngredient),
		errors.Is(err, service.ErrIngredientNotFound),
		errors.Is(err, service.ErrTagNotFound),
		errors.Is(err, service.ErrAlreadyFavorited),
		errors.Is(err, service.ErrNotFavorited),
		errors.Is(err, service.ErrAlreadyInCart),
		errors.Is(err, service.ErrNotInCart):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Recipe operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}

// isTruthy 解析布尔查询参数，兼容 1/true
func isTruthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

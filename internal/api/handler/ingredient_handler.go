package handler

import (
	"errors"

	"foodgram-go/internal/api/response"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IngredientHandler struct {
	ingredientService *service.IngredientService
}

func NewIngredientHandler(ingredientService *service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

// Search 食材搜索
// @Summary 食材搜索
// @Description 按名称前缀搜索食材，name 为空时返回前若干条
// @Tags 食材
// @Produce json
// @Param name query string false "名称前缀"
// @Success 200 {array} dto.IngredientInfo "获取成功"
// @Router /ingredients [get]
func (h *IngredientHandler) Search(c *gin.Context) {
	items, err := h.ingredientService.SearchIngredients(c.Request.Context(), c.Query("name"))
	if err != nil {
		logger.Error("Search ingredients failed", zap.Error(err))
		response.InternalError(c, "搜索食材失败")
		return
	}

	response.OK(c, items)
}

// GetByID 获取食材
// @Summary 获取食材
// @Tags 食材
// @Produce json
// @Param id path int true "食材ID"
// @Success 200 {object} dto.IngredientInfo "获取成功"
// @Failure 404 {object} response.ErrorBody "食材不存在"
// @Router /ingredients/{id} [get]
func (h *IngredientHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的食材ID")
		return
	}

	info, err := h.ingredientService.GetIngredient(id)
	if err != nil {
		if errors.Is(err, service.ErrIngredientNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Get ingredient failed", zap.Error(err))
		response.InternalError(c, "获取食材失败")
		return
	}

	response.OK(c, info)
}

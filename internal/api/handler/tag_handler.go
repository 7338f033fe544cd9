package handler

import (
	"errors"

	"foodgram-go/internal/api/response"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TagHandler struct {
	tagService *service.TagService
}

func NewTagHandler(tagService *service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// List 标签列表
// @Summary 标签列表
// @Description 获取全部标签，不分页
// @Tags 标签
// @Produce json
// @Success 200 {array} dto.TagInfo "获取成功"
// @Router /tags [get]
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tagService.ListTags()
	if err != nil {
		logger.Error("List tags failed", zap.Error(err))
		response.InternalError(c, "获取标签列表失败")
		return
	}

	response.OK(c, tags)
}

// GetByID 获取标签
// @Summary 获取标签
// @Tags 标签
// @Produce json
// @Param id path int true "标签ID"
// @Success 200 {object} dto.TagInfo "获取成功"
// @Failure 404 {object} response.ErrorBody "标签不存在"
// @Router /tags/{id} [get]
func (h *TagHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的标签ID")
		return
	}

	tag, err := h.tagService.GetTag(id)
	if err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Get tag failed", zap.Error(err))
		response.InternalError(c, "获取标签失败")
		return
	}

	response.OK(c, tag)
}

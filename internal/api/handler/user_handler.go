package handler

import (
	"errors"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/api/middleware"
	"foodgram-go/internal/api/response"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	authService     *service.AuthService
	userService     *service.UserService
	relationService *service.RelationService
}

func NewUserHandler(
	authService *service.AuthService,
	userService *service.UserService,
	relationService *service.RelationService,
) *UserHandler {
	return &UserHandler{
		authService:     authService,
		userService:     userService,
		relationService: relationService,
	}
}

// Register 用户注册
// @Summary 用户注册
// @Description 注册新用户，邮箱和用户名必须唯一
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册信息"
// @Success 201 {object} dto.UserInfo "注册成功"
// @Failure 400 {object} response.ErrorBody "参数无效或邮箱/用户名已存在"
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.authService.Register(&req)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.Created(c, info)
}

// List 用户列表
// @Summary 用户列表
// @Description 分页获取用户列表
// @Tags 用户
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} dto.UserListData "获取成功"
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)

	data, err := h.userService.ListUsers(currentUserIDPtr(c), page, pageSize)
	if err != nil {
		logger.Error("List users failed", zap.Error(err))
		response.InternalError(c, "获取用户列表失败")
		return
	}

	response.OK(c, data)
}

// GetByID 获取用户信息
// @Summary 获取用户信息
// @Description 获取指定用户的公开信息
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} dto.UserInfo "获取成功"
// @Failure 404 {object} response.ErrorBody "用户不存在"
// @Router /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	info, err := h.userService.GetUserByID(id, currentUserIDPtr(c))
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, info)
}

// Me 获取当前用户信息
// @Summary 获取当前用户信息
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserInfo "获取成功"
// @Failure 401 {object} response.ErrorBody "未认证"
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	info, err := h.authService.GetCurrentUser(userID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, info)
}

// ListSubscriptions 获取我的订阅列表
// @Summary 获取我的订阅列表
// @Description 分页获取已订阅的作者及其菜谱
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Param recipes_limit query int false "每个作者嵌入的菜谱数量"
// @Success 200 {object} dto.SubscriptionListData "获取成功"
// @Router /users/subscriptions [get]
func (h *UserHandler) ListSubscriptions(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	page, pageSize := parsePagination(c)

	data, err := h.relationService.ListSubscriptions(userID, page, pageSize, parseRecipesLimit(c))
	if err != nil {
		logger.Error("List subscriptions failed", zap.Error(err))
		response.InternalError(c, "获取订阅列表失败")
		return
	}

	response.OK(c, data)
}

// Subscribe 订阅作者
// @Summary 订阅作者
// @Description 订阅指定作者，不能订阅自己，重复订阅报错
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param id path int true "作者ID"
// @Param recipes_limit query int false "嵌入的菜谱数量"
// @Success 201 {object} dto.SubscriptionInfo "订阅成功"
// @Failure 400 {object} response.ErrorBody "已订阅或订阅自己"
// @Failure 404 {object} response.ErrorBody "作者不存在"
// @Router /users/{id}/subscribe [post]
func (h *UserHandler) Subscribe(c *gin.Context) {
	authorID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	info, err := h.relationService.Subscribe(userID, authorID, parseRecipesLimit(c))
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.Created(c, info)
}

// Unsubscribe 取消订阅
// @Summary 取消订阅
// @Description 取消对指定作者的订阅，未订阅时报错
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param id path int true "作者ID"
// @Success 204 "取消订阅成功"
// @Failure 400 {object} response.ErrorBody "未订阅"
// @Failure 404 {object} response.ErrorBody "作者不存在"
// @Router /users/{id}/subscribe [delete]
func (h *UserHandler) Unsubscribe(c *gin.Context) {
	authorID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.relationService.Unsubscribe(userID, authorID); err != nil {
		handleUserError(c, err)
		return
	}

	response.NoContent(c)
}

func handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrUsernameExists),
		errors.Is(err, service.ErrSelfSubscribe),
		errors.Is(err, service.ErrAlreadySubscribed),
		errors.Is(err, service.ErrNotSubscribed):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("User operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}

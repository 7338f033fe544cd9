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

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login 用户登录
// @Summary 用户登录
// @Description 邮箱加密码登录，返回 Bearer 令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} dto.TokenData "登录成功"
// @Failure 400 {object} response.ErrorBody "邮箱或密码错误"
// @Router /auth/token/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	data, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredential) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Login failed", zap.Error(err))
		response.InternalError(c, "登录失败，请稍后重试")
		return
	}

	response.OK(c, data)
}

// Logout 用户登出
// @Summary 用户登出
// @Description 使当前令牌失效
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 204 "登出成功"
// @Failure 401 {object} response.ErrorBody "未认证"
// @Router /auth/token/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.GetCurrentToken(c)

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		logger.Error("Logout failed", zap.Error(err))
		response.InternalError(c, "登出失败，请稍后重试")
		return
	}

	response.NoContent(c)
}

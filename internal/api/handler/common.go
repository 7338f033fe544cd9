package handler

import (
	"strconv"

	"foodgram-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// parsePagination 解析分页参数
func parsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// parseIDParam 解析路径中的整数 ID
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// currentUserIDPtr 获取当前用户 ID 指针，匿名请求返回 nil
func currentUserIDPtr(c *gin.Context) *int64 {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return nil
	}
	return &userID
}

// parseRecipesLimit 解析订阅视图中嵌入菜谱数量限制，缺省不限制
func parseRecipesLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("recipes_limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ilodge-http-service/internal/domain/services"
	"ilodge-http-service/internal/error/code"
	"ilodge-http-service/internal/error/response"
)

// ErrorResponse swagger文档中的错误响应结构
type ErrorResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// handleServiceError 把服务层错误类别映射为错误码响应
func handleServiceError(ctx *gin.Context, err error) {
	switch services.KindOf(err) {
	case services.KindValidation:
		response.FailWithMessage(ctx, code.ErrValidation, err.Error(), nil)
	case services.KindNotFound:
		response.FailWithMessage(ctx, code.ErrRecordNotFound, err.Error(), nil)
	case services.KindConflict:
		response.FailWithMessage(ctx, code.ErrConflict, err.Error(), nil)
	case services.KindForbiddenField:
		response.FailWithMessage(ctx, code.ErrForbiddenField, err.Error(), nil)
	case services.KindAuthorization:
		response.FailWithMessage(ctx, code.ErrPermissionDenied, err.Error(), nil)
	default:
		response.FailWithMessage(ctx, code.ErrDatabase, "数据库错误", nil)
	}
}

// parseIDParam 解析路径中的ID参数
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	if raw == "" {
		response.ParamError(ctx, "ID不能为空")
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response.ParamError(ctx, "无效的ID")
		return 0, false
	}
	return uint(id), true
}

// parsePagination 解析分页参数
func parsePagination(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}

// canAccessTenant 校验调用方是否有权访问指定租客的数据。
// 路由层已做角色门禁，这里独立再查一次自助访问范围：
// 租客角色只能访问自己的记录，不依赖路由配置是否正确。
func canAccessTenant(ctx *gin.Context, tenantID uint) bool {
	role, _ := ctx.Get("role")
	if role != "tenant" {
		return true
	}
	claimed, exists := ctx.Get("tenantID")
	if !exists {
		return false
	}
	if id, ok := claimed.(float64); ok {
		return uint(id) == tenantID
	}
	return false
}

package controllers

import (
	"ilodge-http-service/internal/domain/services"
	"ilodge-http-service/internal/domain/services/container"
	"ilodge-http-service/internal/error/code"
	"ilodge-http-service/internal/error/response"
	"ilodge-http-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// InterfaceAuthController 定义认证控制器接口
type InterfaceAuthController interface {
	Login()
}

// AuthController 处理登录认证相关的请求
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController 创建一个新的认证控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"` // 管理员/员工用户名，租客为手机号
	Password string `json:"password" binding:"required" example:"secret123"`
}

// Login 统一登录入口
// @Summary      登录
// @Description  管理员、员工按用户名登录，租客按手机号登录，成功后返回JWT令牌
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login body LoginRequest true "登录信息"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数绑定错误: "+err.Error(), nil)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Login(req.Username, req.Password)
	if err != nil {
		switch services.KindOf(err) {
		case services.KindAuthorization:
			response.FailWithMessage(c.Ctx, code.ErrUserPasswordIncorrect, err.Error(), nil)
		case services.KindNotFound:
			response.FailWithMessage(c.Ctx, code.ErrUserNotFound, err.Error(), nil)
		default:
			response.ServerError(c.Ctx)
		}
		return
	}

	logger.Info("用户 %s 以 %s 角色登录成功", result.Username, result.Role)
	response.Success(c.Ctx, result)
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

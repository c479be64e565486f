package controllers

import (
	"time"

	"ilodge-http-service/internal/app/middleware"
	"ilodge-http-service/internal/domain/services"
	"ilodge-http-service/internal/domain/services/container"
	"ilodge-http-service/internal/error/code"
	"ilodge-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InterfaceHealthController 定义健康检查控制器接口
type InterfaceHealthController interface {
	Ping()
	Health()
	DashboardSummary()
}

// HealthController 处理健康检查与管理面板相关的请求
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController 创建一个新的健康检查控制器
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// Ping 存活探针
// @Summary      存活探针
// @Description  返回pong，用于确认服务进程存活
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{"message": "pong"})
}

// Health 健康检查
// @Summary      健康检查
// @Description  探测数据库和Redis连接状态，返回各组件的健康情况
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (c *HealthController) Health() {
	status := gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"cache":     middleware.CacheStats(),
	}

	db := c.Container.GetService("db").(*gorm.DB)
	sqlDB, err := db.DB()
	if err != nil || sqlDB.Ping() != nil {
		status["status"] = "degraded"
		status["database"] = "down"
	} else {
		status["database"] = "up"
	}

	// Redis连接失败时服务降级运行，不算不健康
	if redisService, ok := c.Container.GetService("redis").(services.InterfaceRedisService); ok && redisService != nil {
		if err := redisService.Ping(); err != nil {
			status["redis"] = "down"
		} else {
			status["redis"] = "up"
		}
	} else {
		status["redis"] = "disabled"
	}

	response.Success(c.Ctx, status)
}

// DashboardSummary 获取管理面板汇总数据
// @Summary      获取管理面板汇总
// @Description  返回房间状态分布、租客数量、逾期人数和本月收款总额
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /dashboard/summary [get]
func (c *HealthController) DashboardSummary() {
	reconciliationService := c.Container.GetService("reconciliation").(services.InterfaceReconciliationService)
	summary, err := reconciliationService.GetDashboardSummary()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取汇总数据失败", nil)
		return
	}
	response.Success(c.Ctx, summary)
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "health":
			controller.Health()
		case "dashboardSummary":
			controller.DashboardSummary()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

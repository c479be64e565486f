package container

import (
	"log"
	"sync"

	"ilodge-http-service/internal/domain/services"
	"ilodge-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// 基础服务
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// 业务服务
	roomService           services.InterfaceRoomService
	tenantService         services.InterfaceTenantService
	paymentService        services.InterfacePaymentService
	reconciliationService services.InterfaceReconciliationService
	maintenanceService    services.InterfaceMaintenanceService
	adminService          services.InterfaceAdminService
	staffService          services.InterfaceStaffService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}
	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config, c.db)

	// 初始化Redis服务，连接不可用时退化为不使用缓存
	redisService := services.NewRedisService(c.config)
	if err := redisService.Ping(); err != nil {
		log.Printf("Redis连接测试失败: %v，将不使用Redis缓存", err)
		redisService = nil
	}
	c.redisService = redisService

	// 初始化业务服务
	c.roomService = services.NewRoomService(c.db, c.config)
	c.tenantService = services.NewTenantService(c.db, c.config)
	c.paymentService = services.NewPaymentService(c.db, c.config)
	c.maintenanceService = services.NewMaintenanceService(c.db, c.config)
	c.adminService = services.NewAdminService(c.db, c.config)
	c.staffService = services.NewStaffService(c.db, c.config)

	// 分配与对账服务依赖缴费台账和Redis缓存 - 使用接口类型
	c.reconciliationService = services.NewReconciliationService(c.db, c.config, c.paymentService, c.redisService)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "room":
		return c.roomService
	case "tenant":
		return c.tenantService
	case "payment":
		return c.paymentService
	case "reconciliation":
		return c.reconciliationService
	case "maintenance":
		return c.maintenanceService
	case "admin":
		return c.adminService
	case "staff":
		return c.staffService
	default:
		return nil
	}
}

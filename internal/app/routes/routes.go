package routes

import (
	_ "ilodge-http-service/docs"
	"ilodge-http-service/internal/app/controllers"
	"ilodge-http-service/internal/app/middleware"
	"ilodge-http-service/internal/domain/services/container"
	"ilodge-http-service/internal/infrastructure/config"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg, db)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加IP限流中间件 - 每秒允许10个请求，最多突发20个请求
	api.Use(middleware.IPRateLimiter(10, 20))

	// 健康检查路由
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping")) // 兼容Docker健康检查的路由

	// 健康状态路由组
	healthGroup := api.Group("/health")
	healthGroup.GET("/status", controllers.HandleHealthFunc(container, "health"))

	// 认证路由，登录接口单独收紧限流
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.PathRateLimiter(5, 10)) // 每秒5个请求，最多突发10个
	authGroup.POST("/login", controllers.HandleAuthFunc(container, "login"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 管理路由组：房间、租客的结构性变更仅限管理员
	adminOps := api.Group("/")
	adminOps.Use(middleware.AuthenticateSystemAdmin())
	adminOps.Use(middleware.IPRateLimiter(30, 50))

	// 房间管理路由
	roomAdminGroup := adminOps.Group("/rooms")
	roomAdminGroup.POST("", controllers.HandleRoomFunc(container, "createRoom"))
	roomAdminGroup.PATCH("/:id", controllers.HandleRoomFunc(container, "updateRoom"))
	roomAdminGroup.DELETE("/:id", controllers.HandleRoomFunc(container, "deleteRoom"))
	roomAdminGroup.POST("/:id/change-type", controllers.HandleRoomFunc(container, "changeRoomType"))

	// 租客管理路由
	tenantAdminGroup := adminOps.Group("/tenants")
	tenantAdminGroup.POST("", controllers.HandleTenantFunc(container, "createTenant"))
	tenantAdminGroup.PATCH("/:id", controllers.HandleTenantFunc(container, "updateTenant"))
	tenantAdminGroup.POST("/:id/archive", controllers.HandleTenantFunc(container, "archiveTenant"))
	tenantAdminGroup.POST("/:id/assign-room", controllers.HandleTenantFunc(container, "assignRoom"))
	tenantAdminGroup.POST("/:id/unassign-room", controllers.HandleTenantFunc(container, "unassignRoom"))

	// 运营路由组：员工与管理员共用的读视图和日常运营操作
	ops := api.Group("/")
	ops.Use(middleware.AuthenticateStaff())
	ops.Use(middleware.IPRateLimiter(30, 50))

	// 房间、租客的只读视图
	ops.GET("/rooms", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleRoomFunc(container, "getRooms"))
	ops.GET("/rooms/:id", controllers.HandleRoomFunc(container, "getRoom"))
	ops.GET("/tenants", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleTenantFunc(container, "getTenants"))

	// 账单计提属于日常运营
	ops.POST("/tenants/:id/charges", controllers.HandlePaymentFunc(container, "createCharge"))

	// 维修工单路由
	ticketGroup := ops.Group("/maintenance-tickets")
	ticketGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 10 * time.Second}), controllers.HandleMaintenanceFunc(container, "getTickets"))
	ticketGroup.GET("/:id", controllers.HandleMaintenanceFunc(container, "getTicket"))
	ticketGroup.POST("", controllers.HandleMaintenanceFunc(container, "createTicket"))
	ticketGroup.PATCH("/:id", controllers.HandleMaintenanceFunc(container, "updateTicket"))
	ticketGroup.DELETE("/:id", controllers.HandleMaintenanceFunc(container, "deleteTicket"))

	// 系统管理员账户路由，仅限管理员
	adminAccountGroup := api.Group("/admins")
	adminAccountGroup.Use(middleware.AuthenticateSystemAdmin())
	adminAccountGroup.GET("", controllers.HandleAdminFunc(container, "getAdmins"))
	adminAccountGroup.GET("/:id", controllers.HandleAdminFunc(container, "getAdmin"))
	adminAccountGroup.POST("", controllers.HandleAdminFunc(container, "createAdmin"))
	adminAccountGroup.PATCH("/:id", controllers.HandleAdminFunc(container, "updateAdmin"))
	adminAccountGroup.DELETE("/:id", controllers.HandleAdminFunc(container, "deleteAdmin"))

	// 员工账户路由，仅限管理员
	staffGroup := api.Group("/staff")
	staffGroup.Use(middleware.AuthenticateSystemAdmin())
	staffGroup.GET("", controllers.HandleStaffFunc(container, "getStaffList"))
	staffGroup.GET("/:id", controllers.HandleStaffFunc(container, "getStaff"))
	staffGroup.POST("", controllers.HandleStaffFunc(container, "createStaff"))
	staffGroup.PATCH("/:id", controllers.HandleStaffFunc(container, "updateStaff"))
	staffGroup.DELETE("/:id", controllers.HandleStaffFunc(container, "deleteStaff"))

	// 账务路由组：租客角色可自助访问本人记录，控制器内再做自助范围校验
	billing := api.Group("/tenants")
	billing.Use(middleware.AuthenticateBilling())
	billing.Use(middleware.IPRateLimiter(30, 50))
	billing.GET("/:id", controllers.HandleTenantFunc(container, "getTenant"))
	billing.POST("/:id/payments", controllers.HandlePaymentFunc(container, "createPayment"))
	billing.GET("/:id/payments", controllers.HandlePaymentFunc(container, "getPayments"))
	billing.GET("/:id/charges", controllers.HandlePaymentFunc(container, "getCharges"))
	billing.GET("/:id/statement", controllers.HandlePaymentFunc(container, "getStatement"))

	// 管理面板路由：全部角色可读，学校、家长只读账户从这里取汇总视图
	dashboardGroup := api.Group("/dashboard")
	dashboardGroup.Use(middleware.Authentication())
	dashboardGroup.GET("/summary", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleHealthFunc(container, "dashboardSummary"))
}

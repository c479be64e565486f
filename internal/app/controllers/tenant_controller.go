package controllers

import (
	"ilodge-http-service/internal/domain/models"
	"ilodge-http-service/internal/domain/services"
	"ilodge-http-service/internal/domain/services/container"
	"ilodge-http-service/internal/error/code"
	"ilodge-http-service/internal/error/response"
	"time"

	"github.com/gin-gonic/gin"
)

// InterfaceTenantController 定义租客控制器接口
type InterfaceTenantController interface {
	GetTenants()
	GetTenant()
	CreateTenant()
	UpdateTenant()
	ArchiveTenant()
	AssignRoom()
	UnassignRoom()
}

// TenantController 处理租客相关的请求
type TenantController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTenantController 创建一个新的租客控制器
func NewTenantController(ctx *gin.Context, container *container.ServiceContainer) *TenantController {
	return &TenantController{
		Ctx:       ctx,
		Container: container,
	}
}

// TenantRequest 表示创建租客请求
type TenantRequest struct {
	Name             string `json:"name" binding:"required" example:"张三"`
	Email            string `json:"email" binding:"omitempty,email" example:"zhangsan@example.com"`
	Phone            string `json:"phone" binding:"required" example:"13812345678"`
	Password         string `json:"password" example:"secret123"` // 可选，租客自助登录密码
	EmergencyContact string `json:"emergency_contact" example:"李四 13987654321"`
	LeaseStart       string `json:"lease_start" binding:"required" example:"2025-09-01"`
	LeaseEnd         string `json:"lease_end" binding:"required" example:"2026-06-30"`
	RoomID           *uint  `json:"room_id" example:"1"` // 可选，创建后立即分配房间
}

// AssignRoomRequest 表示房间分配请求
type AssignRoomRequest struct {
	RoomID uint `json:"room_id" binding:"required" example:"1"`
}

// GetTenants 获取租客列表
// @Summary      获取租客列表
// @Description  获取系统中所有未归档租客的列表
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        page query int false "页码，默认为1"
// @Param        page_size query int false "每页条数，默认为10"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tenants [get]
func (c *TenantController) GetTenants() {
	page, pageSize := parsePagination(c.Ctx)

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenants, total, err := tenantService.GetAllTenants(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取租客列表失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        tenants,
	})
}

// GetTenant 获取租客详情
// @Summary      获取租客详情
// @Description  根据ID获取特定租客的详细信息，余额读取时自动对账
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        id path int true "租客ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /tenants/{id} [get]
func (c *TenantController) GetTenant() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}
	if !canAccessTenant(c.Ctx, id) {
		response.Forbidden(c.Ctx, "只能查看本人的记录")
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenant, err := tenantService.GetTenantByID(id)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, tenant)
}

// CreateTenant 创建新租客
// @Summary      创建租客
// @Description  创建新租客，余额从0开始。携带room_id时创建后立即走分配服务入住
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        tenant body TenantRequest true "租客信息"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /tenants [post]
func (c *TenantController) CreateTenant() {
	var req TenantRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数绑定错误: "+err.Error(), nil)
		return
	}

	leaseStart, err := time.Parse("2006-01-02", req.LeaseStart)
	if err != nil {
		response.ParamError(c.Ctx, "租期开始日期格式不正确")
		return
	}
	leaseEnd, err := time.Parse("2006-01-02", req.LeaseEnd)
	if err != nil {
		response.ParamError(c.Ctx, "租期结束日期格式不正确")
		return
	}

	tenant := &models.Tenant{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Password:         req.Password,
		EmergencyContact: req.EmergencyContact,
		LeaseStart:       leaseStart,
		LeaseEnd:         leaseEnd,
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	if err := tenantService.CreateTenant(tenant); err != nil {
		handleServiceError(c.Ctx, err)
		return
	}

	// 创建时指定了房间，走分配服务完成入住
	if req.RoomID != nil {
		reconciliationService := c.Container.GetService("reconciliation").(services.InterfaceReconciliationService)
		assigned, err := reconciliationService.AssignTenantToRoom(tenant.ID, *req.RoomID)
		if err != nil {
			// 租客已创建成功，分配失败时原样返回租客并提示
			response.Success(c.Ctx, gin.H{
				"tenant":         tenant,
				"assign_warning": err.Error(),
			})
			return
		}
		tenant = assigned
	}
	response.Success(c.Ctx, tenant)
}

// UpdateTenant 更新租客信息
// @Summary      更新租客
// @Description  更新租客联系信息和租期。房间、余额、缴费状态为服务托管字段，直接写入会被拒绝
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        id path int true "租客ID"
// @Param        tenant body map[string]interface{} true "要更新的字段"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /tenants/{id} [patch]
func (c *TenantController) UpdateTenant() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数绑定错误: "+err.Error(), nil)
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenant, err := tenantService.UpdateTenant(id, updates)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, tenant)
}

// ArchiveTenant 归档退租租客
// @Summary      归档租客
// @Description  归档退租租客，归档前必须先退房
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        id path int true "租客ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /tenants/{id}/archive [post]
func (c *TenantController) ArchiveTenant() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	if err := tenantService.ArchiveTenant(id); err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, nil)
}

// AssignRoom 把租客分配到房间
// @Summary      分配房间
// @Description  把租客分配到房间，满员或已分配时返回冲突
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        id path int true "租客ID"
// @Param        body body AssignRoomRequest true "目标房间"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /tenants/{id}/assign-room [post]
func (c *TenantController) AssignRoom() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var req AssignRoomRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数绑定错误: "+err.Error(), nil)
		return
	}

	reconciliationService := c.Container.GetService("reconciliation").(services.InterfaceReconciliationService)
	tenant, err := reconciliationService.AssignTenantToRoom(id, req.RoomID)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, tenant)
}

// UnassignRoom 解除租客与房间的绑定
// @Summary      退房
// @Description  解除租客与房间的绑定，重复调用按幂等处理
// @Tags         Tenant
// @Accept       json
// @Produce      json
// @Param        id path int true "租客ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /tenants/{id}/unassign-room [post]
func (c *TenantController) UnassignRoom() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	reconciliationService := c.Container.GetService("reconciliation").(services.InterfaceReconciliationService)
	tenant, err := reconciliationService.UnassignTenant(id)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, tenant)
}

// HandleTenantFunc 返回一个处理租客请求的Gin处理函数
func HandleTenantFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTenantController(ctx, container)

		switch method {
		case "getTenants":
			controller.GetTenants()
		case "getTenant":
			controller.GetTenant()
		case "createTenant":
			controller.CreateTenant()
		case "updateTenant":
			controller.UpdateTenant()
		case "archiveTenant":
			controller.ArchiveTenant()
		case "assignRoom":
			controller.AssignRoom()
		case "unassignRoom":
			controller.UnassignRoom()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

package controllers

import (
	"ilodge-http-service/internal/domain/models"
	"ilodge-http-service/internal/domain/services"
	"ilodge-http-service/internal/domain/services/container"
	"ilodge-http-service/internal/error/code"
	"ilodge-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceMaintenanceController 定义维修工单控制器接口
type InterfaceMaintenanceController interface {
	GetTickets()
	GetTicket()
	CreateTicket()
	UpdateTicket()
	DeleteTicket()
}

// MaintenanceController 处理维修工单相关的请求
type MaintenanceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewMaintenanceController 创建一个新的维修工单控制器
func NewMaintenanceController(ctx *gin.Context, container *container.ServiceContainer) *MaintenanceController {
	return &MaintenanceController{
		Ctx:       ctx,
		Container: container,
	}
}

// TicketRequest 表示创建维修工单请求
type TicketRequest struct {
	RoomID      uint   `json:"room_id" binding:"required" example:"1"`
	Title       string `json:"title" binding:"required" example:"空调漏水"`
	Description string `json:"description" example:"床头空调滴水，地面有积水"`
	Priority    string `json:"priority" example:"normal"` // low, normal, high
	ReportedBy  string `json:"reported_by" example:"张三"`
}

// GetTickets 获取维修工单列表
// @Summary      获取维修工单列表
// @Description  分页获取维修工单列表，可按状态过滤
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        page query int false "页码，默认为1"
// @Param        page_size query int false "每页条数，默认为10"
// @Param        status query string false "按状态过滤: open, in_progress, resolved"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /maintenance-tickets [get]
func (c *MaintenanceController) GetTickets() {
	page, pageSize := parsePagination(c.Ctx)
	status := c.Ctx.Query("status")

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	tickets, total, err := maintenanceService.GetAllTickets(page, pageSize, status)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        tickets,
	})
}

// GetTicket 获取维修工单详情
// @Summary      获取维修工单详情
// @Description  根据ID获取特定维修工单的详细信息
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        id path int true "工单ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /maintenance-tickets/{id} [get]
func (c *MaintenanceController) GetTicket() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	ticket, err := maintenanceService.GetTicketByID(id)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, ticket)
}

// CreateTicket 创建维修工单
// @Summary      创建维修工单
// @Description  为房间创建维修工单，高优先级工单会把房间置为维修状态
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        ticket body TicketRequest true "工单信息"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /maintenance-tickets [post]
func (c *MaintenanceController) CreateTicket() {
	var req TicketRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数绑定错误: "+err.Error(), nil)
		return
	}

	ticket := &models.MaintenanceTicket{
		RoomID:      req.RoomID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		ReportedBy:  req.ReportedBy,
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	if err := maintenanceService.CreateTicket(ticket); err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, ticket)
}

// UpdateTicket 更新维修工单
// @Summary      更新维修工单
// @Description  更新工单状态或优先级，已解决的工单不允许再修改
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        id path int true "工单ID"
// @Param        ticket body map[string]interface{} true "要更新的字段"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /maintenance-tickets/{id} [patch]
func (c *MaintenanceController) UpdateTicket() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数绑定错误: "+err.Error(), nil)
		return
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	ticket, err := maintenanceService.UpdateTicket(id, updates)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, ticket)
}

// DeleteTicket 删除维修工单
// @Summary      删除维修工单
// @Description  删除维修工单，删除后按剩余未结工单重新推导房间的维修标记
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        id path int true "工单ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /maintenance-tickets/{id} [delete]
func (c *MaintenanceController) DeleteTicket() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	if err := maintenanceService.DeleteTicket(id); err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, nil)
}

// HandleMaintenanceFunc 返回一个处理维修工单请求的Gin处理函数
func HandleMaintenanceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMaintenanceController(ctx, container)

		switch method {
		case "getTickets":
			controller.GetTickets()
		case "getTicket":
			controller.GetTicket()
		case "createTicket":
			controller.CreateTicket()
		case "updateTicket":
			controller.UpdateTicket()
		case "deleteTicket":
			controller.DeleteTicket()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

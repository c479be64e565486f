package controllers

import (
	"ilodge-http-service/internal/domain/models"
	"ilodge-http-service/internal/domain/services"
	"ilodge-http-service/internal/domain/services/container"
	"ilodge-http-service/internal/error/code"
	"ilodge-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceStaffController 定义员工控制器接口
type InterfaceStaffController interface {
	GetStaffList()
	GetStaff()
	CreateStaff()
	UpdateStaff()
	DeleteStaff()
}

// StaffController 处理员工账户相关的请求
type StaffController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewStaffController 创建一个新的员工控制器
func NewStaffController(ctx *gin.Context, container *container.ServiceContainer) *StaffController {
	return &StaffController{
		Ctx:       ctx,
		Container: container,
	}
}

// StaffRequest 表示创建员工请求
type StaffRequest struct {
	Name     string `json:"name" binding:"required" example:"王五"`
	Username string `json:"username" binding:"required" example:"wangwu"`
	Password string `json:"password" binding:"required" example:"secret123"`
	Phone    string `json:"phone" example:"13712345678"`
	Position string `json:"position" example:"宿管"`
	Role     string `json:"role" example:"staff"` // staff, school, parent
}

// GetStaffList 获取员工列表
// @Summary      获取员工列表
// @Description  分页获取员工及只读角色账户列表
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Param        page query int false "页码，默认为1"
// @Param        page_size query int false "每页条数，默认为10"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /staff [get]
func (c *StaffController) GetStaffList() {
	page, pageSize := parsePagination(c.Ctx)

	staffService := c.Container.GetService("staff").(services.InterfaceStaffService)
	staffList, total, err := staffService.GetAllStaff(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取员工列表失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        staffList,
	})
}

// GetStaff 获取员工详情
// @Summary      获取员工详情
// @Description  根据ID获取特定员工账户的详细信息
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Param        id path int true "员工ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /staff/{id} [get]
func (c *StaffController) GetStaff() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	staffService := c.Container.GetService("staff").(services.InterfaceStaffService)
	staff, err := staffService.GetStaffByID(id)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, staff)
}

// CreateStaff 创建员工账户
// @Summary      创建员工
// @Description  创建员工或学校、家长只读角色账户，用户名必须唯一
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Param        staff body StaffRequest true "员工信息"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /staff [post]
func (c *StaffController) CreateStaff() {
	var req StaffRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数绑定错误: "+err.Error(), nil)
		return
	}

	staff := &models.Staff{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Phone:    req.Phone,
		Position: req.Position,
		Role:     req.Role,
	}

	staffService := c.Container.GetService("staff").(services.InterfaceStaffService)
	if err := staffService.CreateStaff(staff); err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, staff)
}

// UpdateStaff 更新员工信息
// @Summary      更新员工
// @Description  更新员工的基本信息、角色或密码
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Param        id path int true "员工ID"
// @Param        staff body map[string]interface{} true "要更新的字段"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /staff/{id} [patch]
func (c *StaffController) UpdateStaff() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数绑定错误: "+err.Error(), nil)
		return
	}

	staffService := c.Container.GetService("staff").(services.InterfaceStaffService)
	staff, err := staffService.UpdateStaff(id, updates)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, staff)
}

// DeleteStaff 删除员工账户
// @Summary      删除员工
// @Description  删除员工或只读角色账户
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Param        id path int true "员工ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /staff/{id} [delete]
func (c *StaffController) DeleteStaff() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	staffService := c.Container.GetService("staff").(services.InterfaceStaffService)
	if err := staffService.DeleteStaff(id); err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, nil)
}

// HandleStaffFunc 返回一个处理员工请求的Gin处理函数
func HandleStaffFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStaffController(ctx, container)

		switch method {
		case "getStaffList":
			controller.GetStaffList()
		case "getStaff":
			controller.GetStaff()
		case "createStaff":
			controller.CreateStaff()
		case "updateStaff":
			controller.UpdateStaff()
		case "deleteStaff":
			controller.DeleteStaff()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

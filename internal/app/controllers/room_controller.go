package controllers

import (
	"ilodge-http-service/internal/domain/models"
	"ilodge-http-service/internal/domain/services"
	"ilodge-http-service/internal/domain/services/container"
	"ilodge-http-service/internal/error/code"
	"ilodge-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InterfaceRoomController 定义房间控制器接口
type InterfaceRoomController interface {
	GetRooms()
	GetRoom()
	CreateRoom()
	UpdateRoom()
	DeleteRoom()
	ChangeRoomType()
}

// RoomController 处理房间相关的请求
type RoomController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRoomController 创建一个新的房间控制器
func NewRoomController(ctx *gin.Context, container *container.ServiceContainer) *RoomController {
	return &RoomController{
		Ctx:       ctx,
		Container: container,
	}
}

// RoomRequest 表示创建房间请求
type RoomRequest struct {
	Number        string          `json:"number" binding:"required" example:"A-101"`
	Floor         string          `json:"floor" example:"1F"`
	Type          string          `json:"type" binding:"required" example:"double"` // single, double, triple, quad
	MaxOccupants  int             `json:"max_occupants" example:"2"`                // 不填时按房型取默认值
	PricePerMonth decimal.Decimal `json:"price_per_month" example:"1500.00"`
}

// ChangeRoomTypeRequest 表示房型调整请求
type ChangeRoomTypeRequest struct {
	NewType string `json:"new_type" binding:"required" example:"triple"`
}

// GetRooms 获取房间列表
// @Summary      获取房间列表
// @Description  获取系统中所有房间的列表，入住人数读取时自动对账
// @Tags         Room
// @Accept       json
// @Produce      json
// @Param        page query int false "页码，默认为1"
// @Param        page_size query int false "每页条数，默认为10"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /rooms [get]
func (c *RoomController) GetRooms() {
	page, pageSize := parsePagination(c.Ctx)

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	rooms, total, err := roomService.GetAllRooms(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取房间列表失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        rooms,
	})
}

// GetRoom 获取房间详情
// @Summary      获取房间详情
// @Description  根据ID获取特定房间的详细信息
// @Tags         Room
// @Accept       json
// @Produce      json
// @Param        id path int true "房间ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /rooms/{id} [get]
func (c *RoomController) GetRoom() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	room, err := roomService.GetRoomByID(id)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, room)
}

// CreateRoom 创建新房间
// @Summary      创建房间
// @Description  创建新房间，房间号必须唯一，容量不填时按房型取默认值
// @Tags         Room
// @Accept       json
// @Produce      json
// @Param        room body RoomRequest true "房间信息"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /rooms [post]
func (c *RoomController) CreateRoom() {
	var req RoomRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数绑定错误: "+err.Error(), nil)
		return
	}

	room := &models.Room{
		Number:        req.Number,
		Floor:         req.Floor,
		Type:          req.Type,
		MaxOccupants:  req.MaxOccupants,
		PricePerMonth: req.PricePerMonth,
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	if err := roomService.CreateRoom(room); err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, room)
}

// UpdateRoom 更新房间信息
// @Summary      更新房间
// @Description  更新房间信息。入住人数和状态为派生字段，不允许直接修改
// @Tags         Room
// @Accept       json
// @Produce      json
// @Param        id path int true "房间ID"
// @Param        room body map[string]interface{} true "要更新的字段"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /rooms/{id} [patch]
func (c *RoomController) UpdateRoom() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数绑定错误: "+err.Error(), nil)
		return
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	room, err := roomService.UpdateRoom(id, updates)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, room)
}

// DeleteRoom 删除房间
// @Summary      删除房间
// @Description  删除房间，仍有住户的房间不允许删除
// @Tags         Room
// @Accept       json
// @Produce      json
// @Param        id path int true "房间ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /rooms/{id} [delete]
func (c *RoomController) DeleteRoom() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	if err := roomService.DeleteRoom(id); err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, nil)
}

// ChangeRoomType 调整房型
// @Summary      调整房型
// @Description  调整房型并按新房型重算容量，新容量小于当前入住人数时拒绝
// @Tags         Room
// @Accept       json
// @Produce      json
// @Param        id path int true "房间ID"
// @Param        body body ChangeRoomTypeRequest true "新房型"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /rooms/{id}/change-type [post]
func (c *RoomController) ChangeRoomType() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var req ChangeRoomTypeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数绑定错误: "+err.Error(), nil)
		return
	}

	reconciliationService := c.Container.GetService("reconciliation").(services.InterfaceReconciliationService)
	room, err := reconciliationService.ChangeRoomType(id, req.NewType)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, room)
}

// HandleRoomFunc 返回一个处理房间请求的Gin处理函数
func HandleRoomFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRoomController(ctx, container)

		switch method {
		case "getRooms":
			controller.GetRooms()
		case "getRoom":
			controller.GetRoom()
		case "createRoom":
			controller.CreateRoom()
		case "updateRoom":
			controller.UpdateRoom()
		case "deleteRoom":
			controller.DeleteRoom()
		case "changeRoomType":
			controller.ChangeRoomType()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

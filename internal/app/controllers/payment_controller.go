package controllers

import (
	"ilodge-http-service/internal/domain/services"
	"ilodge-http-service/internal/domain/services/container"
	"ilodge-http-service/internal/error/code"
	"ilodge-http-service/internal/error/response"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InterfacePaymentController 定义账务控制器接口
type InterfacePaymentController interface {
	CreatePayment()
	GetPayments()
	CreateCharge()
	GetCharges()
	GetStatement()
}

// PaymentController 处理缴费和账单相关的请求
type PaymentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPaymentController 创建一个新的账务控制器
func NewPaymentController(ctx *gin.Context, container *container.ServiceContainer) *PaymentController {
	return &PaymentController{
		Ctx:       ctx,
		Container: container,
	}
}

// PaymentRequest 表示缴费请求
type PaymentRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required" example:"1500.00"`
	Method          string          `json:"method" example:"transfer"` // cash, transfer, online
	ReferenceNumber string          `json:"reference_number" example:"TRX-20250901-001"`
	Notes           string          `json:"notes" example:"九月房租"`
	PaymentDate     string          `json:"payment_date" example:"2025-09-01"` // 不填时取当前时间
	IdempotencyKey  string          `json:"idempotency_key" example:"c1f7a0d2"` // 可选，携带相同键的重复请求只记一笔
}

// ChargeRequest 表示账单计提请求
type ChargeRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required" example:"1500.00"`
	Description string          `json:"description" example:"2025年9月房租"`
	DueDate     string          `json:"due_date" example:"2025-09-05"` // 不填时按配置的应缴日推算
}

// CreatePayment 记录缴费
// @Summary      记录缴费
// @Description  为租客追加一笔缴费记录并重算余额。余额从两份台账整体重算，重复的幂等键不会双重扣减
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        id path int true "租客ID"
// @Param        payment body PaymentRequest true "缴费信息"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /tenants/{id}/payments [post]
func (c *PaymentController) CreatePayment() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}
	if !canAccessTenant(c.Ctx, id) {
		response.Forbidden(c.Ctx, "只能为本人缴费")
		return
	}

	var req PaymentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数绑定错误: "+err.Error(), nil)
		return
	}

	meta := services.PaymentMeta{
		Method:          req.Method,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
	}
	if req.PaymentDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PaymentDate)
		if err != nil {
			response.ParamError(c.Ctx, "缴费日期格式不正确")
			return
		}
		meta.PaymentDate = parsed
	}
	if req.IdempotencyKey != "" {
		meta.IdempotencyKey = &req.IdempotencyKey
	}

	reconciliationService := c.Container.GetService("reconciliation").(services.InterfaceReconciliationService)
	payment, tenant, err := reconciliationService.ApplyPayment(id, req.Amount, meta)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"payment": payment,
		"balance": tenant.Balance,
		"payment_status": tenant.PaymentStatus,
	})
}

// GetPayments 获取缴费记录
// @Summary      获取缴费记录
// @Description  按缴费日期倒序分页返回租客的缴费记录
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        id path int true "租客ID"
// @Param        page query int false "页码，默认为1"
// @Param        page_size query int false "每页条数，默认为10"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /tenants/{id}/payments [get]
func (c *PaymentController) GetPayments() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}
	if !canAccessTenant(c.Ctx, id) {
		response.Forbidden(c.Ctx, "只能查看本人的缴费记录")
		return
	}
	page, pageSize := parsePagination(c.Ctx)

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payments, total, err := paymentService.ListPayments(id, page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取缴费记录失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        payments,
	})
}

// CreateCharge 计提账单
// @Summary      计提账单
// @Description  为租客计提一笔应缴账单，余额升高后缴清状态回到pending
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        id path int true "租客ID"
// @Param        charge body ChargeRequest true "账单信息"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /tenants/{id}/charges [post]
func (c *PaymentController) CreateCharge() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}

	var req ChargeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数绑定错误: "+err.Error(), nil)
		return
	}

	var dueDate time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			response.ParamError(c.Ctx, "到期日格式不正确")
			return
		}
		dueDate = parsed
	}

	reconciliationService := c.Container.GetService("reconciliation").(services.InterfaceReconciliationService)
	charge, tenant, err := reconciliationService.PostCharge(id, req.Amount, req.Description, dueDate)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"charge":  charge,
		"balance": tenant.Balance,
		"payment_status": tenant.PaymentStatus,
	})
}

// GetCharges 获取账单记录
// @Summary      获取账单记录
// @Description  按到期日倒序分页返回租客的账单记录
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        id path int true "租客ID"
// @Param        page query int false "页码，默认为1"
// @Param        page_size query int false "每页条数，默认为10"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /tenants/{id}/charges [get]
func (c *PaymentController) GetCharges() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}
	if !canAccessTenant(c.Ctx, id) {
		response.Forbidden(c.Ctx, "只能查看本人的账单")
		return
	}
	page, pageSize := parsePagination(c.Ctx)

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	charges, total, err := paymentService.ListCharges(id, page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取账单记录失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        charges,
	})
}

// GetStatement 获取租客账单汇总
// @Summary      获取租客账单汇总
// @Description  返回租客的余额、缴费状态和两份台账的合并结果
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        id path int true "租客ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /tenants/{id}/statement [get]
func (c *PaymentController) GetStatement() {
	id, ok := parseIDParam(c.Ctx, "id")
	if !ok {
		return
	}
	if !canAccessTenant(c.Ctx, id) {
		response.Forbidden(c.Ctx, "只能查看本人的账单")
		return
	}

	reconciliationService := c.Container.GetService("reconciliation").(services.InterfaceReconciliationService)
	statement, err := reconciliationService.GetTenantStatement(id)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, statement)
}

// HandlePaymentFunc 返回一个处理账务请求的Gin处理函数
func HandlePaymentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPaymentController(ctx, container)

		switch method {
		case "createPayment":
			controller.CreatePayment()
		case "getPayments":
			controller.GetPayments()
		case "createCharge":
			controller.CreateCharge()
		case "getCharges":
			controller.GetCharges()
		case "getStatement":
			controller.GetStatement()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

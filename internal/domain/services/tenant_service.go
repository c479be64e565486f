package services

import (
	"errors"
	"ilodge-http-service/internal/domain/models"
	"ilodge-http-service/internal/infrastructure/config"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InterfaceTenantService defines the tenant directory interface
type InterfaceTenantService interface {
	GetAllTenants(page int, pageSize int) ([]models.Tenant, int64, error)
	GetTenantByID(id uint) (*models.Tenant, error)
	CreateTenant(tenant *models.Tenant) error
	UpdateTenant(id uint, updates map[string]interface{}) (*models.Tenant, error)
	ArchiveTenant(id uint) error
}

// TenantService 提供租客相关的服务
type TenantService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTenantService 创建一个新的租客服务
func NewTenantService(db *gorm.DB, cfg *config.Config) InterfaceTenantService {
	return &TenantService{
		DB:     db,
		Config: cfg,
	}
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// 租客表中由分配/对账服务托管的字段，目录接口不允许直接写入
var tenantServiceOwnedFields = []string{
	"room_id", "roomId", "balance", "payment_status", "paymentStatus", "archived",
}

// 目录接口允许直接更新的字段，载荷中的其他字段一律拒绝
var tenantUpdatableFields = map[string]bool{
	"name":              true,
	"email":             true,
	"phone":             true,
	"emergency_contact": true,
	"lease_start":       true,
	"lease_end":         true,
	"password":          true,
}

// 1 GetAllTenants 获取所有租客
func (s *TenantService) GetAllTenants(page int, pageSize int) ([]models.Tenant, int64, error) {
	var tenants []models.Tenant
	var total int64
	if err := s.DB.Model(&models.Tenant{}).Where("archived = ?", false).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := s.DB.Where("archived = ?", false).
		Order("name asc").Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&tenants).Error; err != nil {
		return nil, 0, err
	}
	for i := range tenants {
		status, err := deriveStoredPaymentStatus(s.DB, &tenants[i], time.Now())
		if err != nil {
			return nil, 0, err
		}
		tenants[i].PaymentStatus = status
	}
	return tenants, total, nil
}

// 2 GetTenantByID 根据ID获取租客，读取时对余额缓存做惰性对账
func (s *TenantService) GetTenantByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.DB.First(&tenant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("租客不存在")
		}
		return nil, err
	}

	// 余额缓存以账单减缴费重新计算为准
	balance, err := reconcileTenantBalance(s.DB, &tenant)
	if err != nil {
		return nil, err
	}
	tenant.Balance = balance

	status, err := deriveStoredPaymentStatus(s.DB, &tenant, time.Now())
	if err != nil {
		return nil, err
	}
	tenant.PaymentStatus = status
	return &tenant, nil
}

// 3 CreateTenant 创建新租客
func (s *TenantService) CreateTenant(tenant *models.Tenant) error {
	if tenant.Name == "" {
		return NewValidationError("租客姓名不能为空")
	}
	if tenant.Phone == "" {
		return NewValidationError("租客手机号不能为空")
	}
	if tenant.Email != "" && !emailPattern.MatchString(tenant.Email) {
		return NewValidationError("邮箱格式不正确")
	}
	if !tenant.LeaseEnd.After(tenant.LeaseStart) {
		return NewValidationError("租期结束日期必须晚于开始日期")
	}

	// 验证手机号唯一性
	var count int64
	if err := s.DB.Model(&models.Tenant{}).Where("phone = ?", tenant.Phone).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return NewConflictError("手机号已被使用")
	}

	// 房间分配必须走分配服务，目录创建时一律按未分配处理
	tenant.RoomID = nil
	tenant.Balance = decimal.Zero
	tenant.Archived = false

	if err := s.DB.Create(tenant).Error; err != nil {
		return err
	}
	tenant.PaymentStatus = models.PaymentStatusPaid // 余额为0即视为已结清
	return nil
}

// 4 UpdateTenant 更新租客信息
func (s *TenantService) UpdateTenant(id uint, updates map[string]interface{}) (*models.Tenant, error) {
	tenant, err := s.GetTenantByID(id)
	if err != nil {
		return nil, err
	}

	// 托管字段只能通过分配/对账服务变更
	for _, field := range tenantServiceOwnedFields {
		if _, ok := updates[field]; ok {
			return nil, NewForbiddenFieldError("字段 " + field + " 由服务维护，不允许直接修改")
		}
	}
	// 拒绝未知字段
	for field := range updates {
		if !tenantUpdatableFields[field] {
			return nil, NewValidationError("未知字段 " + field)
		}
	}

	// 密码更新需要重新哈希（map更新不经过模型钩子）
	if password, ok := updates["password"].(string); ok && password != "" {
		hashedPassword, err := models.HashPassword(password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashedPassword
	}

	// 如果更新手机号，需要检查唯一性
	if phone, ok := updates["phone"].(string); ok && phone != tenant.Phone {
		var count int64
		if err := s.DB.Model(&models.Tenant{}).Where("phone = ? AND id != ?", phone, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, NewConflictError("手机号已被其他租客使用")
		}
	}

	if email, ok := updates["email"].(string); ok && email != "" && !emailPattern.MatchString(email) {
		return nil, NewValidationError("邮箱格式不正确")
	}

	// 租期日期变更后仍需保持先后顺序
	leaseStart := tenant.LeaseStart
	leaseEnd := tenant.LeaseEnd
	if raw, ok := updates["lease_start"]; ok {
		parsed, err := toTime(raw)
		if err != nil {
			return nil, NewValidationError("租期开始日期格式不正确")
		}
		leaseStart = parsed
		updates["lease_start"] = parsed
	}
	if raw, ok := updates["lease_end"]; ok {
		parsed, err := toTime(raw)
		if err != nil {
			return nil, NewValidationError("租期结束日期格式不正确")
		}
		leaseEnd = parsed
		updates["lease_end"] = parsed
	}
	if !leaseEnd.After(leaseStart) {
		return nil, NewValidationError("租期结束日期必须晚于开始日期")
	}

	if err := s.DB.Model(&models.Tenant{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	// 重新获取更新后的租客信息
	return s.GetTenantByID(id)
}

// 5 ArchiveTenant 归档退租租客。归档前必须先退房，保证入住人数同步递减。
func (s *TenantService) ArchiveTenant(id uint) error {
	tenant, err := s.GetTenantByID(id)
	if err != nil {
		return err
	}
	if tenant.RoomID != nil {
		return NewConflictError("租客尚未退房，无法归档")
	}
	return s.DB.Model(&models.Tenant{}).Where("id = ?", id).Update("archived", true).Error
}

// toTime 解析更新载荷中的日期字段
func toTime(v interface{}) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed, nil
		}
		return time.Parse("2006-01-02", t)
	}
	return time.Time{}, errors.New("无法解析的日期")
}

package services

import (
	"errors"
	"ilodge-http-service/internal/domain/models"
	"ilodge-http-service/internal/infrastructure/config"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentMeta 缴费记录的附加信息
type PaymentMeta struct {
	Method          string
	ReferenceNumber string
	Notes           string
	PaymentDate     time.Time
	IdempotencyKey  *string
}

// InterfacePaymentService defines the append-only payment ledger interface
type InterfacePaymentService interface {
	RecordPayment(tenantID uint, amount decimal.Decimal, meta PaymentMeta) (*models.Payment, bool, error)
	GetPaymentByID(id uint) (*models.Payment, error)
	ListPayments(tenantID uint, page int, pageSize int) ([]models.Payment, int64, error)
	ListCharges(tenantID uint, page int, pageSize int) ([]models.Charge, int64, error)
}

// PaymentService 提供只增不改的缴费台账服务
type PaymentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPaymentService 创建一个新的缴费台账服务
func NewPaymentService(db *gorm.DB, cfg *config.Config) InterfacePaymentService {
	return &PaymentService{
		DB:     db,
		Config: cfg,
	}
}

// 1 RecordPayment 追加一条缴费记录。记录创建后不可修改，余额的变动由对账服务负责。
// 返回值中的bool表示记录是否为本次新建；携带相同幂等键的重复请求会返回已有记录。
func (s *PaymentService) RecordPayment(tenantID uint, amount decimal.Decimal, meta PaymentMeta) (*models.Payment, bool, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, false, NewValidationError("缴费金额必须大于0")
	}

	// 验证租客是否存在
	var tenant models.Tenant
	if err := s.DB.First(&tenant, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, NewNotFoundError("租客不存在")
		}
		return nil, false, err
	}
	if tenant.Archived {
		return nil, false, NewConflictError("租客已归档，无法缴费")
	}

	// 幂等键命中时直接返回已有记录
	if meta.IdempotencyKey != nil && *meta.IdempotencyKey != "" {
		var existing models.Payment
		err := s.DB.Where("tenant_id = ? AND idempotency_key = ?", tenantID, *meta.IdempotencyKey).
			First(&existing).Error
		if err == nil {
			return &existing, false, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
	} else {
		meta.IdempotencyKey = nil
	}

	if meta.PaymentDate.IsZero() {
		meta.PaymentDate = time.Now()
	}
	if meta.ReferenceNumber == "" {
		// 未提供凭证号时生成一个，保证每笔缴费可追溯
		meta.ReferenceNumber = uuid.NewString()
	}
	if meta.Method == "" {
		meta.Method = models.PaymentMethodCash
	}

	payment := &models.Payment{
		TenantID:        tenantID,
		Amount:          amount,
		PaymentDate:     meta.PaymentDate,
		Method:          meta.Method,
		ReferenceNumber: meta.ReferenceNumber,
		Notes:           meta.Notes,
		Status:          models.PaymentStatusRecorded,
		IdempotencyKey:  meta.IdempotencyKey,
	}

	if err := s.DB.Create(payment).Error; err != nil {
		// 并发下撞上(tenant_id, idempotency_key)唯一索引，以已落库的记录为准
		if meta.IdempotencyKey != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.Payment
			if lookupErr := s.DB.Where("tenant_id = ? AND idempotency_key = ?", tenantID, *meta.IdempotencyKey).
				First(&existing).Error; lookupErr == nil {
				return &existing, false, nil
			}
		}
		return nil, false, err
	}
	return payment, true, nil
}

// 2 GetPaymentByID 根据ID获取缴费记录
func (s *PaymentService) GetPaymentByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("缴费记录不存在")
		}
		return nil, err
	}
	return &payment, nil
}

// 3 ListPayments 按缴费日期倒序分页返回租客的缴费记录
func (s *PaymentService) ListPayments(tenantID uint, page int, pageSize int) ([]models.Payment, int64, error) {
	var payments []models.Payment
	var total int64
	if err := s.DB.Model(&models.Payment{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := s.DB.Where("tenant_id = ?", tenantID).
		Order("payment_date desc, id desc").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&payments).Error; err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

// 4 ListCharges 按到期日倒序分页返回租客的账单记录
func (s *PaymentService) ListCharges(tenantID uint, page int, pageSize int) ([]models.Charge, int64, error) {
	var charges []models.Charge
	var total int64
	if err := s.DB.Model(&models.Charge{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := s.DB.Where("tenant_id = ?", tenantID).
		Order("due_date desc, id desc").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&charges).Error; err != nil {
		return nil, 0, err
	}
	return charges, total, nil
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// 缴费方式
const (
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "transfer"
	PaymentMethodOnline   = "online"
)

// PaymentStatusRecorded 缴费记录唯一的状态，创建后不可变更
const PaymentStatusRecorded = "recorded"

// Payment 表示一笔缴费记录。记录只增不改，作为对账的事实来源。
type Payment struct {
	BaseModel
	TenantID        uint            `gorm:"not null;index;uniqueIndex:idx_tenant_idem,priority:1" json:"tenant_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentDate     time.Time       `gorm:"not null;index" json:"payment_date"`
	Method          string          `gorm:"type:varchar(20);not null" json:"method"`
	ReferenceNumber string          `gorm:"type:varchar(64)" json:"reference_number"`
	Notes           string          `gorm:"type:varchar(255)" json:"notes"`
	Status          string          `gorm:"type:varchar(20);not null;default:'recorded'" json:"status"`
	IdempotencyKey  *string         `gorm:"type:varchar(64);uniqueIndex:idx_tenant_idem,priority:2" json:"idempotency_key,omitempty"`

	// 关联关系
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

// Charge 表示一笔应缴账单（租金计提）。与缴费记录一起构成余额的事实来源。
type Charge struct {
	BaseModel
	TenantID    uint            `gorm:"not null;index" json:"tenant_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description string          `gorm:"type:varchar(255)" json:"description"`
	DueDate     time.Time       `gorm:"not null;index" json:"due_date"`

	// 关联关系
	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

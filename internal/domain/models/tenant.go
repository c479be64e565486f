package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 租客缴费状态（派生值，不落库）
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
	PaymentStatusOverdue = "overdue"
)

// Tenant 表示租客信息
type Tenant struct {
	BaseModel
	Name             string          `gorm:"type:varchar(50);not null" json:"name"`
	Email            string          `gorm:"type:varchar(100)" json:"email"`
	Phone            string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"`
	Password         string          `gorm:"type:varchar(100)" json:"-"` // 租客自助登录密码，不在JSON中暴露
	EmergencyContact string          `gorm:"type:varchar(100)" json:"emergency_contact"`
	RoomID           *uint           `gorm:"index" json:"room_id"` // 所住房间，null表示未分配
	LeaseStart       time.Time       `json:"lease_start"`
	LeaseEnd         time.Time       `json:"lease_end"`
	Balance          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"balance"` // 应缴余额缓存，正数为欠费，负数为预存
	Archived         bool            `gorm:"not null;default:false" json:"archived"`               // 退租归档标记
	PaymentStatus    string          `gorm:"-" json:"payment_status"`                              // 派生缴费状态，读取时计算

	// 关联关系
	Room     *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`       // 所住房间（多对一）
	Payments []Payment `gorm:"foreignKey:TenantID" json:"payments,omitempty"` // 缴费记录（一对多）
	Charges  []Charge  `gorm:"foreignKey:TenantID" json:"charges,omitempty"`  // 账单记录（一对多）
}

// DeriveTenantPaymentStatus 根据余额和最早未结账单的到期日计算缴费状态。
// 余额结清即为paid；有欠费且账单已到期为overdue，否则为pending。
func DeriveTenantPaymentStatus(balance decimal.Decimal, earliestDue *time.Time, now time.Time) string {
	if balance.LessThanOrEqual(decimal.Zero) {
		return PaymentStatusPaid
	}
	if earliestDue != nil && now.After(*earliestDue) {
		return PaymentStatusOverdue
	}
	return PaymentStatusPending
}

// BeforeCreate 是一个GORM钩子，在创建新记录前运行
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	// 如果提供了密码且不是已哈希的，对其进行哈希处理
	if t.Password != "" && len(t.Password) < 60 {
		hashedPassword, err := HashPassword(t.Password)
		if err != nil {
			return err
		}
		t.Password = hashedPassword
	}
	return nil
}

// BeforeSave 是一个GORM钩子，在保存记录前运行
func (t *Tenant) BeforeSave(tx *gorm.DB) error {
	// 如果提供了密码且不是已哈希的，对其进行哈希处理
	if t.Password != "" && len(t.Password) < 60 {
		hashedPassword, err := HashPassword(t.Password)
		if err != nil {
			return err
		}
		t.Password = hashedPassword
	}
	return nil
}

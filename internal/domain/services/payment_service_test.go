package services

import (
	"testing"

	"ilodge-http-service/internal/domain/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPaymentValidatesAmount(t *testing.T) {
	db, _, _, paymentService, _ := newTestServices(t)
	tenant := seedTenant(t, db, "张三", "13800000001")

	_, _, err := paymentService.RecordPayment(tenant.ID, decimal.Zero, PaymentMeta{})
	assert.True(t, IsKind(err, KindValidation))

	_, _, err = paymentService.RecordPayment(tenant.ID, dec(-100), PaymentMeta{})
	assert.True(t, IsKind(err, KindValidation))
}

func TestRecordPaymentTenantChecks(t *testing.T) {
	db, _, _, paymentService, _ := newTestServices(t)

	_, _, err := paymentService.RecordPayment(999, dec(100), PaymentMeta{})
	assert.True(t, IsKind(err, KindNotFound))

	tenant := seedTenant(t, db, "张三", "13800000001")
	require.NoError(t, db.Model(&models.Tenant{}).Where("id = ?", tenant.ID).
		Update("archived", true).Error)
	_, _, err = paymentService.RecordPayment(tenant.ID, dec(100), PaymentMeta{})
	assert.True(t, IsKind(err, KindConflict))
}

func TestRecordPaymentFillsDefaults(t *testing.T) {
	db, _, _, paymentService, _ := newTestServices(t)
	tenant := seedTenant(t, db, "张三", "13800000001")

	payment, created, err := paymentService.RecordPayment(tenant.ID, dec(100), PaymentMeta{})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.PaymentMethodCash, payment.Method)
	assert.NotEmpty(t, payment.ReferenceNumber)
	assert.False(t, payment.PaymentDate.IsZero())
	assert.Equal(t, models.PaymentStatusRecorded, payment.Status)
}

func TestRecordPaymentIdempotencyKeyDeduplicates(t *testing.T) {
	db, _, _, paymentService, _ := newTestServices(t)
	tenant := seedTenant(t, db, "张三", "13800000001")

	first, created, err := paymentService.RecordPayment(tenant.ID, dec(600),
		PaymentMeta{IdempotencyKey: strPtr("sept-rent")})
	require.NoError(t, err)
	assert.True(t, created)

	// 重复请求返回已有记录，不新增行
	replay, created, err := paymentService.RecordPayment(tenant.ID, dec(600),
		PaymentMeta{IdempotencyKey: strPtr("sept-rent")})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, replay.ID)

	var count int64
	require.NoError(t, db.Model(&models.Payment{}).Where("tenant_id = ?", tenant.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRecordPaymentDistinctKeysCreateSeparateRows(t *testing.T) {
	db, _, _, paymentService, _ := newTestServices(t)
	tenant := seedTenant(t, db, "张三", "13800000001")

	_, _, err := paymentService.RecordPayment(tenant.ID, dec(600),
		PaymentMeta{IdempotencyKey: strPtr("sept-rent")})
	require.NoError(t, err)
	_, _, err = paymentService.RecordPayment(tenant.ID, dec(600),
		PaymentMeta{IdempotencyKey: strPtr("oct-rent")})
	require.NoError(t, err)

	// 不带幂等键的缴费各自独立
	_, _, err = paymentService.RecordPayment(tenant.ID, dec(100), PaymentMeta{})
	require.NoError(t, err)
	_, _, err = paymentService.RecordPayment(tenant.ID, dec(100), PaymentMeta{})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Payment{}).Where("tenant_id = ?", tenant.ID).Count(&count).Error)
	assert.Equal(t, int64(4), count)
}

func TestListPaymentsNewestFirst(t *testing.T) {
	db, _, _, paymentService, _ := newTestServices(t)
	tenant := seedTenant(t, db, "张三", "13800000001")

	_, _, err := paymentService.RecordPayment(tenant.ID, dec(100),
		PaymentMeta{PaymentDate: mustDate("2025-09-01")})
	require.NoError(t, err)
	_, _, err = paymentService.RecordPayment(tenant.ID, dec(200),
		PaymentMeta{PaymentDate: mustDate("2025-10-01")})
	require.NoError(t, err)

	payments, total, err := paymentService.ListPayments(tenant.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, payments, 2)
	assert.True(t, payments[0].Amount.Equal(dec(200)))
	assert.True(t, payments[1].Amount.Equal(dec(100)))
}

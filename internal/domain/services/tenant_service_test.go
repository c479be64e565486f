package services

import (
	"testing"

	"ilodge-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateTenantStartsUnassignedWithZeroBalance(t *testing.T) {
	_, _, tenantService, _, _ := newTestServices(t)

	roomID := uint(1)
	tenant := &models.Tenant{
		Name:       "张三",
		Phone:      "13800000001",
		LeaseStart: mustDate("2025-09-01"),
		LeaseEnd:   mustDate("2026-06-30"),
		RoomID:     &roomID, // 目录创建不接受房间分配
	}
	require.NoError(t, tenantService.CreateTenant(tenant))

	assert.Nil(t, tenant.RoomID)
	assert.True(t, tenant.Balance.IsZero())
	assert.Equal(t, models.PaymentStatusPaid, tenant.PaymentStatus)
}

func TestCreateTenantValidation(t *testing.T) {
	_, _, tenantService, _, _ := newTestServices(t)

	err := tenantService.CreateTenant(&models.Tenant{
		Phone:      "13800000001",
		LeaseStart: mustDate("2025-09-01"),
		LeaseEnd:   mustDate("2026-06-30"),
	})
	assert.True(t, IsKind(err, KindValidation))

	err = tenantService.CreateTenant(&models.Tenant{
		Name:       "张三",
		Phone:      "13800000001",
		Email:      "not-an-email",
		LeaseStart: mustDate("2025-09-01"),
		LeaseEnd:   mustDate("2026-06-30"),
	})
	assert.True(t, IsKind(err, KindValidation))

	// 租期结束必须晚于开始
	err = tenantService.CreateTenant(&models.Tenant{
		Name:       "张三",
		Phone:      "13800000001",
		LeaseStart: mustDate("2026-06-30"),
		LeaseEnd:   mustDate("2025-09-01"),
	})
	assert.True(t, IsKind(err, KindValidation))
}

func TestCreateTenantDuplicatePhoneConflict(t *testing.T) {
	db, _, tenantService, _, _ := newTestServices(t)
	seedTenant(t, db, "张三", "13800000001")

	err := tenantService.CreateTenant(&models.Tenant{
		Name:       "李四",
		Phone:      "13800000001",
		LeaseStart: mustDate("2025-09-01"),
		LeaseEnd:   mustDate("2026-06-30"),
	})
	assert.True(t, IsKind(err, KindConflict))
}

func TestUpdateTenantForbiddenFields(t *testing.T) {
	db, _, tenantService, _, _ := newTestServices(t)
	tenant := seedTenant(t, db, "张三", "13800000001")

	// 托管字段无论哪种写法都被拒绝，且不落库
	for _, field := range []string{"room_id", "roomId", "balance", "payment_status", "archived"} {
		_, err := tenantService.UpdateTenant(tenant.ID, map[string]interface{}{field: 1})
		assert.True(t, IsKind(err, KindForbiddenField), "field %s", field)
	}

	var stored models.Tenant
	require.NoError(t, db.First(&stored, tenant.ID).Error)
	assert.Nil(t, stored.RoomID)
	assert.False(t, stored.Archived)
}

func TestUpdateTenantUnknownFieldRejected(t *testing.T) {
	db, _, tenantService, _, _ := newTestServices(t)
	tenant := seedTenant(t, db, "张三", "13800000001")

	_, err := tenantService.UpdateTenant(tenant.ID, map[string]interface{}{"nickname": "三哥"})
	assert.True(t, IsKind(err, KindValidation))
}

func TestUpdateTenantContactFields(t *testing.T) {
	db, _, tenantService, _, _ := newTestServices(t)
	tenant := seedTenant(t, db, "张三", "13800000001")

	updated, err := tenantService.UpdateTenant(tenant.ID, map[string]interface{}{
		"email":             "zhangsan@example.com",
		"emergency_contact": "李四 13987654321",
	})
	require.NoError(t, err)
	assert.Equal(t, "zhangsan@example.com", updated.Email)
	assert.Equal(t, "李四 13987654321", updated.EmergencyContact)
}

func TestUpdateTenantPasswordRehashed(t *testing.T) {
	db, _, tenantService, _, _ := newTestServices(t)
	tenant := seedTenant(t, db, "张三", "13800000001")

	_, err := tenantService.UpdateTenant(tenant.ID, map[string]interface{}{"password": "secret123"})
	require.NoError(t, err)

	var stored models.Tenant
	require.NoError(t, db.First(&stored, tenant.ID).Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, models.CheckPassword(stored.Password, "secret123"))
}

func TestArchiveTenantRequiresUnassign(t *testing.T) {
	db, _, tenantService, _, reconciliationService := newTestServices(t)
	room := seedRoom(t, db, "A-101", models.RoomTypeSingle, 1)
	tenant := seedTenant(t, db, "张三", "13800000001")
	_, err := reconciliationService.AssignTenantToRoom(tenant.ID, room.ID)
	require.NoError(t, err)

	err = tenantService.ArchiveTenant(tenant.ID)
	assert.True(t, IsKind(err, KindConflict))

	_, err = reconciliationService.UnassignTenant(tenant.ID)
	require.NoError(t, err)
	require.NoError(t, tenantService.ArchiveTenant(tenant.ID))

	// 归档租客不出现在列表中
	tenants, total, err := tenantService.GetAllTenants(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, tenants)
}

func TestGetTenantNotFound(t *testing.T) {
	_, _, tenantService, _, _ := newTestServices(t)

	_, err := tenantService.GetTenantByID(999)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestGetTenantHealsBalanceDrift(t *testing.T) {
	db, _, tenantService, _, reconciliationService := newTestServices(t)
	tenant := seedTenant(t, db, "张三", "13800000001")
	_, _, err := reconciliationService.PostCharge(tenant.ID, dec(1000), "9月房租", mustDate("2025-09-05"))
	require.NoError(t, err)

	// 人为制造余额缓存漂移
	require.NoError(t, db.Model(&models.Tenant{}).Where("id = ?", tenant.ID).
		Update("balance", gorm.Expr("balance + 500")).Error)

	got, err := tenantService.GetTenantByID(tenant.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(dec(1000)), "balance = %s", got.Balance)
}

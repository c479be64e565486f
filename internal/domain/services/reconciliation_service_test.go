package services

import (
	"testing"
	"time"

	"ilodge-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignAndUnassignRoundTrip(t *testing.T) {
	db, roomService, _, _, reconciliationService := newTestServices(t)
	room := seedRoom(t, db, "A-101", models.RoomTypeDouble, 2)
	tenant := seedTenant(t, db, "张三", "13800000001")

	assigned, err := reconciliationService.AssignTenantToRoom(tenant.ID, room.ID)
	require.NoError(t, err)
	require.NotNil(t, assigned.RoomID)
	assert.Equal(t, room.ID, *assigned.RoomID)

	got, err := roomService.GetRoomByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.OccupantCount)
	assert.Equal(t, models.RoomStatusPartiallyOccupied, got.Status)

	unassigned, err := reconciliationService.UnassignTenant(tenant.ID)
	require.NoError(t, err)
	assert.Nil(t, unassigned.RoomID)

	got, err = roomService.GetRoomByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.OccupantCount)
	assert.Equal(t, models.RoomStatusAvailable, got.Status)

	// 重复退房按幂等处理
	again, err := reconciliationService.UnassignTenant(tenant.ID)
	require.NoError(t, err)
	assert.Nil(t, again.RoomID)
}

func TestAssignSameRoomIdempotent(t *testing.T) {
	db, roomService, _, _, reconciliationService := newTestServices(t)
	room := seedRoom(t, db, "A-101", models.RoomTypeDouble, 2)
	tenant := seedTenant(t, db, "张三", "13800000001")

	_, err := reconciliationService.AssignTenantToRoom(tenant.ID, room.ID)
	require.NoError(t, err)
	_, err = reconciliationService.AssignTenantToRoom(tenant.ID, room.ID)
	require.NoError(t, err)

	got, err := roomService.GetRoomByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.OccupantCount)
}

func TestAssignToFullRoomLeavesStateUnchanged(t *testing.T) {
	db, roomService, _, _, reconciliationService := newTestServices(t)
	room := seedRoom(t, db, "A-101", models.RoomTypeSingle, 1)
	first := seedTenant(t, db, "张三", "13800000001")
	second := seedTenant(t, db, "李四", "13800000002")

	_, err := reconciliationService.AssignTenantToRoom(first.ID, room.ID)
	require.NoError(t, err)

	_, err = reconciliationService.AssignTenantToRoom(second.ID, room.ID)
	assert.True(t, IsKind(err, KindConflict))

	// 拒绝后双方均保持原状
	var stored models.Tenant
	require.NoError(t, db.First(&stored, second.ID).Error)
	assert.Nil(t, stored.RoomID)

	got, err := roomService.GetRoomByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.OccupantCount)
}

func TestAssignChecksTenantState(t *testing.T) {
	db, _, _, _, reconciliationService := newTestServices(t)
	roomA := seedRoom(t, db, "A-101", models.RoomTypeSingle, 1)
	roomB := seedRoom(t, db, "A-102", models.RoomTypeSingle, 1)
	tenant := seedTenant(t, db, "张三", "13800000001")

	_, err := reconciliationService.AssignTenantToRoom(999, roomA.ID)
	assert.True(t, IsKind(err, KindNotFound))
	_, err = reconciliationService.AssignTenantToRoom(tenant.ID, 999)
	assert.True(t, IsKind(err, KindNotFound))

	// 已分配的租客必须先退房
	_, err = reconciliationService.AssignTenantToRoom(tenant.ID, roomA.ID)
	require.NoError(t, err)
	_, err = reconciliationService.AssignTenantToRoom(tenant.ID, roomB.ID)
	assert.True(t, IsKind(err, KindConflict))

	// 归档租客不可分配
	archived := seedTenant(t, db, "李四", "13800000002")
	require.NoError(t, db.Model(&models.Tenant{}).Where("id = ?", archived.ID).
		Update("archived", true).Error)
	_, err = reconciliationService.AssignTenantToRoom(archived.ID, roomB.ID)
	assert.True(t, IsKind(err, KindConflict))
}

func TestAssignToMaintenanceRoomConflict(t *testing.T) {
	db, _, _, _, reconciliationService := newTestServices(t)
	room := seedRoom(t, db, "A-101", models.RoomTypeDouble, 2)
	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).
		Update("under_maintenance", true).Error)
	tenant := seedTenant(t, db, "张三", "13800000001")

	_, err := reconciliationService.AssignTenantToRoom(tenant.ID, room.ID)
	assert.True(t, IsKind(err, KindConflict))
}

func TestAssignHealsDriftBeforeCapacityCheck(t *testing.T) {
	db, _, _, _, reconciliationService := newTestServices(t)
	room := seedRoom(t, db, "A-101", models.RoomTypeSingle, 1)
	tenant := seedTenant(t, db, "张三", "13800000001")

	// 缓存显示满员但实际没有住户，分配决策以实际计数为准
	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).
		Update("occupant_count", 1).Error)

	assigned, err := reconciliationService.AssignTenantToRoom(tenant.ID, room.ID)
	require.NoError(t, err)
	require.NotNil(t, assigned.RoomID)

	var stored models.Room
	require.NoError(t, db.First(&stored, room.ID).Error)
	assert.Equal(t, 1, stored.OccupantCount)
}

func TestPostChargeAndPaymentResolveStatus(t *testing.T) {
	db, _, _, _, reconciliationService := newTestServices(t)
	tenant := seedTenant(t, db, "张三", "13800000001")

	// 计提后欠费，到期日未到为pending
	future := time.Now().AddDate(0, 1, 0)
	_, after, err := reconciliationService.PostCharge(tenant.ID, dec(1000), "9月房租", future)
	require.NoError(t, err)
	assert.True(t, after.Balance.Equal(dec(1000)))
	assert.Equal(t, models.PaymentStatusPending, after.PaymentStatus)

	// 足额缴费后结清
	_, paid, err := reconciliationService.ApplyPayment(tenant.ID, dec(1000), PaymentMeta{})
	require.NoError(t, err)
	assert.True(t, paid.Balance.IsZero())
	assert.Equal(t, models.PaymentStatusPaid, paid.PaymentStatus)
}

func TestOverdueWhenEarliestUnsettledChargePastDue(t *testing.T) {
	db, _, _, _, reconciliationService := newTestServices(t)
	tenant := seedTenant(t, db, "张三", "13800000001")

	past := time.Now().AddDate(0, 0, -10)
	_, _, err := reconciliationService.PostCharge(tenant.ID, dec(1000), "8月房租", past)
	require.NoError(t, err)

	// 部分缴费未冲平已到期账单，仍为逾期
	_, after, err := reconciliationService.ApplyPayment(tenant.ID, dec(400), PaymentMeta{})
	require.NoError(t, err)
	assert.True(t, after.Balance.Equal(dec(600)))
	assert.Equal(t, models.PaymentStatusOverdue, after.PaymentStatus)

	// 最早的账单冲平后，只剩未到期账单则回到pending
	future := time.Now().AddDate(0, 1, 0)
	_, _, err = reconciliationService.PostCharge(tenant.ID, dec(500), "9月房租", future)
	require.NoError(t, err)
	_, after, err = reconciliationService.ApplyPayment(tenant.ID, dec(600), PaymentMeta{})
	require.NoError(t, err)
	assert.True(t, after.Balance.Equal(dec(500)))
	assert.Equal(t, models.PaymentStatusPending, after.PaymentStatus)
}

func TestOverpaymentKeepsCredit(t *testing.T) {
	db, _, _, _, reconciliationService := newTestServices(t)
	tenant := seedTenant(t, db, "张三", "13800000001")

	_, _, err := reconciliationService.PostCharge(tenant.ID, dec(1000), "9月房租", time.Now().AddDate(0, 1, 0))
	require.NoError(t, err)

	// 多缴部分作为预存，余额为负
	_, after, err := reconciliationService.ApplyPayment(tenant.ID, dec(1500), PaymentMeta{})
	require.NoError(t, err)
	assert.True(t, after.Balance.Equal(dec(-500)))
	assert.Equal(t, models.PaymentStatusPaid, after.PaymentStatus)

	// 预存自动冲抵下一笔账单
	_, after, err = reconciliationService.PostCharge(tenant.ID, dec(400), "水电费", time.Now().AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.True(t, after.Balance.Equal(dec(-100)))
	assert.Equal(t, models.PaymentStatusPaid, after.PaymentStatus)
}

func TestApplyPaymentIdempotentReplayNoDoubleDeduction(t *testing.T) {
	db, _, _, _, reconciliationService := newTestServices(t)
	tenant := seedTenant(t, db, "张三", "13800000001")

	_, _, err := reconciliationService.PostCharge(tenant.ID, dec(1000), "9月房租", time.Now().AddDate(0, 1, 0))
	require.NoError(t, err)

	_, after, err := reconciliationService.ApplyPayment(tenant.ID, dec(600),
		PaymentMeta{IdempotencyKey: strPtr("sept-rent")})
	require.NoError(t, err)
	assert.True(t, after.Balance.Equal(dec(400)))

	// 同一幂等键重放，余额不再变化
	payment, after, err := reconciliationService.ApplyPayment(tenant.ID, dec(600),
		PaymentMeta{IdempotencyKey: strPtr("sept-rent")})
	require.NoError(t, err)
	assert.True(t, after.Balance.Equal(dec(400)), "balance = %s", after.Balance)

	var count int64
	require.NoError(t, db.Model(&models.Payment{}).Where("tenant_id = ?", tenant.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	assert.NotNil(t, payment)
}

func TestPostChargeValidation(t *testing.T) {
	db, _, _, _, reconciliationService := newTestServices(t)
	tenant := seedTenant(t, db, "张三", "13800000001")

	_, _, err := reconciliationService.PostCharge(tenant.ID, dec(0), "", time.Time{})
	assert.True(t, IsKind(err, KindValidation))

	_, _, err = reconciliationService.PostCharge(999, dec(100), "", time.Time{})
	assert.True(t, IsKind(err, KindNotFound))
}

func TestPostChargeDefaultsDueDateFromConfig(t *testing.T) {
	db, _, _, _, reconciliationService := newTestServices(t)
	tenant := seedTenant(t, db, "张三", "13800000001")

	charge, _, err := reconciliationService.PostCharge(tenant.ID, dec(1000), "房租", time.Time{})
	require.NoError(t, err)
	assert.True(t, charge.DueDate.After(time.Now()))
	assert.Equal(t, 5, charge.DueDate.Day())
}

func TestChangeRoomTypeRecomputesCapacity(t *testing.T) {
	db, _, _, _, reconciliationService := newTestServices(t)
	room := seedRoom(t, db, "A-101", models.RoomTypeDouble, 2)
	first := seedTenant(t, db, "张三", "13800000001")
	second := seedTenant(t, db, "李四", "13800000002")
	_, err := reconciliationService.AssignTenantToRoom(first.ID, room.ID)
	require.NoError(t, err)
	_, err = reconciliationService.AssignTenantToRoom(second.ID, room.ID)
	require.NoError(t, err)

	// 新房型容量低于当前入住人数时拒绝
	_, err = reconciliationService.ChangeRoomType(room.ID, models.RoomTypeSingle)
	assert.True(t, IsKind(err, KindConflict))

	changed, err := reconciliationService.ChangeRoomType(room.ID, models.RoomTypeQuad)
	require.NoError(t, err)
	assert.Equal(t, models.RoomTypeQuad, changed.Type)
	assert.Equal(t, 4, changed.MaxOccupants)
	assert.Equal(t, models.RoomStatusPartiallyOccupied, changed.Status)
}

func TestGetTenantStatementMergesLedgers(t *testing.T) {
	db, _, _, _, reconciliationService := newTestServices(t)
	room := seedRoom(t, db, "A-101", models.RoomTypeSingle, 1)
	tenant := seedTenant(t, db, "张三", "13800000001")
	_, err := reconciliationService.AssignTenantToRoom(tenant.ID, room.ID)
	require.NoError(t, err)

	_, _, err = reconciliationService.PostCharge(tenant.ID, dec(1000), "9月房租", time.Now().AddDate(0, 1, 0))
	require.NoError(t, err)
	_, _, err = reconciliationService.ApplyPayment(tenant.ID, dec(600), PaymentMeta{})
	require.NoError(t, err)

	statement, err := reconciliationService.GetTenantStatement(tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, statement.TenantID)
	assert.Equal(t, "A-101", statement.RoomNumber)
	assert.True(t, statement.Balance.Equal(dec(400)))
	assert.Equal(t, models.PaymentStatusPending, statement.PaymentStatus)
	assert.Len(t, statement.Charges, 1)
	assert.Len(t, statement.Payments, 1)
}

func TestGetDashboardSummary(t *testing.T) {
	db, _, _, _, reconciliationService := newTestServices(t)

	full := seedRoom(t, db, "A-101", models.RoomTypeSingle, 1)
	seedRoom(t, db, "A-102", models.RoomTypeDouble, 2)
	broken := seedRoom(t, db, "A-103", models.RoomTypeSingle, 1)
	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", broken.ID).
		Update("under_maintenance", true).Error)

	tenant := seedTenant(t, db, "张三", "13800000001")
	_, err := reconciliationService.AssignTenantToRoom(tenant.ID, full.ID)
	require.NoError(t, err)
	seedTenant(t, db, "李四", "13800000002")

	// 一笔已逾期欠费
	_, _, err = reconciliationService.PostCharge(tenant.ID, dec(1000), "8月房租", time.Now().AddDate(0, 0, -5))
	require.NoError(t, err)
	_, _, err = reconciliationService.ApplyPayment(tenant.ID, dec(300), PaymentMeta{})
	require.NoError(t, err)

	summary, err := reconciliationService.GetDashboardSummary()
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalRooms)
	assert.Equal(t, int64(1), summary.AvailableRooms)
	assert.Equal(t, int64(1), summary.FullRooms)
	assert.Equal(t, int64(1), summary.MaintenanceRooms)
	assert.Equal(t, int64(2), summary.TotalTenants)
	assert.Equal(t, int64(1), summary.AssignedTenants)
	assert.Equal(t, int64(1), summary.OverdueTenants)
	assert.True(t, summary.CollectedThisMonth.Equal(dec(300)))
}

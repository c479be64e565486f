package services

import (
	"testing"

	"ilodge-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoomDefaultsCapacityByType(t *testing.T) {
	_, roomService, _, _, _ := newTestServices(t)

	room := &models.Room{Number: "A-101", Type: models.RoomTypeDouble}
	require.NoError(t, roomService.CreateRoom(room))

	assert.Equal(t, 2, room.MaxOccupants)
	assert.Equal(t, 0, room.OccupantCount)
	assert.Equal(t, models.RoomStatusAvailable, room.Status)
}

func TestCreateRoomRejectsInvalidType(t *testing.T) {
	_, roomService, _, _, _ := newTestServices(t)

	err := roomService.CreateRoom(&models.Room{Number: "A-101", Type: "penthouse"})
	assert.True(t, IsKind(err, KindValidation))
}

func TestCreateRoomDuplicateNumberConflict(t *testing.T) {
	db, roomService, _, _, _ := newTestServices(t)
	seedRoom(t, db, "A-101", models.RoomTypeSingle, 1)

	err := roomService.CreateRoom(&models.Room{Number: "A-101", Type: models.RoomTypeSingle})
	assert.True(t, IsKind(err, KindConflict))
}

func TestUpdateRoomForbiddenFields(t *testing.T) {
	db, roomService, _, _, _ := newTestServices(t)
	room := seedRoom(t, db, "A-101", models.RoomTypeDouble, 2)

	// 入住人数与状态为服务托管字段
	_, err := roomService.UpdateRoom(room.ID, map[string]interface{}{"occupant_count": 2})
	assert.True(t, IsKind(err, KindForbiddenField))

	_, err = roomService.UpdateRoom(room.ID, map[string]interface{}{"status": "full"})
	assert.True(t, IsKind(err, KindForbiddenField))

	// 房型走专门的调整接口
	_, err = roomService.UpdateRoom(room.ID, map[string]interface{}{"type": models.RoomTypeQuad})
	assert.True(t, IsKind(err, KindForbiddenField))

	// 未知字段直接拒绝
	_, err = roomService.UpdateRoom(room.ID, map[string]interface{}{"nickname": "豪华间"})
	assert.True(t, IsKind(err, KindValidation))
}

func TestUpdateRoomShrinkBelowOccupancyConflict(t *testing.T) {
	db, roomService, _, _, reconciliationService := newTestServices(t)
	room := seedRoom(t, db, "A-101", models.RoomTypeDouble, 2)

	tenant := seedTenant(t, db, "张三", "13800000001")
	_, err := reconciliationService.AssignTenantToRoom(tenant.ID, room.ID)
	require.NoError(t, err)
	tenant2 := seedTenant(t, db, "李四", "13800000002")
	_, err = reconciliationService.AssignTenantToRoom(tenant2.ID, room.ID)
	require.NoError(t, err)

	_, err = roomService.UpdateRoom(room.ID, map[string]interface{}{"max_occupants": 1})
	assert.True(t, IsKind(err, KindConflict))

	// 拒绝后房间保持原样
	updated, err := roomService.GetRoomByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.MaxOccupants)
	assert.Equal(t, 2, updated.OccupantCount)
}

func TestDeleteRoomOccupiedConflict(t *testing.T) {
	db, roomService, _, _, reconciliationService := newTestServices(t)
	room := seedRoom(t, db, "A-101", models.RoomTypeSingle, 1)
	tenant := seedTenant(t, db, "张三", "13800000001")
	_, err := reconciliationService.AssignTenantToRoom(tenant.ID, room.ID)
	require.NoError(t, err)

	err = roomService.DeleteRoom(room.ID)
	assert.True(t, IsKind(err, KindConflict))

	// 退房后可以删除
	_, err = reconciliationService.UnassignTenant(tenant.ID)
	require.NoError(t, err)
	require.NoError(t, roomService.DeleteRoom(room.ID))
}

func TestGetRoomHealsOccupancyDrift(t *testing.T) {
	db, roomService, _, _, reconciliationService := newTestServices(t)
	room := seedRoom(t, db, "A-101", models.RoomTypeDouble, 2)
	tenant := seedTenant(t, db, "张三", "13800000001")
	_, err := reconciliationService.AssignTenantToRoom(tenant.ID, room.ID)
	require.NoError(t, err)

	// 人为制造缓存漂移
	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).
		Update("occupant_count", 7).Error)

	got, err := roomService.GetRoomByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.OccupantCount)
	assert.Equal(t, models.RoomStatusPartiallyOccupied, got.Status)

	// 修复已经落库
	var stored models.Room
	require.NoError(t, db.First(&stored, room.ID).Error)
	assert.Equal(t, 1, stored.OccupantCount)
}

func TestRoomStatusDerivation(t *testing.T) {
	assert.Equal(t, models.RoomStatusAvailable, models.DeriveRoomStatus(0, 2, false))
	assert.Equal(t, models.RoomStatusPartiallyOccupied, models.DeriveRoomStatus(1, 2, false))
	assert.Equal(t, models.RoomStatusFull, models.DeriveRoomStatus(2, 2, false))
	// 维修标记优先于入住情况
	assert.Equal(t, models.RoomStatusMaintenance, models.DeriveRoomStatus(2, 2, true))
	assert.Equal(t, models.RoomStatusMaintenance, models.DeriveRoomStatus(0, 2, true))
}

package services

import (
	"testing"

	"ilodge-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTicketValidatesRoom(t *testing.T) {
	db := setupTestDB(t)
	maintenanceService := NewMaintenanceService(db, newTestConfig())

	err := maintenanceService.CreateTicket(&models.MaintenanceTicket{RoomID: 999, Title: "漏水"})
	assert.True(t, IsKind(err, KindNotFound))

	err = maintenanceService.CreateTicket(&models.MaintenanceTicket{RoomID: 1, Title: ""})
	assert.True(t, IsKind(err, KindValidation))
}

func TestHighPriorityTicketMarksRoomUnderMaintenance(t *testing.T) {
	db := setupTestDB(t)
	maintenanceService := NewMaintenanceService(db, newTestConfig())
	room := seedRoom(t, db, "A-101", models.RoomTypeSingle, 1)

	ticket := &models.MaintenanceTicket{RoomID: room.ID, Title: "水管爆裂", Priority: models.TicketPriorityHigh}
	require.NoError(t, maintenanceService.CreateTicket(ticket))
	assert.Equal(t, models.TicketStatusOpen, ticket.Status)

	var stored models.Room
	require.NoError(t, db.First(&stored, room.ID).Error)
	assert.True(t, stored.UnderMaintenance)
}

func TestResolveLastTicketClearsMaintenanceFlag(t *testing.T) {
	db := setupTestDB(t)
	maintenanceService := NewMaintenanceService(db, newTestConfig())
	room := seedRoom(t, db, "A-101", models.RoomTypeSingle, 1)

	first := &models.MaintenanceTicket{RoomID: room.ID, Title: "水管爆裂", Priority: models.TicketPriorityHigh}
	require.NoError(t, maintenanceService.CreateTicket(first))
	second := &models.MaintenanceTicket{RoomID: room.ID, Title: "灯坏了"}
	require.NoError(t, maintenanceService.CreateTicket(second))

	// 还有未结工单时维修标记保留
	_, err := maintenanceService.UpdateTicket(first.ID, map[string]interface{}{"status": models.TicketStatusResolved})
	require.NoError(t, err)
	var stored models.Room
	require.NoError(t, db.First(&stored, room.ID).Error)
	assert.True(t, stored.UnderMaintenance)

	// 最后一个工单解决后清除标记
	_, err = maintenanceService.UpdateTicket(second.ID, map[string]interface{}{"status": models.TicketStatusResolved})
	require.NoError(t, err)
	require.NoError(t, db.First(&stored, room.ID).Error)
	assert.False(t, stored.UnderMaintenance)
}

func TestResolvedTicketIsImmutable(t *testing.T) {
	db := setupTestDB(t)
	maintenanceService := NewMaintenanceService(db, newTestConfig())
	room := seedRoom(t, db, "A-101", models.RoomTypeSingle, 1)

	ticket := &models.MaintenanceTicket{RoomID: room.ID, Title: "漏水"}
	require.NoError(t, maintenanceService.CreateTicket(ticket))
	_, err := maintenanceService.UpdateTicket(ticket.ID, map[string]interface{}{"status": models.TicketStatusResolved})
	require.NoError(t, err)

	_, err = maintenanceService.UpdateTicket(ticket.ID, map[string]interface{}{"priority": models.TicketPriorityHigh})
	assert.True(t, IsKind(err, KindConflict))
}

func TestListTicketsFilterByStatus(t *testing.T) {
	db := setupTestDB(t)
	maintenanceService := NewMaintenanceService(db, newTestConfig())
	room := seedRoom(t, db, "A-101", models.RoomTypeSingle, 1)

	open := &models.MaintenanceTicket{RoomID: room.ID, Title: "漏水"}
	require.NoError(t, maintenanceService.CreateTicket(open))
	resolved := &models.MaintenanceTicket{RoomID: room.ID, Title: "灯坏了"}
	require.NoError(t, maintenanceService.CreateTicket(resolved))
	_, err := maintenanceService.UpdateTicket(resolved.ID, map[string]interface{}{"status": models.TicketStatusResolved})
	require.NoError(t, err)

	tickets, total, err := maintenanceService.GetAllTickets(1, 10, models.TicketStatusOpen)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, tickets, 1)
	assert.Equal(t, open.ID, tickets[0].ID)

	_, _, err = maintenanceService.GetAllTickets(1, 10, "bogus")
	assert.True(t, IsKind(err, KindValidation))
}

package services

import (
	"errors"
	"ilodge-http-service/internal/domain/models"
	"ilodge-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceMaintenanceService defines the maintenance ticket service interface
type InterfaceMaintenanceService interface {
	GetAllTickets(page int, pageSize int, status string) ([]models.MaintenanceTicket, int64, error)
	GetTicketByID(id uint) (*models.MaintenanceTicket, error)
	CreateTicket(ticket *models.MaintenanceTicket) error
	UpdateTicket(id uint, updates map[string]interface{}) (*models.MaintenanceTicket, error)
	DeleteTicket(id uint) error
}

// MaintenanceService 提供维修工单相关的服务
type MaintenanceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewMaintenanceService 创建一个新的维修工单服务
func NewMaintenanceService(db *gorm.DB, cfg *config.Config) InterfaceMaintenanceService {
	return &MaintenanceService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllTickets 获取维修工单列表，可按状态过滤
func (s *MaintenanceService) GetAllTickets(page int, pageSize int, status string) ([]models.MaintenanceTicket, int64, error) {
	query := s.DB.Model(&models.MaintenanceTicket{})
	if status != "" {
		if !models.IsValidTicketStatus(status) {
			return nil, 0, NewValidationError("无效的工单状态")
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tickets []models.MaintenanceTicket
	if err := query.Order("created_at desc").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&tickets).Error; err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

// 2 GetTicketByID 根据ID获取维修工单
func (s *MaintenanceService) GetTicketByID(id uint) (*models.MaintenanceTicket, error) {
	var ticket models.MaintenanceTicket
	if err := s.DB.First(&ticket, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("维修工单不存在")
		}
		return nil, err
	}
	return &ticket, nil
}

// 3 CreateTicket 创建维修工单。高优先级工单会把房间置为维修状态。
func (s *MaintenanceService) CreateTicket(ticket *models.MaintenanceTicket) error {
	if ticket.Title == "" {
		return NewValidationError("工单标题不能为空")
	}
	if ticket.Priority == "" {
		ticket.Priority = models.TicketPriorityNormal
	}
	if !models.IsValidTicketPriority(ticket.Priority) {
		return NewValidationError("无效的工单优先级")
	}
	ticket.Status = models.TicketStatusOpen

	// 验证房间是否存在
	var room models.Room
	if err := s.DB.First(&room, ticket.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("房间不存在")
		}
		return err
	}

	if err := s.DB.Create(ticket).Error; err != nil {
		return err
	}

	if ticket.Priority == models.TicketPriorityHigh && !room.UnderMaintenance {
		return s.DB.Model(&models.Room{}).Where("id = ?", room.ID).
			Update("under_maintenance", true).Error
	}
	return nil
}

// 4 UpdateTicket 更新维修工单。最后一个未结工单被解决后清除房间的维修标记。
func (s *MaintenanceService) UpdateTicket(id uint, updates map[string]interface{}) (*models.MaintenanceTicket, error) {
	ticket, err := s.GetTicketByID(id)
	if err != nil {
		return nil, err
	}
	if ticket.Status == models.TicketStatusResolved {
		return nil, NewConflictError("维修工单已关闭")
	}

	if status, ok := updates["status"].(string); ok && !models.IsValidTicketStatus(status) {
		return nil, NewValidationError("无效的工单状态")
	}
	if priority, ok := updates["priority"].(string); ok && !models.IsValidTicketPriority(priority) {
		return nil, NewValidationError("无效的工单优先级")
	}

	if err := s.DB.Model(&models.MaintenanceTicket{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	if status, ok := updates["status"].(string); ok && status == models.TicketStatusResolved {
		if err := s.refreshRoomMaintenanceFlag(ticket.RoomID); err != nil {
			return nil, err
		}
	}
	return s.GetTicketByID(id)
}

// 5 DeleteTicket 删除维修工单
func (s *MaintenanceService) DeleteTicket(id uint) error {
	ticket, err := s.GetTicketByID(id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(&models.MaintenanceTicket{}, ticket.ID).Error; err != nil {
		return err
	}
	return s.refreshRoomMaintenanceFlag(ticket.RoomID)
}

// refreshRoomMaintenanceFlag 按未结工单数重新推导房间的维修标记
func (s *MaintenanceService) refreshRoomMaintenanceFlag(roomID uint) error {
	var open int64
	if err := s.DB.Model(&models.MaintenanceTicket{}).
		Where("room_id = ? AND status != ?", roomID, models.TicketStatusResolved).
		Count(&open).Error; err != nil {
		return err
	}
	if open == 0 {
		return s.DB.Model(&models.Room{}).Where("id = ?", roomID).
			Update("under_maintenance", false).Error
	}
	return nil
}

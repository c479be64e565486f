package services

import (
	"errors"
	"ilodge-http-service/internal/domain/models"
	"ilodge-http-service/internal/infrastructure/config"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InterfaceRoomService defines the room registry interface
type InterfaceRoomService interface {
	GetAllRooms(page int, pageSize int) ([]models.Room, int64, error)
	GetRoomByID(id uint) (*models.Room, error)
	CreateRoom(room *models.Room) error
	UpdateRoom(id uint, updates map[string]interface{}) (*models.Room, error)
	DeleteRoom(id uint) error
	ReconcileRoomOccupancy(id uint) (int, error)
}

// RoomService 提供房间相关的服务
type RoomService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRoomService 创建一个新的房间服务
func NewRoomService(db *gorm.DB, cfg *config.Config) InterfaceRoomService {
	return &RoomService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllRooms 获取所有房间
func (s *RoomService) GetAllRooms(page int, pageSize int) ([]models.Room, int64, error) {
	var rooms []models.Room
	var total int64
	if err := s.DB.Model(&models.Room{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := s.DB.Order("number asc").Offset((page - 1) * pageSize).Limit(pageSize).Find(&rooms).Error; err != nil {
		return nil, 0, err
	}

	// 入住人数是缓存值，列表读取时与租客表实际计数对账，顺带修复漂移
	counts, err := s.liveOccupancyCounts()
	if err != nil {
		return nil, 0, err
	}
	for i := range rooms {
		live := counts[rooms[i].ID]
		if rooms[i].OccupantCount != live {
			if err := s.DB.Model(&models.Room{}).Where("id = ?", rooms[i].ID).
				Update("occupant_count", live).Error; err != nil {
				return nil, 0, err
			}
			rooms[i].OccupantCount = live
			rooms[i].Status = models.DeriveRoomStatus(live, rooms[i].MaxOccupants, rooms[i].UnderMaintenance)
		}
	}
	return rooms, total, nil
}

// 2 GetRoomByID 根据ID获取房间，读取时对入住人数做惰性对账
func (s *RoomService) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("房间不存在")
		}
		return nil, err
	}

	live, err := s.ReconcileRoomOccupancy(room.ID)
	if err != nil {
		return nil, err
	}
	room.OccupantCount = live
	room.Status = models.DeriveRoomStatus(live, room.MaxOccupants, room.UnderMaintenance)
	return &room, nil
}

// 3 CreateRoom 创建新房间
func (s *RoomService) CreateRoom(room *models.Room) error {
	if room.Number == "" {
		return NewValidationError("房间号不能为空")
	}
	if !models.IsValidRoomType(room.Type) {
		return NewValidationError("无效的房型")
	}
	// 未指定容量时按房型取默认值
	if room.MaxOccupants == 0 {
		room.MaxOccupants = models.DefaultMaxOccupants(room.Type)
	}
	if room.MaxOccupants < 1 {
		return NewValidationError("最大入住人数必须大于等于1")
	}
	if room.PricePerMonth.LessThan(decimal.Zero) {
		return NewValidationError("月租金不能为负数")
	}

	// 验证房间号唯一性
	var count int64
	if err := s.DB.Model(&models.Room{}).Where("number = ?", room.Number).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return NewConflictError("房间号已被占用")
	}

	room.OccupantCount = 0
	if err := s.DB.Create(room).Error; err != nil {
		return err
	}
	room.Status = models.DeriveRoomStatus(0, room.MaxOccupants, room.UnderMaintenance)
	return nil
}

// 4 UpdateRoom 更新房间信息
func (s *RoomService) UpdateRoom(id uint, updates map[string]interface{}) (*models.Room, error) {
	room, err := s.GetRoomByID(id)
	if err != nil {
		return nil, err
	}

	// 入住人数由分配服务维护，不允许直接写入
	for _, field := range []string{"occupant_count", "occupantCount", "status"} {
		if _, ok := updates[field]; ok {
			return nil, NewForbiddenFieldError("字段 " + field + " 由服务维护，不允许直接修改")
		}
	}
	// 房型变更走专门的房型调整操作，以便重算容量
	if _, ok := updates["type"]; ok {
		return nil, NewForbiddenFieldError("房型变更请使用房型调整接口")
	}
	// 拒绝未知字段
	allowed := map[string]bool{
		"number": true, "floor": true, "price_per_month": true,
		"max_occupants": true, "under_maintenance": true,
	}
	for field := range updates {
		if !allowed[field] {
			return nil, NewValidationError("未知字段 " + field)
		}
	}

	// 如果更新房间号，需要检查唯一性
	if number, ok := updates["number"].(string); ok && number != room.Number {
		var count int64
		if err := s.DB.Model(&models.Room{}).Where("number = ? AND id != ?", number, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, NewConflictError("房间号已被其他房间占用")
		}
	}

	// 缩小容量不得低于当前入住人数
	if maxRaw, ok := updates["max_occupants"]; ok {
		maxOccupants, ok := toInt(maxRaw)
		if !ok || maxOccupants < 1 {
			return nil, NewValidationError("最大入住人数必须大于等于1")
		}
		if maxOccupants < room.OccupantCount {
			return nil, NewConflictError("最大入住人数不能小于当前入住人数")
		}
		updates["max_occupants"] = maxOccupants
	}

	if priceRaw, ok := updates["price_per_month"]; ok {
		price, err := toDecimal(priceRaw)
		if err != nil || price.LessThan(decimal.Zero) {
			return nil, NewValidationError("月租金不能为负数")
		}
		updates["price_per_month"] = price
	}

	if err := s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	// 重新获取更新后的房间信息
	return s.GetRoomByID(id)
}

// 5 DeleteRoom 删除房间
func (s *RoomService) DeleteRoom(id uint) error {
	room, err := s.GetRoomByID(id)
	if err != nil {
		return err
	}
	if room.OccupantCount > 0 {
		return NewConflictError("房间仍有住户，无法删除")
	}
	return s.DB.Delete(&models.Room{}, room.ID).Error
}

// 6 ReconcileRoomOccupancy 以租客表的实际计数为准修复入住人数缓存，返回实际值。
// 缓存值永远可以从租客行重新计算，跨表写入部分失败后由这里收敛。
func (s *RoomService) ReconcileRoomOccupancy(id uint) (int, error) {
	var live int64
	if err := s.DB.Model(&models.Tenant{}).
		Where("room_id = ? AND archived = ?", id, false).
		Count(&live).Error; err != nil {
		return 0, err
	}

	result := s.DB.Model(&models.Room{}).
		Where("id = ? AND occupant_count != ?", id, int(live)).
		Update("occupant_count", int(live))
	if result.Error != nil {
		return 0, result.Error
	}
	return int(live), nil
}

// liveOccupancyCounts 按房间分组统计未归档租客数
func (s *RoomService) liveOccupancyCounts() (map[uint]int, error) {
	type row struct {
		RoomID uint
		N      int
	}
	var rows []row
	if err := s.DB.Model(&models.Tenant{}).
		Select("room_id as room_id, count(*) as n").
		Where("room_id IS NOT NULL AND archived = ?", false).
		Group("room_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[uint]int, len(rows))
	for _, r := range rows {
		counts[r.RoomID] = r.N
	}
	return counts, nil
}

// toInt 宽松地把JSON反序列化出的数值转成int
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

// toDecimal 宽松地把JSON反序列化出的数值转成decimal
func toDecimal(v interface{}) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		return decimal.NewFromString(n)
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	}
	return decimal.Zero, errors.New("无法解析的金额")
}

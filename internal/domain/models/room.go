package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 房间类型
const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeTriple = "triple"
	RoomTypeQuad   = "quad"
)

// 房间状态（派生值，不落库）
const (
	RoomStatusAvailable         = "available"
	RoomStatusPartiallyOccupied = "partially-occupied"
	RoomStatusFull              = "full"
	RoomStatusMaintenance       = "maintenance"
)

// roomTypeCapacity 各房型的默认最大入住人数
var roomTypeCapacity = map[string]int{
	RoomTypeSingle: 1,
	RoomTypeDouble: 2,
	RoomTypeTriple: 3,
	RoomTypeQuad:   4,
}

// Room 表示房间信息
type Room struct {
	BaseModel
	Number           string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"number"` // 房间号，如"A-101"
	Floor            string          `gorm:"type:varchar(10)" json:"floor"`                       // 楼层，如"2F"
	Type             string          `gorm:"type:varchar(20);not null" json:"type"`               // 房型：single, double, triple, quad
	MaxOccupants     int             `gorm:"not null" json:"max_occupants"`                       // 最大入住人数
	PricePerMonth    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price_per_month"`  // 月租金
	OccupantCount    int             `gorm:"not null;default:0" json:"occupant_count"`            // 当前入住人数，由服务维护的缓存值
	UnderMaintenance bool            `gorm:"not null;default:false" json:"under_maintenance"`     // 是否处于维修状态
	Status           string          `gorm:"-" json:"status"`                                     // 派生状态，读取时计算

	// 关联关系
	Tenants []Tenant            `gorm:"foreignKey:RoomID" json:"tenants,omitempty"` // 房间内的租客（一对多）
	Tickets []MaintenanceTicket `gorm:"foreignKey:RoomID" json:"tickets,omitempty"` // 房间的维修工单（一对多）
}

// IsValidRoomType 判断房型是否合法
func IsValidRoomType(roomType string) bool {
	_, ok := roomTypeCapacity[roomType]
	return ok
}

// DefaultMaxOccupants 返回房型的默认最大入住人数
func DefaultMaxOccupants(roomType string) int {
	if capacity, ok := roomTypeCapacity[roomType]; ok {
		return capacity
	}
	return 1
}

// DeriveRoomStatus 根据入住人数、容量和维修标记计算房间状态。
// 维修标记优先于入住情况。
func DeriveRoomStatus(occupantCount, maxOccupants int, underMaintenance bool) string {
	if underMaintenance {
		return RoomStatusMaintenance
	}
	if occupantCount >= maxOccupants {
		return RoomStatusFull
	}
	if occupantCount > 0 {
		return RoomStatusPartiallyOccupied
	}
	return RoomStatusAvailable
}

// AfterFind 是一个GORM钩子，查询后填充派生状态
func (r *Room) AfterFind(tx *gorm.DB) error {
	r.Status = DeriveRoomStatus(r.OccupantCount, r.MaxOccupants, r.UnderMaintenance)
	return nil
}

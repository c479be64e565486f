package models

// 维修工单状态
const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
)

// 维修工单优先级
const (
	TicketPriorityLow    = "low"
	TicketPriorityNormal = "normal"
	TicketPriorityHigh   = "high"
)

// MaintenanceTicket 表示房间维修工单
type MaintenanceTicket struct {
	BaseModel
	RoomID      uint   `gorm:"not null;index" json:"room_id"`
	Title       string `gorm:"type:varchar(100);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Priority    string `gorm:"type:varchar(10);not null;default:'normal'" json:"priority"` // low, normal, high
	Status      string `gorm:"type:varchar(20);not null;default:'open'" json:"status"`     // open, in_progress, resolved
	ReportedBy  string `gorm:"type:varchar(50)" json:"reported_by"`                        // 报修人姓名

	// 关联关系
	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// IsValidTicketStatus 判断工单状态是否合法
func IsValidTicketStatus(status string) bool {
	switch status {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved:
		return true
	}
	return false
}

// IsValidTicketPriority 判断工单优先级是否合法
func IsValidTicketPriority(priority string) bool {
	switch priority {
	case TicketPriorityLow, TicketPriorityNormal, TicketPriorityHigh:
		return true
	}
	return false
}

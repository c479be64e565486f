package services

import (
	"errors"
	"fmt"
	"ilodge-http-service/internal/domain/models"
	"ilodge-http-service/internal/infrastructure/config"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TenantStatement 租客账单视图：余额、状态与两份台账的合并结果
type TenantStatement struct {
	TenantID      uint             `json:"tenant_id"`
	Name          string           `json:"name"`
	RoomNumber    string           `json:"room_number,omitempty"`
	Balance       decimal.Decimal  `json:"balance"`
	PaymentStatus string           `json:"payment_status"`
	Charges       []models.Charge  `json:"charges"`
	Payments      []models.Payment `json:"payments"`
}

// DashboardSummary 管理面板汇总数据
type DashboardSummary struct {
	TotalRooms        int64           `json:"total_rooms"`
	AvailableRooms    int64           `json:"available_rooms"`
	FullRooms         int64           `json:"full_rooms"`
	MaintenanceRooms  int64           `json:"maintenance_rooms"`
	TotalTenants      int64           `json:"total_tenants"`
	AssignedTenants   int64           `json:"assigned_tenants"`
	OverdueTenants    int64           `json:"overdue_tenants"`
	CollectedThisMonth decimal.Decimal `json:"collected_this_month"`
}

// InterfaceReconciliationService defines the assignment & reconciliation interface.
// 所有跨实体操作都从这里走，入住人数和余额只被当作可重算的缓存。
type InterfaceReconciliationService interface {
	AssignTenantToRoom(tenantID, roomID uint) (*models.Tenant, error)
	UnassignTenant(tenantID uint) (*models.Tenant, error)
	ApplyPayment(tenantID uint, amount decimal.Decimal, meta PaymentMeta) (*models.Payment, *models.Tenant, error)
	PostCharge(tenantID uint, amount decimal.Decimal, description string, dueDate time.Time) (*models.Charge, *models.Tenant, error)
	ChangeRoomType(roomID uint, newType string) (*models.Room, error)
	GetTenantStatement(tenantID uint) (*TenantStatement, error)
	GetDashboardSummary() (*DashboardSummary, error)
}

// ReconciliationService 负责租客、房间、台账三者之间的一致性
type ReconciliationService struct {
	DB             *gorm.DB
	Config         *config.Config
	paymentService InterfacePaymentService
	redisService   InterfaceRedisService
}

// NewReconciliationService 创建一个新的分配与对账服务
func NewReconciliationService(db *gorm.DB, cfg *config.Config, paymentService InterfacePaymentService, redisService InterfaceRedisService) InterfaceReconciliationService {
	return &ReconciliationService{
		DB:             db,
		Config:         cfg,
		paymentService: paymentService,
		redisService:   redisService,
	}
}

// 1 AssignTenantToRoom 把租客分配到房间。
// 对入住人数做乐观并发检查：两个并发请求抢同一间房时，后者会观察到
// 前者的递增结果后重试，容量不足则以冲突结束。
func (s *ReconciliationService) AssignTenantToRoom(tenantID, roomID uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.DB.First(&tenant, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("租客不存在")
		}
		return nil, err
	}
	if tenant.Archived {
		return nil, NewConflictError("租客已归档，无法分配房间")
	}
	if tenant.RoomID != nil {
		if *tenant.RoomID == roomID {
			// 重复分配同一间房按幂等处理
			return s.loadTenantWithStatus(tenantID)
		}
		return nil, NewConflictError("租客已分配房间，请先退房")
	}

	retryLimit := s.Config.AssignRetryLimit
	if retryLimit < 1 {
		retryLimit = 1
	}

	for attempt := 0; attempt < retryLimit; attempt++ {
		var room models.Room
		if err := s.DB.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewNotFoundError("房间不存在")
			}
			return nil, err
		}

		// 决策前先把入住人数缓存修复到实际值，避免基于漂移数据误判容量
		live, err := s.reconcileRoomOccupancy(roomID)
		if err != nil {
			return nil, err
		}
		room.OccupantCount = live

		if room.UnderMaintenance {
			return nil, NewConflictError("房间维修中，暂不可入住")
		}
		if room.OccupantCount >= room.MaxOccupants {
			return nil, NewConflictError("房间已满员")
		}

		expected := room.OccupantCount
		casWon := false
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			// 入住人数的compare-and-swap：只有观察值仍然成立时递增才生效
			result := tx.Model(&models.Room{}).
				Where("id = ? AND occupant_count = ?", roomID, expected).
				Update("occupant_count", expected+1)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				// 有并发写入抢先，整个事务放弃，由外层重试
				return nil
			}

			assigned := tx.Model(&models.Tenant{}).
				Where("id = ? AND room_id IS NULL", tenantID).
				Update("room_id", roomID)
			if assigned.Error != nil {
				return assigned.Error
			}
			if assigned.RowsAffected == 0 {
				return NewConflictError("租客已被并发分配到其他房间")
			}
			casWon = true
			return nil
		})
		if err != nil {
			return nil, err
		}
		if casWon {
			return s.loadTenantWithStatus(tenantID)
		}
	}
	return nil, NewConflictError("分配冲突，请稍后重试")
}

// 2 UnassignTenant 解除租客与房间的绑定。已是未分配状态时按幂等处理。
func (s *ReconciliationService) UnassignTenant(tenantID uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.DB.First(&tenant, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("租客不存在")
		}
		return nil, err
	}
	if tenant.RoomID == nil {
		return s.loadTenantWithStatus(tenantID)
	}
	roomID := *tenant.RoomID

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Tenant{}).
			Where("id = ? AND room_id = ?", tenantID, roomID).
			Update("room_id", nil)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// 已被并发解除，视为成功
			return nil
		}
		return tx.Model(&models.Room{}).
			Where("id = ? AND occupant_count > 0", roomID).
			Update("occupant_count", gorm.Expr("occupant_count - 1")).Error
	})
	if err != nil {
		return nil, err
	}

	// 无论事务内计数是否精确，读路径都会按租客行重新对账
	if _, err := s.reconcileRoomOccupancy(roomID); err != nil {
		return nil, err
	}
	return s.loadTenantWithStatus(tenantID)
}

// 幂等键在Redis快速判重的保留时长
const idempotencyKeyTTL = 24 * time.Hour

// 3 ApplyPayment 记账并更新余额缓存。
// 缴费记录先落库；余额随后从"账单合计减缴费合计"整体重算，
// 因此同一幂等键的重复请求不会造成双重扣减，中途失败也会在下次读取时收敛。
func (s *ReconciliationService) ApplyPayment(tenantID uint, amount decimal.Decimal, meta PaymentMeta) (*models.Payment, *models.Tenant, error) {
	// Redis的SETNX只是重复请求的加速路径，判重的最终依据
	// 是缴费表上(tenant_id, idempotency_key)的唯一索引
	if meta.IdempotencyKey != nil && *meta.IdempotencyKey != "" && s.redisService != nil {
		key := fmt.Sprintf("payment:idem:%d:%s", tenantID, *meta.IdempotencyKey)
		if fresh, err := s.redisService.SetNX(key, true, idempotencyKeyTTL); err == nil && !fresh {
			var existing models.Payment
			if err := s.DB.Where("tenant_id = ? AND idempotency_key = ?", tenantID, *meta.IdempotencyKey).
				First(&existing).Error; err == nil {
				refreshed, err := s.loadTenantWithStatus(tenantID)
				if err != nil {
					return nil, nil, err
				}
				return &existing, refreshed, nil
			}
			// Redis命中但记录未落库（上次写入中途失败），继续走正常路径
		}
	}

	payment, created, err := s.paymentService.RecordPayment(tenantID, amount, meta)
	if err != nil {
		return nil, nil, err
	}

	var tenant models.Tenant
	if err := s.DB.First(&tenant, tenantID).Error; err != nil {
		return nil, nil, err
	}
	if _, err := reconcileTenantBalance(s.DB, &tenant); err != nil {
		return nil, nil, err
	}

	if created {
		s.invalidateStatementCache(tenantID)
	}

	refreshed, err := s.loadTenantWithStatus(tenantID)
	if err != nil {
		return nil, nil, err
	}
	return payment, refreshed, nil
}

// 4 PostCharge 计提一笔应缴账单，余额升高后缴清状态回到pending
func (s *ReconciliationService) PostCharge(tenantID uint, amount decimal.Decimal, description string, dueDate time.Time) (*models.Charge, *models.Tenant, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, NewValidationError("账单金额必须大于0")
	}

	var tenant models.Tenant
	if err := s.DB.First(&tenant, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, NewNotFoundError("租客不存在")
		}
		return nil, nil, err
	}
	if tenant.Archived {
		return nil, nil, NewConflictError("租客已归档，无法计提账单")
	}

	if dueDate.IsZero() {
		dueDate = s.nextDueDate(time.Now())
	}

	charge := &models.Charge{
		TenantID:    tenantID,
		Amount:      amount,
		Description: description,
		DueDate:     dueDate,
	}
	if err := s.DB.Create(charge).Error; err != nil {
		return nil, nil, err
	}

	if _, err := reconcileTenantBalance(s.DB, &tenant); err != nil {
		return nil, nil, err
	}
	s.invalidateStatementCache(tenantID)

	refreshed, err := s.loadTenantWithStatus(tenantID)
	if err != nil {
		return nil, nil, err
	}
	return charge, refreshed, nil
}

// 5 ChangeRoomType 调整房型并按新房型重算容量
func (s *ReconciliationService) ChangeRoomType(roomID uint, newType string) (*models.Room, error) {
	if !models.IsValidRoomType(newType) {
		return nil, NewValidationError("无效的房型")
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("房间不存在")
		}
		return nil, err
	}

	live, err := s.reconcileRoomOccupancy(roomID)
	if err != nil {
		return nil, err
	}

	newMax := models.DefaultMaxOccupants(newType)
	if newMax < live {
		return nil, NewConflictError("新房型容量小于当前入住人数")
	}

	if err := s.DB.Model(&models.Room{}).Where("id = ?", roomID).
		Updates(map[string]interface{}{"type": newType, "max_occupants": newMax}).Error; err != nil {
		return nil, err
	}

	var updated models.Room
	if err := s.DB.First(&updated, roomID).Error; err != nil {
		return nil, err
	}
	updated.OccupantCount = live
	updated.Status = models.DeriveRoomStatus(live, updated.MaxOccupants, updated.UnderMaintenance)
	return &updated, nil
}

// 6 GetTenantStatement 汇总租客的余额、状态和两份台账
func (s *ReconciliationService) GetTenantStatement(tenantID uint) (*TenantStatement, error) {
	cacheKey := fmt.Sprintf("statement:%d", tenantID)
	if s.redisService != nil {
		var cached TenantStatement
		if err := s.redisService.Get(cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	tenant, err := s.loadTenantWithStatus(tenantID)
	if err != nil {
		return nil, err
	}

	var charges []models.Charge
	if err := s.DB.Where("tenant_id = ?", tenantID).Order("due_date asc, id asc").Find(&charges).Error; err != nil {
		return nil, err
	}
	var payments []models.Payment
	if err := s.DB.Where("tenant_id = ?", tenantID).Order("payment_date desc, id desc").Find(&payments).Error; err != nil {
		return nil, err
	}

	statement := &TenantStatement{
		TenantID:      tenant.ID,
		Name:          tenant.Name,
		Balance:       tenant.Balance,
		PaymentStatus: tenant.PaymentStatus,
		Charges:       charges,
		Payments:      payments,
	}
	if tenant.RoomID != nil {
		var room models.Room
		if err := s.DB.First(&room, *tenant.RoomID).Error; err == nil {
			statement.RoomNumber = room.Number
		}
	}

	if s.redisService != nil {
		ttl := time.Duration(s.Config.StatementCacheTTL) * time.Second
		// 缓存写入失败不影响主流程
		_ = s.redisService.Set(cacheKey, statement, ttl)
	}
	return statement, nil
}

// 7 GetDashboardSummary 汇总管理面板数据
func (s *ReconciliationService) GetDashboardSummary() (*DashboardSummary, error) {
	summary := &DashboardSummary{CollectedThisMonth: decimal.Zero}

	var rooms []models.Room
	if err := s.DB.Find(&rooms).Error; err != nil {
		return nil, err
	}
	summary.TotalRooms = int64(len(rooms))
	for _, room := range rooms {
		switch models.DeriveRoomStatus(room.OccupantCount, room.MaxOccupants, room.UnderMaintenance) {
		case models.RoomStatusAvailable, models.RoomStatusPartiallyOccupied:
			summary.AvailableRooms++
		case models.RoomStatusFull:
			summary.FullRooms++
		case models.RoomStatusMaintenance:
			summary.MaintenanceRooms++
		}
	}

	if err := s.DB.Model(&models.Tenant{}).Where("archived = ?", false).Count(&summary.TotalTenants).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Tenant{}).Where("archived = ? AND room_id IS NOT NULL", false).Count(&summary.AssignedTenants).Error; err != nil {
		return nil, err
	}

	// 逾期人数需要逐个按到期日推导
	var owing []models.Tenant
	if err := s.DB.Where("archived = ? AND balance > 0", false).Find(&owing).Error; err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range owing {
		status, err := deriveStoredPaymentStatus(s.DB, &owing[i], now)
		if err != nil {
			return nil, err
		}
		if status == models.PaymentStatusOverdue {
			summary.OverdueTenants++
		}
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var amounts []decimal.Decimal
	if err := s.DB.Model(&models.Payment{}).
		Where("payment_date >= ?", monthStart).
		Pluck("amount", &amounts).Error; err != nil {
		return nil, err
	}
	for _, amount := range amounts {
		summary.CollectedThisMonth = summary.CollectedThisMonth.Add(amount)
	}
	return summary, nil
}

// loadTenantWithStatus 读取租客并填充对账后的余额与派生状态
func (s *ReconciliationService) loadTenantWithStatus(tenantID uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.DB.First(&tenant, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("租客不存在")
		}
		return nil, err
	}
	balance, err := reconcileTenantBalance(s.DB, &tenant)
	if err != nil {
		return nil, err
	}
	tenant.Balance = balance
	status, err := deriveStoredPaymentStatus(s.DB, &tenant, time.Now())
	if err != nil {
		return nil, err
	}
	tenant.PaymentStatus = status
	return &tenant, nil
}

// reconcileRoomOccupancy 按租客行修复房间的入住人数缓存
func (s *ReconciliationService) reconcileRoomOccupancy(roomID uint) (int, error) {
	var live int64
	if err := s.DB.Model(&models.Tenant{}).
		Where("room_id = ? AND archived = ?", roomID, false).
		Count(&live).Error; err != nil {
		return 0, err
	}
	result := s.DB.Model(&models.Room{}).
		Where("id = ? AND occupant_count != ?", roomID, int(live)).
		Update("occupant_count", int(live))
	if result.Error != nil {
		return 0, result.Error
	}
	return int(live), nil
}

// invalidateStatementCache 账务变动后清除账单缓存
func (s *ReconciliationService) invalidateStatementCache(tenantID uint) {
	if s.redisService == nil {
		return
	}
	_ = s.redisService.Delete(fmt.Sprintf("statement:%d", tenantID))
}

// nextDueDate 根据配置的应缴日推算下一个到期日
func (s *ReconciliationService) nextDueDate(now time.Time) time.Time {
	dueDay := s.Config.BillingDueDay
	if dueDay < 1 || dueDay > 28 {
		dueDay = 5
	}
	due := time.Date(now.Year(), now.Month(), dueDay, 0, 0, 0, 0, now.Location())
	if !due.After(now) {
		due = due.AddDate(0, 1, 0)
	}
	return due
}

// recomputeTenantBalance 从两份台账整体重算余额：账单合计减缴费合计
func recomputeTenantBalance(db *gorm.DB, tenantID uint) (decimal.Decimal, error) {
	var chargeAmounts []decimal.Decimal
	if err := db.Model(&models.Charge{}).Where("tenant_id = ?", tenantID).
		Pluck("amount", &chargeAmounts).Error; err != nil {
		return decimal.Zero, err
	}
	var paymentAmounts []decimal.Decimal
	if err := db.Model(&models.Payment{}).Where("tenant_id = ?", tenantID).
		Pluck("amount", &paymentAmounts).Error; err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, amount := range chargeAmounts {
		balance = balance.Add(amount)
	}
	for _, amount := range paymentAmounts {
		balance = balance.Sub(amount)
	}
	return balance, nil
}

// reconcileTenantBalance 重算余额并在缓存漂移时修复，返回实际余额
func reconcileTenantBalance(db *gorm.DB, tenant *models.Tenant) (decimal.Decimal, error) {
	balance, err := recomputeTenantBalance(db, tenant.ID)
	if err != nil {
		return decimal.Zero, err
	}
	if !tenant.Balance.Equal(balance) {
		if err := db.Model(&models.Tenant{}).Where("id = ?", tenant.ID).
			Update("balance", balance).Error; err != nil {
			return decimal.Zero, err
		}
		tenant.Balance = balance
	}
	return balance, nil
}

// deriveStoredPaymentStatus 根据余额和最早未结账单推导缴费状态。
// 缴费按到期日从早到晚冲抵账单，第一笔未被完全冲抵的账单决定是否逾期。
func deriveStoredPaymentStatus(db *gorm.DB, tenant *models.Tenant, now time.Time) (string, error) {
	if tenant.Balance.LessThanOrEqual(decimal.Zero) {
		return models.PaymentStatusPaid, nil
	}

	var charges []models.Charge
	if err := db.Where("tenant_id = ?", tenant.ID).Order("due_date asc, id asc").Find(&charges).Error; err != nil {
		return "", err
	}
	var paymentAmounts []decimal.Decimal
	if err := db.Model(&models.Payment{}).Where("tenant_id = ?", tenant.ID).
		Pluck("amount", &paymentAmounts).Error; err != nil {
		return "", err
	}
	totalPaid := decimal.Zero
	for _, amount := range paymentAmounts {
		totalPaid = totalPaid.Add(amount)
	}

	cumulative := decimal.Zero
	var earliestDue *time.Time
	for i := range charges {
		cumulative = cumulative.Add(charges[i].Amount)
		if cumulative.GreaterThan(totalPaid) {
			earliestDue = &charges[i].DueDate
			break
		}
	}
	return models.DeriveTenantPaymentStatus(tenant.Balance, earliestDue, now), nil
}

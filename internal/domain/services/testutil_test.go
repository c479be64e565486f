package services

import (
	"testing"
	"time"

	"ilodge-http-service/internal/domain/models"
	"ilodge-http-service/internal/infrastructure/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 创建内存数据库并迁移全部模型
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true, // 幂等键去重依赖gorm.ErrDuplicatedKey
	})
	require.NoError(t, err)

	// 内存库按连接隔离，多连接会各自看到一个空库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Staff{},
		&models.Room{},
		&models.Tenant{},
		&models.Payment{},
		&models.Charge{},
		&models.MaintenanceTicket{},
	))
	return db
}

// newTestConfig 返回测试用配置
func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:     "test-secret",
		BillingDueDay:    5,
		AssignRetryLimit: 3,
	}
}

// newTestServices 组装一套共用同一个数据库的服务
func newTestServices(t *testing.T) (*gorm.DB, InterfaceRoomService, InterfaceTenantService, InterfacePaymentService, InterfaceReconciliationService) {
	t.Helper()
	db := setupTestDB(t)
	cfg := newTestConfig()
	roomService := NewRoomService(db, cfg)
	tenantService := NewTenantService(db, cfg)
	paymentService := NewPaymentService(db, cfg)
	// 测试不依赖Redis，缓存路径走nil退化分支
	reconciliationService := NewReconciliationService(db, cfg, paymentService, nil)
	return db, roomService, tenantService, paymentService, reconciliationService
}

// seedRoom 插入一间房
func seedRoom(t *testing.T, db *gorm.DB, number, roomType string, maxOccupants int) *models.Room {
	t.Helper()
	room := &models.Room{
		Number:        number,
		Type:          roomType,
		MaxOccupants:  maxOccupants,
		PricePerMonth: decimal.NewFromInt(1500),
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

// seedTenant 插入一名租客
func seedTenant(t *testing.T, db *gorm.DB, name, phone string) *models.Tenant {
	t.Helper()
	tenant := &models.Tenant{
		Name:       name,
		Phone:      phone,
		LeaseStart: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		LeaseEnd:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		Balance:    decimal.Zero,
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

func strPtr(s string) *string {
	return &s
}

// dec 简写：整数转decimal
func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// mustDate 解析"2006-01-02"格式日期，测试数据专用
func mustDate(s string) time.Time {
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return parsed
}

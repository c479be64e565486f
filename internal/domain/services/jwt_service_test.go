package services

import (
	"testing"

	"ilodge-http-service/internal/domain/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	db := setupTestDB(t)
	jwtService := NewJWTService(newTestConfig(), db)

	tenantID := uint(7)
	token, err := jwtService.GenerateToken(1, models.RoleTenant, &tenantID)
	require.NoError(t, err)

	parsed, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, models.RoleTenant, claims["role"])
	assert.Equal(t, float64(7), claims["tenant_id"])
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	db := setupTestDB(t)
	jwtService := NewJWTService(newTestConfig(), db)

	token, err := jwtService.GenerateToken(1, models.RoleAdmin, nil)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestLoginTriesAccountKindsInOrder(t *testing.T) {
	db := setupTestDB(t)
	jwtService := NewJWTService(newTestConfig(), db)

	require.NoError(t, db.Create(&models.Admin{Username: "admin", Password: "admin123"}).Error)
	require.NoError(t, db.Create(&models.Staff{Name: "王五", Username: "wangwu", Password: "staff123", Role: models.RoleSchool}).Error)
	tenant := seedTenant(t, db, "张三", "13800000001")
	require.NoError(t, db.Model(&models.Tenant{}).Where("id = ?", tenant.ID).
		Update("password", mustHash(t, "tenant123")).Error)

	// 管理员按用户名登录
	result, err := jwtService.Login("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, result.Role)
	assert.NotEmpty(t, result.Token)

	// 员工登录携带其账户角色
	result, err = jwtService.Login("wangwu", "staff123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSchool, result.Role)

	// 租客按手机号登录，令牌携带租客ID
	result, err = jwtService.Login("13800000001", "tenant123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTenant, result.Role)
	require.NotNil(t, result.TenantID)
	assert.Equal(t, tenant.ID, *result.TenantID)
}

func TestLoginFailures(t *testing.T) {
	db := setupTestDB(t)
	jwtService := NewJWTService(newTestConfig(), db)
	require.NoError(t, db.Create(&models.Admin{Username: "admin", Password: "admin123"}).Error)

	_, err := jwtService.Login("admin", "wrong")
	assert.True(t, IsKind(err, KindAuthorization))

	_, err = jwtService.Login("nobody", "whatever")
	assert.True(t, IsKind(err, KindNotFound))
}

// mustHash 生成bcrypt哈希，模拟map更新走服务层的重哈希路径
func mustHash(t *testing.T, password string) string {
	t.Helper()
	hashed, err := models.HashPassword(password)
	require.NoError(t, err)
	return hashed
}

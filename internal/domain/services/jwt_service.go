package services

import (
	"errors"
	"fmt"
	"ilodge-http-service/internal/domain/models"
	"ilodge-http-service/internal/infrastructure/config"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// InterfaceJWTService 定义JWT服务接口
type InterfaceJWTService interface {
	GenerateToken(userID uint, role string, tenantID *uint) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	Login(username, password string) (*LoginResult, error)
}

// LoginResult 表示登录结果
type LoginResult struct {
	Token    string `json:"token"`
	UserID   uint   `json:"user_id"`
	Role     string `json:"role"`
	Username string `json:"username"`
	TenantID *uint  `json:"tenant_id,omitempty"`
}

// JWTService 提供JWT相关服务
type JWTService struct {
	secretKey string
	issuer    string
	DB        *gorm.DB
}

// JWTClaims 定义JWT令牌的声明结构
type JWTClaims struct {
	UserID   uint   `json:"user_id"`
	Role     string `json:"role"`
	TenantID *uint  `json:"tenant_id,omitempty"` // 租客角色对应的租客ID，用于自助访问范围校验
	jwt.RegisteredClaims
}

// NewJWTService 创建一个新的JWT服务
func NewJWTService(cfg *config.Config, db *gorm.DB) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "ilodge-http-service",
		DB:        db,
	}
}

// GenerateToken 生成JWT令牌
func (s *JWTService) GenerateToken(userID uint, role string, tenantID *uint) (string, error) {
	// 令牌有效期为24小时
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &JWTClaims{
		UserID:   userID,
		Role:     role,
		TenantID: tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken 验证JWT令牌
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// Login 依次尝试管理员、员工、租客三类账户登录
func (s *JWTService) Login(username, password string) (*LoginResult, error) {
	// 管理员按用户名登录
	var admin models.Admin
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err == nil {
		if !models.CheckPassword(admin.Password, password) {
			return nil, NewAuthorizationError("用户密码错误")
		}
		token, err := s.GenerateToken(admin.ID, models.RoleAdmin, nil)
		if err != nil {
			return nil, err
		}
		return &LoginResult{
			Token:    token,
			UserID:   admin.ID,
			Role:     models.RoleAdmin,
			Username: admin.Username,
		}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 员工（含学校、家长只读角色）按用户名登录
	var staff models.Staff
	if err := s.DB.Where("username = ?", username).First(&staff).Error; err == nil {
		if !models.CheckPassword(staff.Password, password) {
			return nil, NewAuthorizationError("用户密码错误")
		}
		token, err := s.GenerateToken(staff.ID, staff.Role, nil)
		if err != nil {
			return nil, err
		}
		return &LoginResult{
			Token:    token,
			UserID:   staff.ID,
			Role:     staff.Role,
			Username: staff.Username,
		}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 租客按手机号登录
	var tenant models.Tenant
	if err := s.DB.Where("phone = ? AND archived = ?", username, false).First(&tenant).Error; err == nil {
		if tenant.Password == "" || !models.CheckPassword(tenant.Password, password) {
			return nil, NewAuthorizationError("用户密码错误")
		}
		tenantID := tenant.ID
		token, err := s.GenerateToken(tenant.ID, models.RoleTenant, &tenantID)
		if err != nil {
			return nil, err
		}
		return &LoginResult{
			Token:    token,
			UserID:   tenant.ID,
			Role:     models.RoleTenant,
			Username: tenant.Phone,
			TenantID: &tenantID,
		}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, NewNotFoundError("用户不存在")
}

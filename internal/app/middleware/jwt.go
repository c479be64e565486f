package middleware

import (
	"ilodge-http-service/internal/domain/models"
	"ilodge-http-service/internal/domain/services"
	"ilodge-http-service/internal/infrastructure/config"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg, db)
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// parseClaims 校验授权头并取出claims，失败时直接写出响应
func parseClaims(c *gin.Context) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Authorization header is required",
			"data":    nil,
		})
		c.Abort()
		return nil, false
	}

	tokenString := extractToken(authHeader)
	token, err := jwtService.ValidateToken(tokenString)
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Invalid or expired token",
			"data":    nil,
		})
		c.Abort()
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Invalid token claims",
			"data":    nil,
		})
		c.Abort()
		return nil, false
	}
	return claims, true
}

// storeClaims 把常用声明放进请求上下文
func storeClaims(c *gin.Context, claims jwt.MapClaims, role string) {
	c.Set("userID", claims["user_id"])
	c.Set("role", role)
	// tenant_id只有租客角色的令牌才携带
	if tenantID, exists := claims["tenant_id"]; exists && tenantID != nil {
		c.Set("tenantID", tenantID)
	}
	c.Set("claims", claims)
}

// AuthenticateSystemAdmin 验证系统管理员权限
func AuthenticateSystemAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseClaims(c)
		if !ok {
			return
		}

		// 检查是否是系统管理员
		role, exists := claims["role"].(string)
		if !exists || role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires system admin role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		storeClaims(c, claims, role)
		c.Next()
	}
}

// AuthenticateStaff 验证宿管员工权限，管理员也可以访问员工的接口
func AuthenticateStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseClaims(c)
		if !ok {
			return
		}

		role, exists := claims["role"].(string)
		if !exists || (role != models.RoleStaff && role != models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires staff role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		storeClaims(c, claims, role)
		c.Next()
	}
}

// AuthenticateBilling 验证账务接口权限：员工、管理员或租客本人
func AuthenticateBilling() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseClaims(c)
		if !ok {
			return
		}

		role, exists := claims["role"].(string)
		if !exists || (role != models.RoleStaff && role != models.RoleAdmin && role != models.RoleTenant) {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires staff or tenant role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		storeClaims(c, claims, role)
		c.Next()
	}
}

// Authentication 通用的认证中间件，任何有效角色均可访问
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseClaims(c)
		if !ok {
			return
		}

		role, exists := claims["role"].(string)
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires valid user role",
				"data":    nil,
			})
			c.Abort()
			return
		}
		switch role {
		case models.RoleAdmin, models.RoleStaff, models.RoleTenant, models.RoleSchool, models.RoleParent:
		default:
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires valid user role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		storeClaims(c, claims, role)
		c.Next()
	}
}

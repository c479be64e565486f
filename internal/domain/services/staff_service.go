package services

import (
	"errors"
	"ilodge-http-service/internal/domain/models"
	"ilodge-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceStaffService defines the staff account service interface
type InterfaceStaffService interface {
	GetAllStaff(page int, pageSize int) ([]models.Staff, int64, error)
	GetStaffByID(id uint) (*models.Staff, error)
	CreateStaff(staff *models.Staff) error
	UpdateStaff(id uint, updates map[string]interface{}) (*models.Staff, error)
	DeleteStaff(id uint) error
}

// StaffService 提供员工及只读角色账户相关的服务
type StaffService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewStaffService 创建一个新的员工服务
func NewStaffService(db *gorm.DB, cfg *config.Config) InterfaceStaffService {
	return &StaffService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllStaff 获取所有员工账户
func (s *StaffService) GetAllStaff(page int, pageSize int) ([]models.Staff, int64, error) {
	var staff []models.Staff
	var total int64
	if err := s.DB.Model(&models.Staff{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := s.DB.Offset((page - 1) * pageSize).Limit(pageSize).Find(&staff).Error; err != nil {
		return nil, 0, err
	}
	return staff, total, nil
}

// 2 GetStaffByID 根据ID获取员工账户
func (s *StaffService) GetStaffByID(id uint) (*models.Staff, error) {
	var staff models.Staff
	if err := s.DB.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("员工不存在")
		}
		return nil, err
	}
	return &staff, nil
}

// 3 CreateStaff 创建新员工账户
func (s *StaffService) CreateStaff(staff *models.Staff) error {
	if staff.Username == "" || staff.Password == "" {
		return NewValidationError("用户名和密码不能为空")
	}
	if staff.Role == "" {
		staff.Role = models.RoleStaff
	}
	if staff.Role != models.RoleStaff && !models.IsReadOnlyRole(staff.Role) {
		return NewValidationError("无效的员工角色")
	}

	// 验证用户名唯一性
	var count int64
	if err := s.DB.Model(&models.Staff{}).Where("username = ?", staff.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return NewConflictError("用户名已被使用")
	}

	return s.DB.Create(staff).Error
}

// 4 UpdateStaff 更新员工信息
func (s *StaffService) UpdateStaff(id uint, updates map[string]interface{}) (*models.Staff, error) {
	staff, err := s.GetStaffByID(id)
	if err != nil {
		return nil, err
	}

	if role, ok := updates["role"].(string); ok {
		if role != models.RoleStaff && !models.IsReadOnlyRole(role) {
			return nil, NewValidationError("无效的员工角色")
		}
	}

	// 如果更新用户名，需要检查唯一性
	if username, ok := updates["username"].(string); ok && username != staff.Username {
		var count int64
		if err := s.DB.Model(&models.Staff{}).Where("username = ? AND id != ?", username, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, NewConflictError("用户名已被其他员工使用")
		}
	}

	// 密码更新需要重新哈希
	if password, ok := updates["password"].(string); ok && password != "" {
		hashedPassword, err := models.HashPassword(password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashedPassword
	}

	if err := s.DB.Model(&models.Staff{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetStaffByID(id)
}

// 5 DeleteStaff 删除员工账户
func (s *StaffService) DeleteStaff(id uint) error {
	staff, err := s.GetStaffByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(&models.Staff{}, staff.ID).Error
}

package models

import "gorm.io/gorm"

// 账户角色
const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleTenant = "tenant"
	RoleSchool = "school"
	RoleParent = "parent"
)

// Staff 表示员工类账户，Role区分宿管员工与学校、家长等只读角色
type Staff struct {
	BaseModel
	Name     string `gorm:"type:varchar(50);not null" json:"name"`
	Username string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:varchar(100);not null" json:"-"` // 不在JSON中暴露密码
	Phone    string `gorm:"type:varchar(20)" json:"phone"`
	Position string `gorm:"type:varchar(50)" json:"position"`                    // 职位描述
	Role     string `gorm:"type:varchar(20);not null;default:'staff'" json:"role"` // staff, school, parent
}

// IsReadOnlyRole 判断角色是否为只读角色（学校、家长视图）
func IsReadOnlyRole(role string) bool {
	return role == RoleSchool || role == RoleParent
}

// BeforeCreate 是一个GORM钩子，在创建新记录前运行
func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.Password != "" && len(s.Password) < 60 {
		hashedPassword, err := HashPassword(s.Password)
		if err != nil {
			return err
		}
		s.Password = hashedPassword
	}
	return nil
}

// BeforeSave 是一个GORM钩子，在保存记录前运行
func (s *Staff) BeforeSave(tx *gorm.DB) error {
	if s.Password != "" && len(s.Password) < 60 {
		hashedPassword, err := HashPassword(s.Password)
		if err != nil {
			return err
		}
		s.Password = hashedPassword
	}
	return nil
}

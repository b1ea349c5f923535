package dbmodels

import (
	"employee-requests-backend/models"
)

type User struct {
	BaseModel
	Email     string          `gorm:"type:varchar(255);uniqueIndex"`
	Password  string          `gorm:"type:varchar(255)"`
	Name      string          `gorm:"type:varchar(255)"`
	Role      models.UserRole `gorm:"type:varchar(50)"`
	ManagerID *uint           `gorm:"index"`
	Manager   *User           `gorm:"foreignKey:ManagerID"`
}

func (u User) HasManager(managerID uint) bool {
	return u.ManagerID != nil && *u.ManagerID == managerID
}

package dbmodels

import (
	"time"

	"employee-requests-backend/models"
)

type Request struct {
	BaseModel
	Title       string `gorm:"type:varchar(255)"`
	Description string
	CreatedBy   uint                 `gorm:"index"`
	Creator     *User                `gorm:"foreignKey:CreatedBy"`
	AssignedTo  uint                 `gorm:"index"`
	Assignee    *User                `gorm:"foreignKey:AssignedTo"`
	Status      models.RequestStatus `gorm:"type:varchar(50);default:pending"`
	// nil - руководитель ещё не рассматривал заявку
	ManagerApproval *bool
	ManagerID       *uint `gorm:"index"`
	Manager         *User `gorm:"foreignKey:ManagerID"`
	ClosedAt        *time.Time
}

func (r Request) Approval() models.ManagerApproval {
	return models.ApprovalFromBool(r.ManagerApproval)
}

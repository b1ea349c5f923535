package requestapimodels

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/pkg/errors"

	"employee-requests-backend/models"
	dbmodels "employee-requests-backend/models/db"
)

type RequestCreateData struct {
	Title       string `json:"title"`       // тема заявки
	Description string `json:"description"` // описание
	AssignedTo  uint   `json:"assigned_to"` // ид исполнителя
}

func (r RequestCreateData) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(3, 255).Error("тема должна быть от 3 до 255 символов")),
		validation.Field(&r.Description, validation.Required, validation.Length(10, 0).Error("описание должно быть не короче 10 символов")),
		validation.Field(&r.AssignedTo, validation.Required.Error("не указан исполнитель"), validation.Min(uint(1)).Error("ид исполнителя должен быть положительным числом")),
	)
}

type RequestEditData struct {
	Title       *string               `json:"title"`
	Description *string               `json:"description"`
	Status      *models.RequestStatus `json:"status"`
}

func (r RequestEditData) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(3, 255).Error("тема должна быть от 3 до 255 символов")),
		validation.Field(&r.Description, validation.Length(10, 0).Error("описание должно быть не короче 10 символов")),
	)
	if err != nil {
		return err
	}
	// Напрямую выставляются только рабочие статусы,
	// pending/approved/rejected назначает система.
	if r.Status != nil {
		switch *r.Status {
		case models.RequestStatusInProgress, models.RequestStatusClosed:
		default:
			return errors.Errorf("статус можно сменить только на %v или %v",
				models.RequestStatusInProgress, models.RequestStatusClosed)
		}
	}
	return nil
}

type RequestView struct {
	ID              uint                   `json:"id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	CreatedBy       uint                   `json:"created_by"`
	AssignedTo      uint                   `json:"assigned_to"`
	Status          models.RequestStatus   `json:"status"`
	StatusName      string                 `json:"status_name"`
	ManagerApproval models.ManagerApproval `json:"manager_approval"`
	ManagerID       *uint                  `json:"manager_id"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	ClosedAt        *time.Time             `json:"closed_at"`
}

func RequestConvert(rec dbmodels.Request) RequestView {
	return RequestView{
		ID:              rec.ID,
		Title:           rec.Title,
		Description:     rec.Description,
		CreatedBy:       rec.CreatedBy,
		AssignedTo:      rec.AssignedTo,
		Status:          rec.Status,
		StatusName:      rec.Status.ToHuman(),
		ManagerApproval: rec.Approval(),
		ManagerID:       rec.ManagerID,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
		ClosedAt:        rec.ClosedAt,
	}
}

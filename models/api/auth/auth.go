package authapimodels

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"employee-requests-backend/models"
)

type RegisterRequest struct {
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	Name      string          `json:"name"`
	Role      models.UserRole `json:"role"`
	ManagerID *uint           `json:"manager_id"` // ид руководителя, опционально
}

func (r RegisterRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email.Error("почта имеет неправильный формат")),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 0).Error("пароль должен быть не короче 6 символов")),
		validation.Field(&r.Name, validation.Required, validation.Length(2, 255)),
		validation.Field(&r.ManagerID, validation.Min(uint(1)).Error("ид руководителя должен быть положительным числом")),
	)
	if err != nil {
		return err
	}
	return r.Role.Validate()
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email.Error("почта имеет неправильный формат")),
		validation.Field(&r.Password, validation.Required.Error("не указан пароль")),
	)
}

type UserView struct {
	ID        uint            `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Role      models.UserRole `json:"role"`
	ManagerID *uint           `json:"manager_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type AuthResponse struct {
	User  UserView `json:"user"`
	Token string   `json:"token"`
}

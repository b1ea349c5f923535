package models

import "github.com/pkg/errors"

type UserRole string

const (
	UserRoleEmployee UserRole = "employee"
	UserRoleManager  UserRole = "manager"
)

var roleHumanName = map[UserRole]string{
	UserRoleEmployee: "Сотрудник",
	UserRoleManager:  "Руководитель",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsManager() bool {
	return r == UserRoleManager
}

func (r UserRole) Validate() error {
	switch r {
	case UserRoleEmployee, UserRoleManager:
		return nil
	}
	return errors.Errorf("неизвестная роль: %v", r)
}

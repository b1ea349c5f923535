package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "employee-requests-backend/lib/utils/auth-utils"
	"employee-requests-backend/models"
	apimodels "employee-requests-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) uint {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		// после разбора токена числовые клеймы приходят как float64
		if id, ok := sub.(float64); ok {
			return uint(id)
		}
	}
	return 0
}

func GetUserEmail(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if email, exist := claims["email"]; exist {
		if stringEmail, ok := email.(string); ok {
			return stringEmail
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func EmployeeRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.UserRoleEmployee {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция доступна только сотрудникам"))
		}
		return ctx.Next()
	}
}

func ManagerRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.UserRoleManager {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция доступна только руководителям"))
		}
		return ctx.Next()
	}
}

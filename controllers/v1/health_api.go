package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"employee-requests-backend/db"
	apimodels "employee-requests-backend/models/api"
)

func InitHealthApiRouters(app *fiber.App) {
	app.Get("health", health)
}

// @Summary Проверка живости сервиса
// @Tags Служебные
// @Description Проверка живости сервиса и подключения к БД
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /health [get]
func health(ctx *fiber.Ctx) error {
	if err := db.PingDB(); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("нет подключения к БД"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}

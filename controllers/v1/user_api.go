package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"employee-requests-backend/controllers"
	usershandler "employee-requests-backend/lib/users"
	"employee-requests-backend/middleware"
	apimodels "employee-requests-backend/models/api"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("employees", middleware.ManagerRoleRequired(), controller.listEmployees)
	})
}

// @Summary Список подчиненных
// @Tags Пользователи
// @Description Список сотрудников текущего руководителя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]authapimodels.UserView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/employees [get]
func (c *userApiController) listEmployees(ctx *fiber.Ctx) error {
	managerID := middleware.GetUserID(ctx)
	resp, err := usershandler.Instance.ListEmployees(managerID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка подчиненных")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

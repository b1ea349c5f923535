package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"employee-requests-backend/controllers"
	requesthandler "employee-requests-backend/lib/request"
	"employee-requests-backend/middleware"
	apimodels "employee-requests-backend/models/api"
	requestapimodels "employee-requests-backend/models/api/request"
)

type requestApiController struct {
	controllers.BaseAPIController
}

func InitRequestApiRouters(app *fiber.App) {
	controller := requestApiController{}
	app.Route("requests", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", middleware.EmployeeRoleRequired(), controller.create)
		router.Get("", controller.list)
		router.Get("my-requests", controller.listMy)
		router.Get("assigned", controller.listAssigned)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Post("approve", middleware.ManagerRoleRequired(), controller.approve)
			idRoute.Post("reject", middleware.ManagerRoleRequired(), controller.reject)
		})
	})
}

// @Summary Создание заявки
// @Tags Заявки
// @Description Создание заявки, доступно только сотрудникам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestCreateData	true	"request body"
// @Success 201 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests [post]
func (c *requestApiController) create(ctx *fiber.Ctx) error {
	var payload requestapimodels.RequestCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := requesthandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заявки")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Список заявок
// @Tags Заявки
// @Description Список заявок с учётом роли: сотрудник видит созданные и назначенные ему, руководитель - заявки подчинённых и рассмотренные им
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.RequestView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests [get]
func (c *requestApiController) list(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	resp, err := requesthandler.Instance.List(userID, role)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Созданные заявки
// @Tags Заявки
// @Description Заявки, созданные текущим пользователем
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.RequestView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/my-requests [get]
func (c *requestApiController) listMy(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	resp, err := requesthandler.Instance.ListMy(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка созданных заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Назначенные заявки
// @Tags Заявки
// @Description Заявки, назначенные текущему пользователю
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.RequestView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/assigned [get]
func (c *requestApiController) listAssigned(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	resp, err := requesthandler.Instance.ListAssigned(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка назначенных заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получение заявки по ИД
// @Tags Заявки
// @Description Получение заявки по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id} [get]
func (c *requestApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	resp, err := requesthandler.Instance.GetByID(id, userID, role)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление заявки
// @Tags Заявки
// @Description Обновление полей или статуса заявки исполнителем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestEditData	true	"request body"
// @Param   id          		path    string 	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id} [put]
func (c *requestApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.RequestEditData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := requesthandler.Instance.Update(id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Согласование заявки
// @Tags Заявки
// @Description Согласование заявки руководителем исполнителя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/approve [post]
func (c *requestApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	managerID := middleware.GetUserID(ctx)
	resp, err := requesthandler.Instance.Approve(id, managerID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка согласования заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отклонение заявки
// @Tags Заявки
// @Description Отклонение заявки руководителем исполнителя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requests/{id}/reject [post]
func (c *requestApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	managerID := middleware.GetUserID(ctx)
	resp, err := requesthandler.Instance.Reject(id, managerID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"employee-requests-backend/controllers"
	authhandler "employee-requests-backend/lib/auth"
	"employee-requests-backend/middleware"
	apimodels "employee-requests-backend/models/api"
	authapimodels "employee-requests-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("register", controller.register)
		router.Post("login", controller.login)
		router.Use(middleware.AuthorizationRequired()).Get("profile", controller.profile)
	})
}

// @Summary Регистрация пользователя
// @Tags Аутентификация
// @Description Регистрация пользователя
// @Param	body				body		authapimodels.RegisterRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=authapimodels.AuthResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/register [post]
func (c *authApiController) register(ctx *fiber.Ctx) error {
	var payload authapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Register(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка регистрации пользователя")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Аутентификация пользователя
// @Tags Аутентификация
// @Description Аутентификация пользователя
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.AuthResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получить информацию о текущем пользователе
// @Tags Аутентификация
// @Description Получить информацию о текущем пользователе
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=authapimodels.UserView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/profile [get]
func (c *authApiController) profile(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	resp, err := authhandler.Instance.Profile(userID)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

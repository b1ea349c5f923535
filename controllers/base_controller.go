package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"employee-requests-backend/models"
	apimodels "employee-requests-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("ид записи должен быть положительным числом")
	}
	return uint(id), nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	rid, _ := ctx.Locals("requestid").(string)
	return log.
		WithField("request_id", rid).
		WithField("path", ctx.Path())
}

// SendError мапит доменные ошибки на HTTP статусы.
// Неизвестные ошибки отдаются как 500 без деталей.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, message string) error {
	switch {
	case models.IsNotFound(err):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Cause(err) == models.ErrNotPermitted:
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	case models.IsConflict(err):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	case errors.Cause(err) == models.ErrEmailTaken,
		errors.Cause(err) == models.ErrManagerNotFound,
		errors.Cause(err) == models.ErrNotAManager,
		errors.Cause(err) == models.ErrAssigneeNotFound:
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(message)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(message))
}

package apiv1

import (
	"hr-recruit-backend/controllers"
	notificationhandler "hr-recruit-backend/lib/notification"
	"hr-recruit-backend/middleware"
	apimodels "hr-recruit-backend/models/api"
	notificationapimodels "hr-recruit-backend/models/api/notification"

	"github.com/gofiber/fiber/v2"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notification", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Post("list", controller.list)
		router.Put("read", controller.markRead)
	})
}

// @Summary Список уведомлений
// @Tags Уведомления
// @Description Список внутрисистемных уведомлений текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 notificationapimodels.ListFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]notificationapimodels.NotificationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/list [post]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	var payload notificationapimodels.ListFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	list, rowCount, err := notificationhandler.Instance.List(userID, payload.OnlyUnread, payload.Pagination)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Отметить прочитанными
// @Tags Уведомления
// @Description Отметить уведомления прочитанными
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 notificationapimodels.MarkReadRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/read [put]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	var payload notificationapimodels.MarkReadRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	err := notificationhandler.Instance.MarkRead(userID, payload.IDs)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

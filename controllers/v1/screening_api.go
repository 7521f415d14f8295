package apiv1

import (
	"hr-recruit-backend/controllers"
	screeninghandler "hr-recruit-backend/lib/screening"
	"hr-recruit-backend/middleware"
	apimodels "hr-recruit-backend/models/api"
	screeningapimodels "hr-recruit-backend/models/api/screening"

	"github.com/gofiber/fiber/v2"
)

type screeningApiController struct {
	controllers.BaseAPIController
}

func InitScreeningApiRouters(app *fiber.App) {
	controller := screeningApiController{}
	app.Route("screening", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Post("start", middleware.CandidateRequired(), controller.start)
		router.Get("summary/:application_id", middleware.RecruiterRequired(), controller.summary)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Post("message", middleware.CandidateRequired(), controller.submitMessage)
			idRoute.Post("complete", middleware.CandidateRequired(), controller.complete)
		})
	})
}

// @Summary Начать ИИ-скрининг
// @Tags ИИ-скрининг
// @Description Начать сессию ИИ-скрининга по отклику. По отклику допускается только одна активная сессия
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 screeningapimodels.StartRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=screeningapimodels.SessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/start [post]
func (c *screeningApiController) start(ctx *fiber.Ctx) error {
	var payload screeningapimodels.StartRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := screeninghandler.Instance.Start(ctx.UserContext(), userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка запуска сессии скрининга")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отправить сообщение в сессию
// @Tags ИИ-скрининг
// @Description Отправить ответ кандидата в активную сессию скрининга
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID сессии"
// @Param	body body	 screeningapimodels.SubmitMessageRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=screeningapimodels.ReplyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/{id}/message [post]
func (c *screeningApiController) submitMessage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload screeningapimodels.SubmitMessageRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	resp, err := screeninghandler.Instance.SubmitMessage(ctx.UserContext(), id, userID, payload.Text)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обработки сообщения скрининга")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Завершить сессию
// @Tags ИИ-скрининг
// @Description Завершить сессию скрининга и получить заключение. Повторный вызов возвращает сохранённое заключение
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID сессии"
// @Success 200 {object} apimodels.Response{data=screeningapimodels.SummaryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/{id}/complete [post]
func (c *screeningApiController) complete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	resp, err := screeninghandler.Instance.Complete(ctx.UserContext(), id, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка завершения сессии скрининга")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получение сессии по ИД
// @Tags ИИ-скрининг
// @Description Получение сессии скрининга с историей сообщений
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID сессии"
// @Success 200 {object} apimodels.Response{data=screeningapimodels.SessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/{id} [get]
func (c *screeningApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	resp, err := screeninghandler.Instance.GetSession(id, userID, middleware.IsStaff(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сессии скрининга")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Заключение по отклику
// @Tags ИИ-скрининг
// @Description Заключение завершённого скрининга по отклику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   application_id		path    string  				    	true         "ID отклика"
// @Success 200 {object} apimodels.Response{data=screeningapimodels.SummaryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/summary/{application_id} [get]
func (c *screeningApiController) summary(ctx *fiber.Ctx) error {
	applicationID, err := c.GetParamID(ctx, "application_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	resp, err := screeninghandler.Instance.GetSummary(applicationID, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заключения скрининга")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

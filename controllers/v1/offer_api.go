package apiv1

import (
	"hr-recruit-backend/controllers"
	offerhandler "hr-recruit-backend/lib/offer"
	"hr-recruit-backend/middleware"
	apimodels "hr-recruit-backend/models/api"
	offerapimodels "hr-recruit-backend/models/api/offer"

	"github.com/gofiber/fiber/v2"
)

type offerApiController struct {
	controllers.BaseAPIController
}

func InitOfferApiRouters(app *fiber.App) {
	controller := offerApiController{}
	app.Route("offer", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Post("", middleware.RecruiterRequired(), controller.create)
		router.Get("by-application/:application_id", controller.getByApplication)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("pdf", controller.getPdf)
			idRoute.Put("send", middleware.RecruiterRequired(), controller.send)
			idRoute.Put("respond", middleware.CandidateRequired(), controller.respond)
		})
	})
}

// @Summary Создание оффера
// @Tags Оффер
// @Description Создание черновика оффера по отклику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 offerapimodels.CreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=offerapimodels.OfferView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offer [post]
func (c *offerApiController) create(ctx *fiber.Ctx) error {
	var payload offerapimodels.CreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := offerhandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания оффера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отправка оффера
// @Tags Оффер
// @Description Формирование pdf и отправка оффера кандидату
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offer/{id}/send [put]
func (c *offerApiController) send(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	err = offerhandler.Instance.Send(ctx.UserContext(), id, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки оффера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Ответ по офферу
// @Tags Оффер
// @Description Принятие или отклонение оффера кандидатом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 offerapimodels.RespondRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offer/{id}/respond [put]
func (c *offerApiController) respond(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload offerapimodels.RespondRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	err = offerhandler.Instance.Respond(id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения ответа по офферу")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение оффера по ИД
// @Tags Оффер
// @Description Получение оффера по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=offerapimodels.OfferView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offer/{id} [get]
func (c *offerApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	resp, err := offerhandler.Instance.Get(id, userID, middleware.IsStaff(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения оффера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Оффер по отклику
// @Tags Оффер
// @Description Последний оффер по отклику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   application_id		path    string  				    	true         "ID отклика"
// @Success 200 {object} apimodels.Response{data=offerapimodels.OfferView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offer/by-application/{application_id} [get]
func (c *offerApiController) getByApplication(ctx *fiber.Ctx) error {
	applicationID, err := c.GetParamID(ctx, "application_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	resp, err := offerhandler.Instance.GetByApplication(applicationID, userID, middleware.IsStaff(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения оффера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Скачать pdf оффера
// @Tags Оффер
// @Description Скачать сформированный pdf оффера
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offer/{id}/pdf [get]
func (c *offerApiController) getPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	body, err := offerhandler.Instance.GetPdf(ctx.UserContext(), id, userID, middleware.IsStaff(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения pdf оффера")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="offer.pdf"`)
	return ctx.Send(body)
}

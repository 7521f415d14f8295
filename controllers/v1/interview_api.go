package apiv1

import (
	"hr-recruit-backend/controllers"
	interviewhandler "hr-recruit-backend/lib/interview"
	"hr-recruit-backend/middleware"
	apimodels "hr-recruit-backend/models/api"
	interviewapimodels "hr-recruit-backend/models/api/interview"
	"time"

	"github.com/gofiber/fiber/v2"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app *fiber.App) {
	controller := interviewApiController{}
	app.Route("interview", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Post("", middleware.RecruiterRequired(), controller.schedule)
		router.Get("my-schedule", middleware.RecruiterRequired(), controller.mySchedule)
		router.Get("by-application/:application_id", controller.listByApplication)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("cancel", middleware.RecruiterRequired(), controller.cancel)
			idRoute.Put("feedback", middleware.RecruiterRequired(), controller.feedback)
		})
	})
}

// @Summary Назначение интервью
// @Tags Интервью
// @Description Назначение интервью по отклику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 interviewapimodels.ScheduleRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview [post]
func (c *interviewApiController) schedule(ctx *fiber.Ctx) error {
	var payload interviewapimodels.ScheduleRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := interviewhandler.Instance.Schedule(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка назначения интервью")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отмена интервью
// @Tags Интервью
// @Description Отмена назначенного интервью
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id}/cancel [put]
func (c *interviewApiController) cancel(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	err = interviewhandler.Instance.Cancel(id, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отмены интервью")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Итоги интервью
// @Tags Интервью
// @Description Сохранение отзыва и оценок по итогам интервью
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 interviewapimodels.FeedbackRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id}/feedback [put]
func (c *interviewApiController) feedback(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload interviewapimodels.FeedbackRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	err = interviewhandler.Instance.SaveFeedback(id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения итогов интервью")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение интервью по ИД
// @Tags Интервью
// @Description Получение интервью по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id} [get]
func (c *interviewApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	resp, err := interviewhandler.Instance.Get(id, userID, middleware.IsStaff(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения интервью")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Интервью по отклику
// @Tags Интервью
// @Description Список интервью по отклику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   application_id		path    string  				    	true         "ID отклика"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/by-application/{application_id} [get]
func (c *interviewApiController) listByApplication(ctx *fiber.Ctx) error {
	applicationID, err := c.GetParamID(ctx, "application_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	resp, err := interviewhandler.Instance.ListByApplication(applicationID, userID, middleware.IsStaff(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка интервью")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Расписание интервьюера
// @Tags Интервью
// @Description Назначенные интервью текущего пользователя за период. По умолчанию ближайшая неделя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   from				query	string	false	"начало периода (RFC3339)"
// @Param   to					query	string	false	"конец периода (RFC3339)"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/my-schedule [get]
func (c *interviewApiController) mySchedule(ctx *fiber.Ctx) error {
	from := time.Now()
	to := from.AddDate(0, 0, 7)
	var err error
	if value := ctx.Query("from"); value != "" {
		from, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("некорректный формат даты начала периода"))
		}
	}
	if value := ctx.Query("to"); value != "" {
		to, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("некорректный формат даты конца периода"))
		}
	}

	userID := middleware.GetUserID(ctx)
	resp, err := interviewhandler.Instance.MySchedule(userID, from, to)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения расписания интервью")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

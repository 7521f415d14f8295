package apiv1

import (
	"fmt"
	"hr-recruit-backend/controllers"
	"hr-recruit-backend/lib/analytics"
	"hr-recruit-backend/middleware"
	apimodels "hr-recruit-backend/models/api"
	dbmodels "hr-recruit-backend/models/db"
	"time"

	"github.com/gofiber/fiber/v2"
)

type analyticsApiController struct {
	controllers.BaseAPIController
}

func InitAnalyticsApiRouters(app *fiber.App) {
	controller := analyticsApiController{}
	app.Route("analytics", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RecruiterRequired())

		router.Get("dashboard", controller.dashboard)
		router.Get("funnel/:job_id", controller.funnel)
		router.Put("export", controller.export)
	})
}

// @Summary Сводные показатели
// @Tags Аналитика
// @Description Сводные показатели по вакансиям и откликам текущего рекрутера
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.DashboardView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/dashboard [get]
func (c *analyticsApiController) dashboard(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	data, err := analytics.Instance.Dashboard(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сводных показателей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Воронка по вакансии
// @Tags Аналитика
// @Description Воронка прохождения этапов по вакансии
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   job_id				path    string	true	"ID вакансии"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.JobFunnelView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/funnel/{job_id} [get]
func (c *analyticsApiController) funnel(ctx *fiber.Ctx) error {
	jobID, err := c.GetParamID(ctx, "job_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	data, err := analytics.Instance.JobFunnel(jobID, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения воронки по вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Выгрузка откликов в Excel
// @Tags Аналитика
// @Description Выгрузка списка откликов в Excel
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	dbmodels.ApplicationFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/export [put]
func (c *analyticsApiController) export(ctx *fiber.Ctx) error {
	var payload dbmodels.ApplicationFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	data, err := analytics.Instance.ExportApplicationsToXls(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки откликов в Excel")
	}
	fileName := fmt.Sprintf("applications_%v.xlsx", time.Now().Format("2006-01-02"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

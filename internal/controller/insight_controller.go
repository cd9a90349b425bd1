package controller

import (
	"braik-ai-be/internal/pkg/serverutils"
	"braik-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInsightController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
}

type insightController struct {
	insights service.IInsightService
}

func NewInsightController(insights service.IInsightService) IInsightController {
	return &insightController{insights: insights}
}

func (c *insightController) RegisterRoutes(r fiber.Router) {
	r.Get("/insights", c.Get)
}

func (c *insightController) Get(ctx *fiber.Ctx) error {
	insights, err := c.insights.Get(ctx.Context(), requestScope(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Insights retrieved", insights))
}

package controller

import (
	"braik-ai-be/internal/dto"
	"braik-ai-be/internal/pkg/serverutils"
	"braik-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	History(ctx *fiber.Ctx) error
	Query(ctx *fiber.Ctx) error
	Sessions(ctx *fiber.Ctx) error
	SessionQuery(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	WeeklyStrategy(ctx *fiber.Ctx) error
}

type chatController struct {
	chat     service.IChatService
	strategy service.IStrategyService
	auth     service.IAuthService
}

func NewChatController(chat service.IChatService, strategy service.IStrategyService, auth service.IAuthService) IChatController {
	return &chatController{chat: chat, strategy: strategy, auth: auth}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Get("/history", c.History)
	h.Post("/query", c.Query)

	s := r.Group("/sessions")
	s.Get("/", c.Sessions)
	s.Post("/query", c.SessionQuery)
	s.Delete("/:id", c.DeleteSession)

	r.Post("/strategy/weekly", c.WeeklyStrategy)
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	messages, err := c.chat.History(ctx.Context(), requestScope(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("History retrieved", dto.HistoryResponse{Messages: messages}))
}

func (c *chatController) Query(ctx *fiber.Ctx) error {
	var req dto.ChatQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}
	if err := c.auth.RequireActiveTrial(ctx.Context(), serverutils.Email(ctx)); err != nil {
		return err
	}

	res, err := c.chat.QuerySearch(ctx.Context(), requestScope(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Query processed", res))
}

func (c *chatController) Sessions(ctx *fiber.Ctx) error {
	sessions, err := c.chat.Sessions(ctx.Context(), requestScope(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Sessions retrieved", dto.SessionListResponse{Sessions: sessions}))
}

func (c *chatController) SessionQuery(ctx *fiber.Ctx) error {
	var req dto.ChatQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}
	if err := c.auth.RequireActiveTrial(ctx.Context(), serverutils.Email(ctx)); err != nil {
		return err
	}

	res, err := c.chat.QueryWorkspace(ctx.Context(), requestScope(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Query processed", res))
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	if err := c.chat.DeleteSession(ctx.Context(), requestScope(ctx), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Session deleted", nil))
}

func (c *chatController) WeeklyStrategy(ctx *fiber.Ctx) error {
	if err := c.auth.RequireActiveTrial(ctx.Context(), serverutils.Email(ctx)); err != nil {
		return err
	}

	strategy, err := c.strategy.GenerateWeekly(ctx.Context(), requestScope(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Strategy generated", dto.StrategyResponse{Strategy: *strategy}))
}

package controller

import (
	"braik-ai-be/internal/dto"
	"braik-ai-be/internal/pkg/serverutils"
	"braik-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChannelController interface {
	RegisterRoutes(r fiber.Router)
	GetWhatsApp(ctx *fiber.Ctx) error
	PairWhatsApp(ctx *fiber.Ctx) error
	DisconnectWhatsApp(ctx *fiber.Ctx) error
	UpdateWhatsApp(ctx *fiber.Ctx) error
	SimulateMessage(ctx *fiber.Ctx) error
	GetSocial(ctx *fiber.Ctx) error
	ConnectSocial(ctx *fiber.Ctx) error
	ToggleSocial(ctx *fiber.Ctx) error
}

type channelController struct {
	channels service.IChannelService
	auth     service.IAuthService
}

func NewChannelController(channels service.IChannelService, auth service.IAuthService) IChannelController {
	return &channelController{channels: channels, auth: auth}
}

func (c *channelController) RegisterRoutes(r fiber.Router) {
	wa := r.Group("/whatsapp")
	wa.Get("/", c.GetWhatsApp)
	wa.Post("/pair", c.PairWhatsApp)
	wa.Post("/disconnect", c.DisconnectWhatsApp)
	wa.Put("/", c.UpdateWhatsApp)
	wa.Post("/simulate", c.SimulateMessage)

	social := r.Group("/social")
	social.Get("/", c.GetSocial)
	social.Post("/connect", c.ConnectSocial)
	social.Post("/toggle", c.ToggleSocial)
}

func (c *channelController) GetWhatsApp(ctx *fiber.Ctx) error {
	settings, err := c.channels.GetWhatsApp(ctx.Context(), requestScope(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Settings retrieved", settings))
}

func (c *channelController) PairWhatsApp(ctx *fiber.Ctx) error {
	res, err := c.channels.PairWhatsApp(ctx.Context(), requestScope(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Pairing token generated", res))
}

func (c *channelController) DisconnectWhatsApp(ctx *fiber.Ctx) error {
	settings, err := c.channels.DisconnectWhatsApp(ctx.Context(), requestScope(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Disconnected", settings))
}

func (c *channelController) UpdateWhatsApp(ctx *fiber.Ctx) error {
	var req dto.WhatsAppSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	settings, err := c.channels.UpdateWhatsApp(ctx.Context(), requestScope(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Settings updated", settings))
}

func (c *channelController) SimulateMessage(ctx *fiber.Ctx) error {
	var req dto.SimulateMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}
	if err := c.auth.RequireActiveTrial(ctx.Context(), serverutils.Email(ctx)); err != nil {
		return err
	}

	res, err := c.channels.SimulateIncoming(ctx.Context(), requestScope(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Reply generated", res))
}

func (c *channelController) GetSocial(ctx *fiber.Ctx) error {
	platforms, err := c.channels.GetSocial(ctx.Context(), requestScope(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Settings retrieved", dto.SocialSettingsResponse{Platforms: platforms}))
}

func (c *channelController) ConnectSocial(ctx *fiber.Ctx) error {
	var req dto.SocialConnectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	platforms, err := c.channels.ConnectSocial(ctx.Context(), requestScope(ctx), req.Platform)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Platform connected", dto.SocialSettingsResponse{Platforms: platforms}))
}

func (c *channelController) ToggleSocial(ctx *fiber.Ctx) error {
	var req dto.SocialToggleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	platforms, err := c.channels.ToggleSocial(ctx.Context(), requestScope(ctx), req.Platform, req.IsEnabled)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Platform updated", dto.SocialSettingsResponse{Platforms: platforms}))
}

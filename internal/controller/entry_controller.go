package controller

import (
	"braik-ai-be/internal/dto"
	"braik-ai-be/internal/pkg/serverutils"
	"braik-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEntryController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Scan(ctx *fiber.Ctx) error
}

type entryController struct {
	entries service.IEntryService
	scanner service.IScanService
	auth    service.IAuthService
}

func NewEntryController(entries service.IEntryService, scanner service.IScanService, auth service.IAuthService) IEntryController {
	return &entryController{entries: entries, scanner: scanner, auth: auth}
}

func (c *entryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/entries")
	h.Get("/", c.List)
	h.Post("/", c.Save)
	h.Delete("/:id", c.Delete)
	h.Post("/scan", c.Scan)
}

func (c *entryController) List(ctx *fiber.Ctx) error {
	entries, err := c.entries.List(ctx.Context(), requestScope(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Entries retrieved", dto.EntryListResponse{Entries: entries}))
}

func (c *entryController) Save(ctx *fiber.Ctx) error {
	var req dto.SaveEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	entry, err := c.entries.Save(ctx.Context(), requestScope(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Entry saved", entry))
}

func (c *entryController) Delete(ctx *fiber.Ctx) error {
	if err := c.entries.Delete(ctx.Context(), requestScope(ctx), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Entry deleted", nil))
}

func (c *entryController) Scan(ctx *fiber.Ctx) error {
	var req dto.ScanDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}
	if err := c.auth.RequireActiveTrial(ctx.Context(), serverutils.Email(ctx)); err != nil {
		return err
	}

	entry, err := c.scanner.Scan(ctx.Context(), requestScope(ctx), req.ImageBase64)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Document analyzed", entry))
}

package controller

import (
	"braik-ai-be/internal/dto"
	"braik-ai-be/internal/pkg/serverutils"
	"braik-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICalendarController interface {
	RegisterRoutes(r fiber.Router)
	Projection(ctx *fiber.Ctx) error
	CreateEvent(ctx *fiber.Ctx) error
	ListReminders(ctx *fiber.Ctx) error
	CreateReminder(ctx *fiber.Ctx) error
	ToggleReminder(ctx *fiber.Ctx) error
}

type calendarController struct {
	calendar  service.ICalendarService
	reminders service.IReminderService
}

func NewCalendarController(calendar service.ICalendarService, reminders service.IReminderService) ICalendarController {
	return &calendarController{calendar: calendar, reminders: reminders}
}

func (c *calendarController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/calendar")
	h.Get("/", c.Projection)
	h.Post("/events", c.CreateEvent)

	rem := r.Group("/reminders")
	rem.Get("/", c.ListReminders)
	rem.Post("/", c.CreateReminder)
	rem.Patch("/:id/toggle", c.ToggleReminder)
}

func (c *calendarController) Projection(ctx *fiber.Ctx) error {
	events, err := c.calendar.Projection(ctx.Context(), requestScope(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Calendar retrieved", dto.CalendarResponse{Events: events}))
}

func (c *calendarController) CreateEvent(ctx *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	event, err := c.calendar.CreateEvent(ctx.Context(), requestScope(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Event created", event))
}

func (c *calendarController) ListReminders(ctx *fiber.Ctx) error {
	reminders, err := c.reminders.List(ctx.Context(), requestScope(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Reminders retrieved", dto.ReminderListResponse{Reminders: reminders}))
}

func (c *calendarController) CreateReminder(ctx *fiber.Ctx) error {
	var req dto.CreateReminderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	reminder, err := c.reminders.Create(ctx.Context(), requestScope(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Reminder created", reminder))
}

func (c *calendarController) ToggleReminder(ctx *fiber.Ctx) error {
	if err := c.reminders.Toggle(ctx.Context(), requestScope(ctx), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Reminder toggled", nil))
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"braik-ai-be/internal/apperr"
	"braik-ai-be/internal/assembler"
	"braik-ai-be/internal/dto"
	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/repository/contract"

	"github.com/google/uuid"
)

type ICalendarService interface {
	// Projection returns persisted manual events plus the synthetic
	// events derived from appointment entries, rebuilt on every call.
	Projection(ctx context.Context, scope contract.Scope) ([]entity.CalendarEvent, error)
	CreateEvent(ctx context.Context, scope contract.Scope, req *dto.CreateEventRequest) (*entity.CalendarEvent, error)
}

type calendarService struct {
	calendar contract.CalendarRepository
	entries  contract.EntryRepository
}

func NewCalendarService(calendar contract.CalendarRepository, entries contract.EntryRepository) ICalendarService {
	return &calendarService{calendar: calendar, entries: entries}
}

func (s *calendarService) Projection(ctx context.Context, scope contract.Scope) ([]entity.CalendarEvent, error) {
	entries, err := s.entries.GetAll(ctx, scope)
	if err != nil {
		return nil, err
	}
	manual, err := s.calendar.GetEvents(ctx, scope)
	if err != nil {
		return nil, err
	}
	return assembler.BuildCalendarProjection(entries, manual), nil
}

func (s *calendarService) CreateEvent(ctx context.Context, scope contract.Scope, req *dto.CreateEventRequest) (*entity.CalendarEvent, error) {
	// Synthetic ids are reserved for the projection; a client must not
	// be able to persist one.
	if strings.HasPrefix(req.Id, entity.SyntheticEventPrefix) {
		return nil, fmt.Errorf("%w: reserved event id prefix %q", apperr.ErrValidation, entity.SyntheticEventPrefix)
	}

	event := entity.CalendarEvent{
		Id:          req.Id,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Duration:    req.Duration,
	}
	if event.Id == "" {
		event.Id = uuid.NewString()
	}
	if event.Time == "" {
		event.Time = "09:00"
	}
	if event.Duration == 0 {
		event.Duration = 60
	}

	if err := s.calendar.Append(ctx, scope, event); err != nil {
		return nil, err
	}
	return &event, nil
}

type IReminderService interface {
	List(ctx context.Context, scope contract.Scope) ([]entity.Reminder, error)
	Create(ctx context.Context, scope contract.Scope, req *dto.CreateReminderRequest) (*entity.Reminder, error)
	Toggle(ctx context.Context, scope contract.Scope, id string) error
}

type reminderService struct {
	reminders contract.ReminderRepository
}

func NewReminderService(reminders contract.ReminderRepository) IReminderService {
	return &reminderService{reminders: reminders}
}

func (s *reminderService) List(ctx context.Context, scope contract.Scope) ([]entity.Reminder, error) {
	return s.reminders.GetAll(ctx, scope)
}

func (s *reminderService) Create(ctx context.Context, scope contract.Scope, req *dto.CreateReminderRequest) (*entity.Reminder, error) {
	reminder := entity.Reminder{
		Id:           uuid.NewString(),
		Text:         req.Text,
		DueTimestamp: req.DueTimestamp,
	}
	if reminder.DueTimestamp == 0 {
		reminder.DueTimestamp = time.Now().UnixMilli()
	}
	if err := s.reminders.Append(ctx, scope, reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (s *reminderService) Toggle(ctx context.Context, scope contract.Scope, id string) error {
	return s.reminders.Toggle(ctx, scope, id)
}

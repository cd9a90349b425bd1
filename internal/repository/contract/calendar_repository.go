package contract

import (
	"context"

	"braik-ai-be/internal/entity"
)

// CalendarRepository persists manually created events only. Synthetic
// kb- events are projected at read time by the calendar service and
// must never reach this collection.
type CalendarRepository interface {
	GetEvents(ctx context.Context, scope Scope) ([]entity.CalendarEvent, error)
	Append(ctx context.Context, scope Scope, event entity.CalendarEvent) error
}

type ReminderRepository interface {
	GetAll(ctx context.Context, scope Scope) ([]entity.Reminder, error)
	Append(ctx context.Context, scope Scope, reminder entity.Reminder) error
	// Toggle flips the completion flag of the matching reminder.
	Toggle(ctx context.Context, scope Scope, id string) error
}

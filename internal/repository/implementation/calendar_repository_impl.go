package implementation

import (
	"context"

	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/repository/contract"
	"braik-ai-be/pkg/kvstore"
)

type CalendarRepositoryImpl struct {
	store kvstore.Store
}

func NewCalendarRepository(store kvstore.Store) contract.CalendarRepository {
	return &CalendarRepositoryImpl{store: store}
}

func (r *CalendarRepositoryImpl) GetEvents(ctx context.Context, scope contract.Scope) ([]entity.CalendarEvent, error) {
	return readList[entity.CalendarEvent](ctx, r.store, keyFor(scope, colCalendar))
}

func (r *CalendarRepositoryImpl) Append(ctx context.Context, scope contract.Scope, event entity.CalendarEvent) error {
	key := keyFor(scope, colCalendar)
	events, err := readList[entity.CalendarEvent](ctx, r.store, key)
	if err != nil {
		return err
	}
	events = append(events, event)
	return writeList(ctx, r.store, key, events)
}

type ReminderRepositoryImpl struct {
	store kvstore.Store
}

func NewReminderRepository(store kvstore.Store) contract.ReminderRepository {
	return &ReminderRepositoryImpl{store: store}
}

func (r *ReminderRepositoryImpl) GetAll(ctx context.Context, scope contract.Scope) ([]entity.Reminder, error) {
	return readList[entity.Reminder](ctx, r.store, keyFor(scope, colReminders))
}

func (r *ReminderRepositoryImpl) Append(ctx context.Context, scope contract.Scope, reminder entity.Reminder) error {
	key := keyFor(scope, colReminders)
	reminders, err := readList[entity.Reminder](ctx, r.store, key)
	if err != nil {
		return err
	}
	reminders = append(reminders, reminder)
	return writeList(ctx, r.store, key, reminders)
}

func (r *ReminderRepositoryImpl) Toggle(ctx context.Context, scope contract.Scope, id string) error {
	key := keyFor(scope, colReminders)
	reminders, err := readList[entity.Reminder](ctx, r.store, key)
	if err != nil {
		return err
	}
	for i := range reminders {
		if reminders[i].Id == id {
			reminders[i].IsCompleted = !reminders[i].IsCompleted
		}
	}
	return writeList(ctx, r.store, key, reminders)
}

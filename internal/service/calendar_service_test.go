package service

import (
	"context"
	"testing"

	"braik-ai-be/internal/apperr"
	"braik-ai-be/internal/dto"
	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/repository/contract"
	"braik-ai-be/internal/repository/implementation"
	"braik-ai-be/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalendarService() (ICalendarService, *implementation.Repositories) {
	repos := implementation.NewRepositories(kvstore.NewMemoryStore())
	return NewCalendarService(repos.Calendar, repos.Entries), repos
}

func TestCalendarService_Projection(t *testing.T) {
	ctx := context.Background()
	scope := contract.UserScope("alice@example.com")
	svc, repos := newTestCalendarService()

	require.NoError(t, repos.Entries.Upsert(ctx, scope, entity.BusinessEntry{
		Id: "e1", Type: entity.EntryTypeAppointment, Title: "Meeting", Date: "2024-02-01",
	}))
	_, err := svc.CreateEvent(ctx, scope, &dto.CreateEventRequest{
		Title: "Consegna", Date: "2024-02-02", Time: "15:00", Duration: 30,
	})
	require.NoError(t, err)

	events, err := svc.Projection(ctx, scope)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Consegna", events[0].Title)
	assert.Equal(t, "kb-e1", events[1].Id)

	t.Run("synthetic events are never persisted", func(t *testing.T) {
		stored, err := repos.Calendar.GetEvents(ctx, scope)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "Consegna", stored[0].Title)
	})

	t.Run("deleting the entry removes its synthetic event", func(t *testing.T) {
		require.NoError(t, repos.Entries.Remove(ctx, scope, "e1"))
		events, err := svc.Projection(ctx, scope)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})
}

func TestCalendarService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	scope := contract.UserScope("alice@example.com")
	svc, _ := newTestCalendarService()

	t.Run("reserved id prefix is rejected", func(t *testing.T) {
		_, err := svc.CreateEvent(ctx, scope, &dto.CreateEventRequest{
			Id: "kb-hijack", Title: "x", Date: "2024-02-01",
		})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("defaults fill time and duration", func(t *testing.T) {
		event, err := svc.CreateEvent(ctx, scope, &dto.CreateEventRequest{
			Title: "Chiamata", Date: "2024-02-03",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, event.Id)
		assert.Equal(t, "09:00", event.Time)
		assert.Equal(t, 60, event.Duration)
		assert.False(t, event.IsAIRelated)
	})
}

func TestReminderService(t *testing.T) {
	ctx := context.Background()
	scope := contract.UserScope("alice@example.com")
	repos := implementation.NewRepositories(kvstore.NewMemoryStore())
	svc := NewReminderService(repos.Reminders)

	reminder, err := svc.Create(ctx, scope, &dto.CreateReminderRequest{Text: "Pagare il fornitore"})
	require.NoError(t, err)
	assert.NotEmpty(t, reminder.Id)
	assert.NotZero(t, reminder.DueTimestamp)
	assert.False(t, reminder.IsCompleted)

	require.NoError(t, svc.Toggle(ctx, scope, reminder.Id))
	reminders, err := svc.List(ctx, scope)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.True(t, reminders[0].IsCompleted)

	require.NoError(t, svc.Toggle(ctx, scope, reminder.Id))
	reminders, err = svc.List(ctx, scope)
	require.NoError(t, err)
	assert.False(t, reminders[0].IsCompleted)
}

package assembler

import (
	"strings"
	"testing"

	"braik-ai-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		query string
		want  Intent
	}{
		{"disegna un logo per la mia pizzeria", IntentImage},
		{"Genera immagine del nuovo menu", IntentImage},
		{"crea immagine promozionale", IntentImage},
		{"fammi un disegno del locale", IntentImage},
		{"organizza la settimana per favore", IntentStrategy},
		{"mi serve una strategia settimanale", IntentStrategy},
		{"Pianifica la settimana prossima", IntentStrategy},
		{"quanto costa il fornitore di farina?", IntentConversation},
		{"ciao", IntentConversation},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.query))
		})
	}
}

func TestBuildEntryContext(t *testing.T) {
	t.Run("empty database emits the marker", func(t *testing.T) {
		assert.Equal(t, EmptyDatabaseMarker, BuildEntryContext(nil))
	})

	t.Run("entries serialize into fixed blocks", func(t *testing.T) {
		entries := []entity.BusinessEntry{
			{Type: entity.EntryTypeNote, Title: "Fornitori", Content: "Farina da Rossi", Date: "2024-01-10"},
			{Type: entity.EntryTypeContact, Title: "Mario", Content: "333 1234567"},
		}
		got := BuildEntryContext(entries)

		assert.Contains(t, got, "[Tipo: NOTE]")
		assert.Contains(t, got, "[Titolo: Fornitori]")
		assert.Contains(t, got, "[Data: 2024-01-10]")
		assert.Contains(t, got, "[Data: N/A]")
		assert.Equal(t, 1, strings.Count(got, "\n---\n"))
	})
}

func TestBuildCalendarProjection(t *testing.T) {
	entries := []entity.BusinessEntry{
		{Id: "e1", Type: entity.EntryTypeAppointment, Title: "Meeting", Content: "Con Rossi", Date: "2024-02-01"},
		{Id: "e2", Type: entity.EntryTypeNote, Title: "Nota"},
	}
	manual := []entity.CalendarEvent{
		{Id: "m1", Title: "Consegna", Date: "2024-02-02", Time: "15:00", Duration: 30},
	}

	projected := BuildCalendarProjection(entries, manual)
	require.Len(t, projected, 2)

	t.Run("manual events pass through", func(t *testing.T) {
		assert.Equal(t, "m1", projected[0].Id)
	})

	t.Run("appointment entries project synthetic events", func(t *testing.T) {
		synthetic := projected[1]
		assert.Equal(t, "kb-e1", synthetic.Id)
		assert.Equal(t, "Meeting", synthetic.Title)
		assert.Equal(t, "Con Rossi", synthetic.Description)
		assert.Equal(t, "2024-02-01", synthetic.Date)
		assert.Equal(t, "09:00", synthetic.Time)
		assert.Equal(t, 60, synthetic.Duration)
		assert.True(t, synthetic.IsAIRelated)
	})

	t.Run("missing date falls back to the entry timestamp", func(t *testing.T) {
		// 2024-03-15T12:00:00Z
		undated := []entity.BusinessEntry{
			{Id: "e3", Type: entity.EntryTypeAppointment, Title: "Chiamata", Timestamp: 1710504000000},
		}
		got := BuildCalendarProjection(undated, nil)
		require.Len(t, got, 1)
		assert.Equal(t, "2024-03-15", got[0].Date)
	})

	t.Run("recomputed on every call", func(t *testing.T) {
		again := BuildCalendarProjection(entries, manual)
		assert.Equal(t, projected, again)
	})
}

func TestBuildInsightContext(t *testing.T) {
	insights := entity.BehavioralInsights{
		WritingStyle:     "Diretto e informale",
		FrequentTopics:   []string{"fornitori", "prezzi"},
		AnticipatedNeeds: []string{"promemoria consegne"},
	}
	got := BuildInsightContext(insights)

	assert.Contains(t, got, "Diretto e informale")
	assert.Contains(t, got, "fornitori, prezzi")
	assert.Contains(t, got, "promemoria consegne")
}

func TestBuildCalendarContext(t *testing.T) {
	t.Run("empty calendar", func(t *testing.T) {
		assert.Equal(t, "NESSUN EVENTO IN AGENDA.", BuildCalendarContext(nil))
	})

	t.Run("events render one line each", func(t *testing.T) {
		events := []entity.CalendarEvent{
			{Title: "Meeting", Date: "2024-02-01", Time: "09:00", Duration: 60, Description: "Con Rossi"},
		}
		got := BuildCalendarContext(events)
		assert.Contains(t, got, "[2024-02-01 09:00] Meeting (60 min) - Con Rossi")
	})
}

// Package assembler builds the textual context handed to the AI
// gateway on every query: serialized entries, the calendar projection,
// and behavioral style directives. Everything here is pure and
// recomputed per call; nothing is cached, since the underlying
// collections can change between turns.
package assembler

import (
	"fmt"
	"strings"
	"time"

	"braik-ai-be/internal/entity"
)

// EmptyDatabaseMarker is sent instead of an empty string when the user
// has no entries, so the model is never given silently ambiguous
// context.
const EmptyDatabaseMarker = "IL DATABASE È ATTUALMENTE VUOTO. BASATI SULLE LEGGI DELLO STATO SE PERTINENTE."

// BuildEntryContext serializes each entry into a fixed-format block.
func BuildEntryContext(entries []entity.BusinessEntry) string {
	if len(entries) == 0 {
		return EmptyDatabaseMarker
	}
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		date := e.Date
		if date == "" {
			date = "N/A"
		}
		blocks = append(blocks, fmt.Sprintf(
			"[Tipo: %s]\n[Titolo: %s]\n[Contenuto: %s]\n[Data: %s]",
			strings.ToUpper(string(e.Type)), e.Title, e.Content, date))
	}
	return strings.Join(blocks, "\n---\n")
}

// BuildCalendarProjection returns the union of persisted manual events
// and synthetic events derived from appointment-type entries. The
// synthetic events are never persisted; they are rebuilt from the
// current entries on every call.
func BuildCalendarProjection(entries []entity.BusinessEntry, manual []entity.CalendarEvent) []entity.CalendarEvent {
	projected := make([]entity.CalendarEvent, 0, len(manual)+len(entries))
	projected = append(projected, manual...)
	for _, e := range entries {
		if e.Type != entity.EntryTypeAppointment {
			continue
		}
		date := e.Date
		if date == "" {
			date = time.UnixMilli(e.Timestamp).UTC().Format("2006-01-02")
		}
		projected = append(projected, entity.CalendarEvent{
			Id:          entity.SyntheticEventPrefix + e.Id,
			Title:       e.Title,
			Description: e.Content,
			Date:        date,
			Time:        "09:00",
			Duration:    60,
			IsAIRelated: true,
		})
	}
	return projected
}

// BuildInsightContext renders the behavioral profile as a short
// directive block used to steer tone and style.
func BuildInsightContext(insights entity.BehavioralInsights) string {
	var b strings.Builder
	b.WriteString("PROFILO COMPORTAMENTALE DELL'UTENTE:\n")
	fmt.Fprintf(&b, "- Stile di scrittura: %s\n", insights.WritingStyle)
	if len(insights.FrequentTopics) > 0 {
		fmt.Fprintf(&b, "- Argomenti frequenti: %s\n", strings.Join(insights.FrequentTopics, ", "))
	}
	if len(insights.AnticipatedNeeds) > 0 {
		fmt.Fprintf(&b, "- Esigenze anticipate: %s\n", strings.Join(insights.AnticipatedNeeds, ", "))
	}
	b.WriteString("Adatta tono e stile delle risposte a questo profilo.")
	return b.String()
}

// BuildCalendarContext serializes events for strategy and guardian
// prompts.
func BuildCalendarContext(events []entity.CalendarEvent) string {
	if len(events) == 0 {
		return "NESSUN EVENTO IN AGENDA."
	}
	blocks := make([]string, 0, len(events))
	for _, ev := range events {
		blocks = append(blocks, fmt.Sprintf("[%s %s] %s (%d min) - %s",
			ev.Date, ev.Time, ev.Title, ev.Duration, ev.Description))
	}
	return strings.Join(blocks, "\n")
}

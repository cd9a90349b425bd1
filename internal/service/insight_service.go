package service

import (
	"context"
	"encoding/json"
	"time"

	"braik-ai-be/internal/assembler"
	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/pkg/logger"
	"braik-ai-be/internal/repository/contract"
	"braik-ai-be/pkg/ai"
	"braik-ai-be/pkg/events"
	pktNats "braik-ai-be/pkg/nats"

	"github.com/google/uuid"
)

// AlertNotifier pushes fresh guardian alerts to a user's connected
// clients. The websocket hub implements it; a nil notifier is a no-op.
type AlertNotifier interface {
	NotifyAlerts(email string, alerts []entity.GuardianAlert)
}

type IInsightService interface {
	Get(ctx context.Context, scope contract.Scope) (entity.BehavioralInsights, error)
	// MergeFragment folds a partial analysis result into the stored
	// profile. Fields absent from the fragment keep their previous
	// value; lastAnalysis is stamped at merge time.
	MergeFragment(ctx context.Context, scope contract.Scope, fragment entity.InsightFragment) (entity.BehavioralInsights, error)
	// AnalyzeHistory runs the behavioral extraction over recent chat
	// turns and merges the result.
	AnalyzeHistory(ctx context.Context, scope contract.Scope, history []entity.ChatMessage) error
	// RunGuardianCheck asks the gateway for operational alerts over
	// the current entries and calendar projection and replaces the
	// stored alerts wholesale.
	RunGuardianCheck(ctx context.Context, scope contract.Scope) error
}

type insightService struct {
	insights       contract.InsightRepository
	entries        contract.EntryRepository
	calendar       contract.CalendarRepository
	gateway        ai.Gateway
	notifier       AlertNotifier
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewInsightService(insights contract.InsightRepository, entries contract.EntryRepository, calendar contract.CalendarRepository, gateway ai.Gateway, notifier AlertNotifier, eventPublisher *pktNats.Publisher, log logger.ILogger) IInsightService {
	return &insightService{
		insights:       insights,
		entries:        entries,
		calendar:       calendar,
		gateway:        gateway,
		notifier:       notifier,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *insightService) Get(ctx context.Context, scope contract.Scope) (entity.BehavioralInsights, error) {
	return s.insights.Get(ctx, scope)
}

func (s *insightService) MergeFragment(ctx context.Context, scope contract.Scope, fragment entity.InsightFragment) (entity.BehavioralInsights, error) {
	current, err := s.insights.Get(ctx, scope)
	if err != nil {
		return entity.BehavioralInsights{}, err
	}

	if fragment.WritingStyle != nil {
		current.WritingStyle = *fragment.WritingStyle
	}
	if fragment.FrequentTopics != nil {
		current.FrequentTopics = fragment.FrequentTopics
	}
	if fragment.AnticipatedNeeds != nil {
		current.AnticipatedNeeds = fragment.AnticipatedNeeds
	}
	current.LastAnalysis = time.Now().UnixMilli()

	if err := s.insights.Save(ctx, scope, current); err != nil {
		return entity.BehavioralInsights{}, err
	}

	s.publish(ctx, events.New(events.TypeInsightsMerged, map[string]interface{}{
		"email": scope.Email(),
	}))
	return current, nil
}

var fragmentSchema = &ai.Schema{
	Type: "object",
	Properties: map[string]*ai.Schema{
		"writingStyle":     {Type: "string"},
		"frequentTopics":   {Type: "array", Items: &ai.Schema{Type: "string"}},
		"anticipatedNeeds": {Type: "array", Items: &ai.Schema{Type: "string"}},
	},
}

const analysisInstruction = `Sei un analista comportamentale. Analizza le conversazioni dell'utente ed estrai: il suo stile di scrittura (una frase), gli argomenti più frequenti e le esigenze che probabilmente avrà a breve. Rispondi solo con il JSON richiesto.`

func (s *insightService) AnalyzeHistory(ctx context.Context, scope contract.Scope, history []entity.ChatMessage) error {
	var transcript string
	for _, msg := range history {
		transcript += string(msg.Role) + ": " + msg.Content + "\n"
	}

	result, err := s.gateway.CompleteText(ctx, analysisInstruction, nil, transcript,
		ai.WithTemperature(0.2), ai.WithJSONSchema(fragmentSchema))
	if err != nil {
		return err
	}

	var fragment entity.InsightFragment
	if err := json.Unmarshal(result.RawJSON, &fragment); err != nil {
		return err
	}

	_, err = s.MergeFragment(ctx, scope, fragment)
	return err
}

var alertsSchema = &ai.Schema{
	Type: "array",
	Items: &ai.Schema{
		Type: "object",
		Properties: map[string]*ai.Schema{
			"type":     {Type: "string", Enum: []string{"forgotten", "anomaly", "strategy"}},
			"message":  {Type: "string"},
			"severity": {Type: "string", Enum: []string{"low", "medium", "high"}},
		},
		Required: []string{"type", "message", "severity"},
	},
}

const guardianInstruction = `Sei il guardiano operativo di una piccola impresa. Esamina le informazioni salvate e l'agenda e segnala: impegni dimenticati o in conflitto, anomalie nei dati, opportunità strategiche trascurate. Massimo 3 segnalazioni, solo se rilevanti. Rispondi solo con il JSON richiesto.`

func (s *insightService) RunGuardianCheck(ctx context.Context, scope contract.Scope) error {
	entries, err := s.entries.GetAll(ctx, scope)
	if err != nil {
		return err
	}
	manual, err := s.calendar.GetEvents(ctx, scope)
	if err != nil {
		return err
	}
	projection := assembler.BuildCalendarProjection(entries, manual)

	prompt := "DATI SALVATI:\n" + assembler.BuildEntryContext(entries) +
		"\n\nAGENDA:\n" + assembler.BuildCalendarContext(projection)

	result, err := s.gateway.CompleteText(ctx, guardianInstruction, nil, prompt,
		ai.WithTemperature(0.3), ai.WithJSONSchema(alertsSchema))
	if err != nil {
		return err
	}

	var raw []struct {
		Type     string `json:"type"`
		Message  string `json:"message"`
		Severity string `json:"severity"`
	}
	if err := json.Unmarshal(result.RawJSON, &raw); err != nil {
		return err
	}

	now := time.Now().UnixMilli()
	alerts := make([]entity.GuardianAlert, 0, len(raw))
	for _, a := range raw {
		alerts = append(alerts, entity.GuardianAlert{
			Id:        uuid.NewString(),
			Type:      entity.AlertType(a.Type),
			Message:   a.Message,
			Severity:  a.Severity,
			Timestamp: now,
		})
	}

	current, err := s.insights.Get(ctx, scope)
	if err != nil {
		return err
	}
	current.GuardianAlerts = alerts
	if err := s.insights.Save(ctx, scope, current); err != nil {
		return err
	}

	if s.notifier != nil && len(alerts) > 0 {
		s.notifier.NotifyAlerts(scope.Email(), alerts)
	}
	s.publish(ctx, events.New(events.TypeGuardianAlerts, map[string]interface{}{
		"email": scope.Email(),
		"count": len(alerts),
	}))
	return nil
}

func (s *insightService) publish(ctx context.Context, event events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.log.Warn("InsightService", "failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}

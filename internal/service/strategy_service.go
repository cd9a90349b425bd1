package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"braik-ai-be/internal/apperr"
	"braik-ai-be/internal/assembler"
	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/repository/contract"
	"braik-ai-be/pkg/ai"
)

type IStrategyService interface {
	// GenerateWeekly produces a structured weekly plan from the
	// knowledge base and the calendar projection.
	GenerateWeekly(ctx context.Context, scope contract.Scope) (*entity.WeeklyStrategy, error)
}

type strategyService struct {
	entries  contract.EntryRepository
	calendar contract.CalendarRepository
	gateway  ai.Gateway
}

func NewStrategyService(entries contract.EntryRepository, calendar contract.CalendarRepository, gateway ai.Gateway) IStrategyService {
	return &strategyService{entries: entries, calendar: calendar, gateway: gateway}
}

var strategySchema = &ai.Schema{
	Type: "object",
	Properties: map[string]*ai.Schema{
		"focus": {Type: "string"},
		"days": {
			Type: "array",
			Items: &ai.Schema{
				Type: "object",
				Properties: map[string]*ai.Schema{
					"day":   {Type: "string"},
					"tasks": {Type: "array", Items: &ai.Schema{Type: "string"}},
				},
				Required: []string{"day", "tasks"},
			},
		},
		"risks": {Type: "array", Items: &ai.Schema{Type: "string"}},
	},
	Required: []string{"focus", "days"},
}

const strategyInstruction = `Sei un consulente strategico per piccole imprese. Pianifica la settimana lavorativa dell'utente partendo dai suoi dati e dalla sua agenda: un focus principale, attività concrete per ogni giorno da lunedì a venerdì, e i rischi da monitorare. Rispondi solo con il JSON richiesto.`

func (s *strategyService) GenerateWeekly(ctx context.Context, scope contract.Scope) (*entity.WeeklyStrategy, error) {
	entries, err := s.entries.GetAll(ctx, scope)
	if err != nil {
		return nil, err
	}
	manual, err := s.calendar.GetEvents(ctx, scope)
	if err != nil {
		return nil, err
	}
	projection := assembler.BuildCalendarProjection(entries, manual)

	prompt := "DATI SALVATI:\n" + assembler.BuildEntryContext(entries) +
		"\n\nAGENDA:\n" + assembler.BuildCalendarContext(projection)

	result, err := s.gateway.CompleteText(ctx, strategyInstruction, nil, prompt,
		ai.WithTemperature(0.4), ai.WithJSONSchema(strategySchema))
	if err != nil {
		return nil, gatewayError(err)
	}

	var strategy entity.WeeklyStrategy
	if err := json.Unmarshal(result.RawJSON, &strategy); err != nil {
		return nil, err
	}
	strategy.GeneratedAt = time.Now().UnixMilli()
	return &strategy, nil
}

// gatewayError maps gateway unavailability onto the domain error the
// HTTP layer turns into a 503. Other gateway errors pass through.
func gatewayError(err error) error {
	if errors.Is(err, ai.ErrUnavailable) {
		return fmt.Errorf("%w: %v", apperr.ErrGatewayUnavailable, err)
	}
	return err
}

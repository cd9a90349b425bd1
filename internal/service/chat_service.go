package service

import (
	"context"
	"strings"
	"time"

	"braik-ai-be/internal/assembler"
	"braik-ai-be/internal/dto"
	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/pkg/logger"
	"braik-ai-be/internal/repository/contract"
	"braik-ai-be/pkg/ai"

	"github.com/google/uuid"
)

// saveSuggestionMarker is appended by the model when the user shared
// information worth persisting as an entry. The service strips it from
// the reply and surfaces it as the suggestedSave flag.
const saveSuggestionMarker = "[SUGGERISCI_SALVATAGGIO]"

const chatFallbackMessage = "Errore di connessione ai sistemi di intelligenza centrale. Verifica la tua connessione o riprova più tardi."
const imageFallbackMessage = "Non sono riuscito a generare l'immagine. Riprova più tardi."
const strategyFallbackMessage = "Non sono riuscito a generare la strategia settimanale. Riprova più tardi."

type IChatService interface {
	// QuerySearch runs a turn in search mode: flat history, web
	// grounding allowed, citations returned.
	QuerySearch(ctx context.Context, scope contract.Scope, req *dto.ChatQueryRequest) (*dto.ChatQueryResponse, error)
	// QueryWorkspace runs a turn inside a session; an empty session id
	// starts a new session titled after the query.
	QueryWorkspace(ctx context.Context, scope contract.Scope, req *dto.ChatQueryRequest) (*dto.ChatQueryResponse, error)
	History(ctx context.Context, scope contract.Scope) ([]entity.ChatMessage, error)
	Sessions(ctx context.Context, scope contract.Scope) ([]entity.ChatSession, error)
	DeleteSession(ctx context.Context, scope contract.Scope, id string) error
}

type chatService struct {
	history  contract.HistoryRepository
	sessions contract.ChatSessionRepository
	entries  contract.EntryRepository
	insights contract.InsightRepository
	gateway  ai.Gateway
	strategy IStrategyService
	analysis *AnalysisBus
	log      logger.ILogger
}

func NewChatService(
	history contract.HistoryRepository,
	sessions contract.ChatSessionRepository,
	entries contract.EntryRepository,
	insights contract.InsightRepository,
	gateway ai.Gateway,
	strategy IStrategyService,
	analysis *AnalysisBus,
	log logger.ILogger,
) IChatService {
	return &chatService{
		history:  history,
		sessions: sessions,
		entries:  entries,
		insights: insights,
		gateway:  gateway,
		strategy: strategy,
		analysis: analysis,
		log:      log,
	}
}

func (s *chatService) History(ctx context.Context, scope contract.Scope) ([]entity.ChatMessage, error) {
	return s.history.Get(ctx, scope)
}

func (s *chatService) Sessions(ctx context.Context, scope contract.Scope) ([]entity.ChatSession, error) {
	return s.sessions.GetAll(ctx, scope)
}

func (s *chatService) DeleteSession(ctx context.Context, scope contract.Scope, id string) error {
	return s.sessions.Remove(ctx, scope, id)
}

func (s *chatService) QuerySearch(ctx context.Context, scope contract.Scope, req *dto.ChatQueryRequest) (*dto.ChatQueryResponse, error) {
	history, err := s.history.Get(ctx, scope)
	if err != nil {
		return nil, err
	}

	userMsg := newMessage(entity.ChatRoleUser, req.Query)
	history = append(history, userMsg)
	// The user's message is persisted before the gateway is called so
	// a failed turn never loses it.
	if err := s.history.Save(ctx, scope, history); err != nil {
		return nil, err
	}

	reply, ok := s.runTurn(ctx, scope, history[:len(history)-1], req.Query, true)
	history = append(history, reply)
	if err := s.history.Save(ctx, scope, history); err != nil {
		return nil, err
	}

	if ok {
		s.analysis.Schedule(history, scope.Email())
	}
	return &dto.ChatQueryResponse{Message: reply}, nil
}

func (s *chatService) QueryWorkspace(ctx context.Context, scope contract.Scope, req *dto.ChatQueryRequest) (*dto.ChatQueryResponse, error) {
	session, err := s.resolveSession(ctx, scope, req)
	if err != nil {
		return nil, err
	}

	userMsg := newMessage(entity.ChatRoleUser, req.Query)
	session.Messages = append(session.Messages, userMsg)
	session.LastUpdate = userMsg.Timestamp
	if err := s.sessions.Upsert(ctx, scope, *session); err != nil {
		return nil, err
	}

	reply, ok := s.runTurn(ctx, scope, session.Messages[:len(session.Messages)-1], req.Query, false)
	session.Messages = append(session.Messages, reply)
	session.LastUpdate = reply.Timestamp
	if err := s.sessions.Upsert(ctx, scope, *session); err != nil {
		return nil, err
	}

	if ok {
		s.analysis.Schedule(session.Messages, scope.Email())
	}
	return &dto.ChatQueryResponse{Message: reply, SessionId: session.Id}, nil
}

func (s *chatService) resolveSession(ctx context.Context, scope contract.Scope, req *dto.ChatQueryRequest) (*entity.ChatSession, error) {
	if req.SessionId != "" {
		all, err := s.sessions.GetAll(ctx, scope)
		if err != nil {
			return nil, err
		}
		for i := range all {
			if all[i].Id == req.SessionId {
				return &all[i], nil
			}
		}
	}
	return &entity.ChatSession{
		Id:    uuid.NewString(),
		Title: sessionTitle(req.Query),
	}, nil
}

// runTurn performs the single gateway call of a chat turn and always
// returns an assistant message: the real reply, or the per-feature
// fallback when the gateway failed. The bool reports success.
func (s *chatService) runTurn(ctx context.Context, scope contract.Scope, prior []entity.ChatMessage, query string, webSearch bool) (entity.ChatMessage, bool) {
	switch assembler.ClassifyIntent(query) {
	case assembler.IntentImage:
		return s.runImageTurn(ctx, query)
	case assembler.IntentStrategy:
		return s.runStrategyTurn(ctx, scope)
	default:
		return s.runConversationTurn(ctx, scope, prior, query, webSearch)
	}
}

func (s *chatService) runConversationTurn(ctx context.Context, scope contract.Scope, prior []entity.ChatMessage, query string, webSearch bool) (entity.ChatMessage, bool) {
	instruction, err := s.buildInstruction(ctx, scope)
	if err != nil {
		s.log.Error("ChatService", "failed to assemble context", map[string]interface{}{
			"error": err.Error(),
		})
		return newMessage(entity.ChatRoleAssistant, chatFallbackMessage), false
	}

	opts := []ai.Option{ai.WithTemperature(0.7)}
	if webSearch {
		opts = append(opts, ai.WithWebGrounding())
	}

	result, err := s.gateway.CompleteText(ctx, instruction, toAIMessages(prior), query, opts...)
	if err != nil {
		s.log.Warn("ChatService", "gateway call failed", map[string]interface{}{
			"error": err.Error(),
		})
		return newMessage(entity.ChatRoleAssistant, chatFallbackMessage), false
	}

	text := result.Text
	suggested := strings.Contains(text, saveSuggestionMarker)
	if suggested {
		text = strings.TrimSpace(strings.ReplaceAll(text, saveSuggestionMarker, ""))
	}

	reply := newMessage(entity.ChatRoleAssistant, text)
	reply.SuggestedSave = suggested
	for _, src := range result.Sources {
		reply.Sources = append(reply.Sources, entity.ChatSource{Uri: src.Uri, Title: src.Title})
	}
	return reply, true
}

func (s *chatService) runImageTurn(ctx context.Context, query string) (entity.ChatMessage, bool) {
	result, err := s.gateway.GenerateImage(ctx, query,
		"Genera un'immagine professionale adatta a un contesto aziendale.", "1:1", "1K")
	if err != nil {
		s.log.Warn("ChatService", "image generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return newMessage(entity.ChatRoleAssistant, imageFallbackMessage), false
	}

	text := result.Text
	if text == "" {
		text = "Ecco l'immagine che hai richiesto."
	}
	reply := newMessage(entity.ChatRoleAssistant, text)
	if result.ImageBase64 != "" {
		reply.ImageUrl = "data:image/png;base64," + result.ImageBase64
	}
	return reply, true
}

func (s *chatService) runStrategyTurn(ctx context.Context, scope contract.Scope) (entity.ChatMessage, bool) {
	strategy, err := s.strategy.GenerateWeekly(ctx, scope)
	if err != nil {
		s.log.Warn("ChatService", "strategy generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return newMessage(entity.ChatRoleAssistant, strategyFallbackMessage), false
	}
	return newMessage(entity.ChatRoleAssistant, renderStrategy(strategy)), true
}

// buildInstruction assembles the system instruction of a conversation
// turn: assistant persona, the serialized knowledge base, and the
// behavioral style directives. Rebuilt on every turn.
func (s *chatService) buildInstruction(ctx context.Context, scope contract.Scope) (string, error) {
	entries, err := s.entries.GetAll(ctx, scope)
	if err != nil {
		return "", err
	}
	insights, err := s.insights.Get(ctx, scope)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Sei Braik, l'assistente AI personale per il business dell'utente. ")
	b.WriteString("Rispondi in italiano, in modo pratico e conciso. ")
	b.WriteString("Usa le informazioni del database quando sono pertinenti. ")
	b.WriteString("Se l'utente condivide un'informazione aziendale che vale la pena salvare, ")
	b.WriteString("aggiungi " + saveSuggestionMarker + " alla fine della risposta.\n\n")
	b.WriteString("DATABASE AZIENDALE:\n")
	b.WriteString(assembler.BuildEntryContext(entries))
	b.WriteString("\n\n")
	b.WriteString(assembler.BuildInsightContext(insights))
	return b.String(), nil
}

func renderStrategy(strategy *entity.WeeklyStrategy) string {
	var b strings.Builder
	b.WriteString("STRATEGIA SETTIMANALE\n\nFocus: " + strategy.Focus + "\n")
	for _, day := range strategy.Days {
		b.WriteString("\n" + day.Day + ":\n")
		for _, task := range day.Tasks {
			b.WriteString("- " + task + "\n")
		}
	}
	if len(strategy.Risks) > 0 {
		b.WriteString("\nRischi da monitorare:\n")
		for _, risk := range strategy.Risks {
			b.WriteString("- " + risk + "\n")
		}
	}
	return b.String()
}

func toAIMessages(history []entity.ChatMessage) []ai.Message {
	messages := make([]ai.Message, 0, len(history))
	for _, msg := range history {
		messages = append(messages, ai.Message{Role: string(msg.Role), Content: msg.Content})
	}
	return messages
}

func newMessage(role entity.ChatRole, content string) entity.ChatMessage {
	return entity.ChatMessage{
		Id:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
	}
}

func sessionTitle(query string) string {
	runes := []rune(strings.TrimSpace(query))
	if len(runes) > 40 {
		return string(runes[:40]) + "..."
	}
	return string(runes)
}

package contract

import (
	"context"

	"braik-ai-be/internal/entity"
)

// HistoryRepository holds the flat search-mode chat history. The
// history is re-serialized whole on every save.
type HistoryRepository interface {
	Get(ctx context.Context, scope Scope) ([]entity.ChatMessage, error)
	Save(ctx context.Context, scope Scope, messages []entity.ChatMessage) error
}

// ChatSessionRepository holds workspace-mode sessions.
type ChatSessionRepository interface {
	GetAll(ctx context.Context, scope Scope) ([]entity.ChatSession, error)
	Upsert(ctx context.Context, scope Scope, session entity.ChatSession) error
	Remove(ctx context.Context, scope Scope, id string) error
}

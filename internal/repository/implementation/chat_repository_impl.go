package implementation

import (
	"context"

	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/repository/contract"
	"braik-ai-be/pkg/kvstore"
)

type HistoryRepositoryImpl struct {
	store kvstore.Store
}

func NewHistoryRepository(store kvstore.Store) contract.HistoryRepository {
	return &HistoryRepositoryImpl{store: store}
}

func (r *HistoryRepositoryImpl) Get(ctx context.Context, scope contract.Scope) ([]entity.ChatMessage, error) {
	return readList[entity.ChatMessage](ctx, r.store, keyFor(scope, colHistory))
}

func (r *HistoryRepositoryImpl) Save(ctx context.Context, scope contract.Scope, messages []entity.ChatMessage) error {
	return writeList(ctx, r.store, keyFor(scope, colHistory), messages)
}

type ChatSessionRepositoryImpl struct {
	store kvstore.Store
}

func NewChatSessionRepository(store kvstore.Store) contract.ChatSessionRepository {
	return &ChatSessionRepositoryImpl{store: store}
}

func (r *ChatSessionRepositoryImpl) GetAll(ctx context.Context, scope contract.Scope) ([]entity.ChatSession, error) {
	return readList[entity.ChatSession](ctx, r.store, keyFor(scope, colSessions))
}

func (r *ChatSessionRepositoryImpl) Upsert(ctx context.Context, scope contract.Scope, session entity.ChatSession) error {
	key := keyFor(scope, colSessions)
	sessions, err := readList[entity.ChatSession](ctx, r.store, key)
	if err != nil {
		return err
	}
	replaced := false
	for i := range sessions {
		if sessions[i].Id == session.Id {
			sessions[i] = session
			replaced = true
			break
		}
	}
	if !replaced {
		sessions = append(sessions, session)
	}
	return writeList(ctx, r.store, key, sessions)
}

func (r *ChatSessionRepositoryImpl) Remove(ctx context.Context, scope contract.Scope, id string) error {
	key := keyFor(scope, colSessions)
	sessions, err := readList[entity.ChatSession](ctx, r.store, key)
	if err != nil {
		return err
	}
	filtered := sessions[:0]
	for _, s := range sessions {
		if s.Id != id {
			filtered = append(filtered, s)
		}
	}
	return writeList(ctx, r.store, key, filtered)
}

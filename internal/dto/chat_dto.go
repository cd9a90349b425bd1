package dto

import "braik-ai-be/internal/entity"

// ChatQueryRequest drives both chat modes. A session id switches the
// turn to workspace mode; without one the turn runs in search mode
// against the flat history collection.
type ChatQueryRequest struct {
	Query     string `json:"query" validate:"required"`
	SessionId string `json:"sessionId"`
}

type ChatQueryResponse struct {
	Message   entity.ChatMessage `json:"message"`
	SessionId string             `json:"sessionId,omitempty"`
}

type HistoryResponse struct {
	Messages []entity.ChatMessage `json:"messages"`
}

type SessionListResponse struct {
	Sessions []entity.ChatSession `json:"sessions"`
}

type StrategyResponse struct {
	Strategy entity.WeeklyStrategy `json:"strategy"`
}

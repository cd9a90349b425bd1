package service

import (
	"context"
	"fmt"
	"time"

	"braik-ai-be/internal/apperr"
	"braik-ai-be/internal/dto"
	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/repository/contract"

	"github.com/google/uuid"
)

type IEntryService interface {
	List(ctx context.Context, scope contract.Scope) ([]entity.BusinessEntry, error)
	Save(ctx context.Context, scope contract.Scope, req *dto.SaveEntryRequest) (*entity.BusinessEntry, error)
	Delete(ctx context.Context, scope contract.Scope, id string) error
}

type entryService struct {
	entries contract.EntryRepository
}

func NewEntryService(entries contract.EntryRepository) IEntryService {
	return &entryService{entries: entries}
}

func (s *entryService) List(ctx context.Context, scope contract.Scope) ([]entity.BusinessEntry, error) {
	return s.entries.GetAll(ctx, scope)
}

func (s *entryService) Save(ctx context.Context, scope contract.Scope, req *dto.SaveEntryRequest) (*entity.BusinessEntry, error) {
	entryType := entity.EntryType(req.Type)
	if !entity.ValidEntryType(entryType) {
		return nil, fmt.Errorf("%w: unknown entry type %q", apperr.ErrValidation, req.Type)
	}

	entry := entity.BusinessEntry{
		Id:          req.Id,
		Type:        entryType,
		Title:       req.Title,
		Content:     req.Content,
		Date:        req.Date,
		Timestamp:   time.Now().UnixMilli(),
		IsSensitive: req.IsSensitive,
		Metadata:    req.Metadata,
	}
	if entry.Id == "" {
		entry.Id = uuid.NewString()
	}

	if err := s.entries.Upsert(ctx, scope, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *entryService) Delete(ctx context.Context, scope contract.Scope, id string) error {
	return s.entries.Remove(ctx, scope, id)
}

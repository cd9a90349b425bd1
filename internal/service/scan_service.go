package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/repository/contract"
	"braik-ai-be/pkg/ai"
)

type IScanService interface {
	// Scan extracts a structured entry from a photographed document
	// and persists it.
	Scan(ctx context.Context, scope contract.Scope, imageBase64 string) (*entity.BusinessEntry, error)
}

type scanService struct {
	entries contract.EntryRepository
	gateway ai.Gateway
}

func NewScanService(entries contract.EntryRepository, gateway ai.Gateway) IScanService {
	return &scanService{entries: entries, gateway: gateway}
}

var scanSchema = &ai.Schema{
	Type: "object",
	Properties: map[string]*ai.Schema{
		"type":    {Type: "string", Enum: []string{"note", "appointment", "contact", "document", "general"}},
		"title":   {Type: "string"},
		"content": {Type: "string"},
	},
	Required: []string{"type", "title", "content"},
}

const scanInstruction = `Analizza il documento nella foto ed estrai le informazioni come voce del database aziendale: classifica il tipo, scegli un titolo breve e trascrivi il contenuto rilevante. Rispondi solo con il JSON richiesto.`

func (s *scanService) Scan(ctx context.Context, scope contract.Scope, imageBase64 string) (*entity.BusinessEntry, error) {
	result, err := s.gateway.AnalyzeDocument(ctx, imageBase64, scanInstruction, scanSchema)
	if err != nil {
		return nil, gatewayError(err)
	}

	var extracted struct {
		Type    string `json:"type"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal(result.RawJSON, &extracted); err != nil {
		return nil, err
	}

	entryType := entity.EntryType(extracted.Type)
	if !entity.ValidEntryType(entryType) {
		entryType = entity.EntryTypeGeneral
	}

	now := time.Now()
	entry := entity.BusinessEntry{
		Id:        fmt.Sprintf("scan-%d", now.UnixMilli()),
		Type:      entryType,
		Title:     extracted.Title,
		Content:   extracted.Content,
		Date:      now.UTC().Format("2006-01-02"),
		Timestamp: now.UnixMilli(),
	}
	if err := s.entries.Upsert(ctx, scope, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

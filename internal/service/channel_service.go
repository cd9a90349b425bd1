package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
	"time"

	"braik-ai-be/internal/apperr"
	"braik-ai-be/internal/dto"
	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/pkg/logger"
	"braik-ai-be/internal/repository/contract"
	"braik-ai-be/pkg/ai"
)

const autoReplyFallbackMessage = "Grazie per il messaggio! Ti risponderò appena possibile."

type IChannelService interface {
	GetWhatsApp(ctx context.Context, scope contract.Scope) (entity.WhatsAppSettings, error)
	// PairWhatsApp generates a simulated pairing token and marks the
	// channel connected. No real WhatsApp connection is made.
	PairWhatsApp(ctx context.Context, scope contract.Scope) (*dto.WhatsAppPairResponse, error)
	DisconnectWhatsApp(ctx context.Context, scope contract.Scope) (entity.WhatsAppSettings, error)
	UpdateWhatsApp(ctx context.Context, scope contract.Scope, req *dto.WhatsAppSettingsRequest) (entity.WhatsAppSettings, error)
	// SimulateIncoming runs the auto-reply pipeline for one incoming
	// message and returns the reply text.
	SimulateIncoming(ctx context.Context, scope contract.Scope, req *dto.SimulateMessageRequest) (*dto.SimulateMessageResponse, error)

	GetSocial(ctx context.Context, scope contract.Scope) ([]entity.SocialPlatformSettings, error)
	ConnectSocial(ctx context.Context, scope contract.Scope, platform string) ([]entity.SocialPlatformSettings, error)
	ToggleSocial(ctx context.Context, scope contract.Scope, platform string, enabled bool) ([]entity.SocialPlatformSettings, error)
}

type channelService struct {
	channels contract.ChannelRepository
	entries  contract.EntryRepository
	gateway  ai.Gateway
	log      logger.ILogger
}

func NewChannelService(channels contract.ChannelRepository, entries contract.EntryRepository, gateway ai.Gateway, log logger.ILogger) IChannelService {
	return &channelService{channels: channels, entries: entries, gateway: gateway, log: log}
}

func (s *channelService) GetWhatsApp(ctx context.Context, scope contract.Scope) (entity.WhatsAppSettings, error) {
	return s.channels.GetWhatsApp(ctx, scope)
}

// pairingToken mimics the multi-part linking code format of the real
// client: random part, base64 timestamp, reversed random part.
func pairingToken(now time.Time) (string, error) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	raw := make([]byte, 20)
	for i := range raw {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", err
		}
		raw[i] = alphabet[n.Int64()]
	}
	reversed := make([]byte, len(raw))
	for i, c := range raw {
		reversed[len(raw)-1-i] = c
	}
	ts := base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%d", now.UnixMilli())))
	return fmt.Sprintf("1@%s,%s,%s", raw, ts, reversed), nil
}

func (s *channelService) PairWhatsApp(ctx context.Context, scope contract.Scope) (*dto.WhatsAppPairResponse, error) {
	now := time.Now()
	token, err := pairingToken(now)
	if err != nil {
		return nil, err
	}

	settings, err := s.channels.GetWhatsApp(ctx, scope)
	if err != nil {
		return nil, err
	}
	settings.IsConnected = true
	settings.IsEnabled = true
	settings.LastActivity = now.UnixMilli()
	if settings.AutoReplyMode == "" {
		settings.AutoReplyMode = entity.AutoReplyContactsOnly
	}
	if err := s.channels.SaveWhatsApp(ctx, scope, settings); err != nil {
		return nil, err
	}

	return &dto.WhatsAppPairResponse{PairingToken: token, Settings: settings}, nil
}

func (s *channelService) DisconnectWhatsApp(ctx context.Context, scope contract.Scope) (entity.WhatsAppSettings, error) {
	settings := entity.DefaultWhatsAppSettings()
	if err := s.channels.SaveWhatsApp(ctx, scope, settings); err != nil {
		return entity.WhatsAppSettings{}, err
	}
	return settings, nil
}

func (s *channelService) UpdateWhatsApp(ctx context.Context, scope contract.Scope, req *dto.WhatsAppSettingsRequest) (entity.WhatsAppSettings, error) {
	settings, err := s.channels.GetWhatsApp(ctx, scope)
	if err != nil {
		return entity.WhatsAppSettings{}, err
	}
	settings.IsEnabled = req.IsEnabled
	if req.AutoReplyMode != "" {
		settings.AutoReplyMode = entity.AutoReplyMode(req.AutoReplyMode)
	}
	if err := s.channels.SaveWhatsApp(ctx, scope, settings); err != nil {
		return entity.WhatsAppSettings{}, err
	}
	return settings, nil
}

const autoReplyInstruction = `Sei l'assistente WhatsApp di un'attività. Rispondi al messaggio del cliente in modo cordiale e professionale, usando le informazioni del database quando sono pertinenti. Massimo due frasi.`

func (s *channelService) SimulateIncoming(ctx context.Context, scope contract.Scope, req *dto.SimulateMessageRequest) (*dto.SimulateMessageResponse, error) {
	settings, err := s.channels.GetWhatsApp(ctx, scope)
	if err != nil {
		return nil, err
	}
	if !settings.IsConnected || !settings.IsEnabled {
		return nil, fmt.Errorf("%w: auto-reply is not active", apperr.ErrValidation)
	}

	entries, err := s.entries.GetAll(ctx, scope)
	if err != nil {
		return nil, err
	}
	instruction := autoReplyInstruction + "\n\nDATABASE AZIENDALE:\n" + buildEntrySummary(entries)

	reply := autoReplyFallbackMessage
	result, err := s.gateway.CompleteText(ctx, instruction, nil, req.Message, ai.WithTemperature(0.5))
	if err != nil {
		s.log.Warn("ChannelService", "auto-reply generation failed", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		reply = result.Text
	}

	settings.LastActivity = time.Now().UnixMilli()
	if err := s.channels.SaveWhatsApp(ctx, scope, settings); err != nil {
		return nil, err
	}
	return &dto.SimulateMessageResponse{Reply: reply}, nil
}

func (s *channelService) GetSocial(ctx context.Context, scope contract.Scope) ([]entity.SocialPlatformSettings, error) {
	return s.channels.GetSocial(ctx, scope)
}

func (s *channelService) ConnectSocial(ctx context.Context, scope contract.Scope, platform string) ([]entity.SocialPlatformSettings, error) {
	settings, err := s.channels.GetSocial(ctx, scope)
	if err != nil {
		return nil, err
	}
	now := time.Now().UnixMilli()
	for i := range settings {
		if settings[i].Platform != platform {
			continue
		}
		settings[i].IsConnected = true
		settings[i].IsEnabled = true
		if len(settings[i].ManagedPages) == 0 {
			settings[i].ManagedPages = []entity.ManagedPage{{
				Id:          fmt.Sprintf("%s-page-%d", platform, now),
				Name:        "La mia attività",
				Handle:      "@lamiaattivita",
				IsActive:    true,
				Platform:    platform,
				ConnectedAt: now,
			}}
		}
	}
	if err := s.channels.SaveSocial(ctx, scope, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *channelService) ToggleSocial(ctx context.Context, scope contract.Scope, platform string, enabled bool) ([]entity.SocialPlatformSettings, error) {
	settings, err := s.channels.GetSocial(ctx, scope)
	if err != nil {
		return nil, err
	}
	for i := range settings {
		if settings[i].Platform == platform {
			settings[i].IsEnabled = enabled
		}
	}
	if err := s.channels.SaveSocial(ctx, scope, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// buildEntrySummary serializes the entries for the auto-reply prompt.
// Sensitive entries never reach the channel.
func buildEntrySummary(entries []entity.BusinessEntry) string {
	if len(entries) == 0 {
		return "nessuna informazione salvata"
	}
	summary := ""
	for _, e := range entries {
		if e.IsSensitive {
			continue
		}
		summary += fmt.Sprintf("- [%s] %s: %s\n", e.Type, e.Title, e.Content)
	}
	if summary == "" {
		return "nessuna informazione condivisibile"
	}
	return summary
}

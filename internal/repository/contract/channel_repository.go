package contract

import (
	"context"

	"braik-ai-be/internal/entity"
)

// ChannelRepository persists the simulated WhatsApp and social
// auto-reply settings.
type ChannelRepository interface {
	GetWhatsApp(ctx context.Context, scope Scope) (entity.WhatsAppSettings, error)
	SaveWhatsApp(ctx context.Context, scope Scope, settings entity.WhatsAppSettings) error

	GetSocial(ctx context.Context, scope Scope) ([]entity.SocialPlatformSettings, error)
	SaveSocial(ctx context.Context, scope Scope, settings []entity.SocialPlatformSettings) error
}

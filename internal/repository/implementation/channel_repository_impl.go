package implementation

import (
	"context"

	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/repository/contract"
	"braik-ai-be/pkg/kvstore"
)

type ChannelRepositoryImpl struct {
	store kvstore.Store
}

func NewChannelRepository(store kvstore.Store) contract.ChannelRepository {
	return &ChannelRepositoryImpl{store: store}
}

func (r *ChannelRepositoryImpl) GetWhatsApp(ctx context.Context, scope contract.Scope) (entity.WhatsAppSettings, error) {
	return readObject(ctx, r.store, keyFor(scope, colWhatsApp), entity.DefaultWhatsAppSettings())
}

func (r *ChannelRepositoryImpl) SaveWhatsApp(ctx context.Context, scope contract.Scope, settings entity.WhatsAppSettings) error {
	return writeObject(ctx, r.store, keyFor(scope, colWhatsApp), settings)
}

func (r *ChannelRepositoryImpl) GetSocial(ctx context.Context, scope contract.Scope) ([]entity.SocialPlatformSettings, error) {
	settings, err := readList[entity.SocialPlatformSettings](ctx, r.store, keyFor(scope, colSocial))
	if err != nil {
		return nil, err
	}
	if len(settings) == 0 {
		return entity.DefaultSocialSettings(), nil
	}
	return settings, nil
}

func (r *ChannelRepositoryImpl) SaveSocial(ctx context.Context, scope contract.Scope, settings []entity.SocialPlatformSettings) error {
	return writeList(ctx, r.store, keyFor(scope, colSocial), settings)
}

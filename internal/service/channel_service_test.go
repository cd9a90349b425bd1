package service

import (
	"context"
	"regexp"
	"testing"

	"braik-ai-be/internal/apperr"
	"braik-ai-be/internal/dto"
	"braik-ai-be/internal/repository/contract"
	"braik-ai-be/internal/repository/implementation"
	"braik-ai-be/pkg/ai"
	"braik-ai-be/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChannelService(gateway ai.Gateway) (IChannelService, *implementation.Repositories) {
	repos := implementation.NewRepositories(kvstore.NewMemoryStore())
	return NewChannelService(repos.Channels, repos.Entries, gateway, nopLogger{}), repos
}

func TestChannelService_WhatsAppPairing(t *testing.T) {
	ctx := context.Background()
	scope := contract.UserScope("alice@example.com")
	svc, _ := newTestChannelService(&fakeGateway{})

	res, err := svc.PairWhatsApp(ctx, scope)
	require.NoError(t, err)

	t.Run("token has the linking code shape", func(t *testing.T) {
		assert.Regexp(t, regexp.MustCompile(`^1@[A-Z0-9]{20},[A-Za-z0-9+/=]+,[A-Z0-9]{20}$`), res.PairingToken)
	})

	t.Run("third part is the first part reversed", func(t *testing.T) {
		m := regexp.MustCompile(`^1@([A-Z0-9]{20}),[^,]+,([A-Z0-9]{20})$`).FindStringSubmatch(res.PairingToken)
		require.Len(t, m, 3)
		reversed := []rune(m[2])
		for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
			reversed[i], reversed[j] = reversed[j], reversed[i]
		}
		assert.Equal(t, m[1], string(reversed))
	})

	t.Run("pairing marks the channel connected", func(t *testing.T) {
		assert.True(t, res.Settings.IsConnected)
		assert.True(t, res.Settings.IsEnabled)
		assert.NotZero(t, res.Settings.LastActivity)
	})

	t.Run("disconnect resets to defaults", func(t *testing.T) {
		settings, err := svc.DisconnectWhatsApp(ctx, scope)
		require.NoError(t, err)
		assert.False(t, settings.IsConnected)
		assert.False(t, settings.IsEnabled)
	})
}

func TestChannelService_SimulateIncoming(t *testing.T) {
	ctx := context.Background()
	scope := contract.UserScope("alice@example.com")

	t.Run("rejected while disconnected", func(t *testing.T) {
		svc, _ := newTestChannelService(&fakeGateway{})
		_, err := svc.SimulateIncoming(ctx, scope, &dto.SimulateMessageRequest{Message: "siete aperti?"})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("generates a reply once paired", func(t *testing.T) {
		gateway := &fakeGateway{textResult: &ai.TextResult{Text: "Sì, fino alle 19!"}}
		svc, _ := newTestChannelService(gateway)

		_, err := svc.PairWhatsApp(ctx, scope)
		require.NoError(t, err)

		res, err := svc.SimulateIncoming(ctx, scope, &dto.SimulateMessageRequest{Message: "siete aperti?"})
		require.NoError(t, err)
		assert.Equal(t, "Sì, fino alle 19!", res.Reply)
		assert.Equal(t, "siete aperti?", gateway.lastQuery)
	})

	t.Run("falls back to a canned reply when the gateway fails", func(t *testing.T) {
		svc, _ := newTestChannelService(&fakeGateway{textErr: ai.ErrUnavailable})

		_, err := svc.PairWhatsApp(ctx, scope)
		require.NoError(t, err)

		res, err := svc.SimulateIncoming(ctx, scope, &dto.SimulateMessageRequest{Message: "siete aperti?"})
		require.NoError(t, err)
		assert.Equal(t, autoReplyFallbackMessage, res.Reply)
	})
}

func TestChannelService_Social(t *testing.T) {
	ctx := context.Background()
	scope := contract.UserScope("alice@example.com")
	svc, _ := newTestChannelService(&fakeGateway{})

	t.Run("defaults list the three platforms disconnected", func(t *testing.T) {
		platforms, err := svc.GetSocial(ctx, scope)
		require.NoError(t, err)
		require.Len(t, platforms, 3)
		for _, p := range platforms {
			assert.False(t, p.IsConnected)
		}
	})

	t.Run("connect flags the platform and seeds a managed page", func(t *testing.T) {
		platforms, err := svc.ConnectSocial(ctx, scope, "instagram")
		require.NoError(t, err)
		for _, p := range platforms {
			if p.Platform == "instagram" {
				assert.True(t, p.IsConnected)
				assert.True(t, p.IsEnabled)
				require.Len(t, p.ManagedPages, 1)
				assert.Equal(t, "instagram", p.ManagedPages[0].Platform)
			} else {
				assert.False(t, p.IsConnected)
			}
		}
	})

	t.Run("toggle only touches the named platform", func(t *testing.T) {
		platforms, err := svc.ToggleSocial(ctx, scope, "instagram", false)
		require.NoError(t, err)
		for _, p := range platforms {
			if p.Platform == "instagram" {
				assert.False(t, p.IsEnabled)
				assert.True(t, p.IsConnected)
			}
		}
	})
}

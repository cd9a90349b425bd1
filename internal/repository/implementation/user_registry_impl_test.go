package implementation

import (
	"context"
	"testing"

	"braik-ai-be/internal/entity"
	"braik-ai-be/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRegistry(t *testing.T) {
	ctx := context.Background()
	registry := NewUserRegistry(kvstore.NewMemoryStore())

	t.Run("unknown email returns nil", func(t *testing.T) {
		record, err := registry.Get(ctx, "ghost@example.com")
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("save and get", func(t *testing.T) {
		record := entity.UserRecord{
			Profile: entity.UserProfile{Name: "Alice", Email: "alice@example.com"},
			Auth:    entity.AuthState{IsConfigured: true, Email: "alice@example.com"},
		}
		require.NoError(t, registry.Save(ctx, "alice@example.com", record))

		got, err := registry.Get(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Alice", got.Profile.Name)
	})

	t.Run("multiple users live in one registry", func(t *testing.T) {
		require.NoError(t, registry.Save(ctx, "bob@example.com", entity.UserRecord{
			Profile: entity.UserProfile{Name: "Bob", Email: "bob@example.com"},
		}))

		alice, err := registry.Get(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, alice)
		bob, err := registry.Get(ctx, "bob@example.com")
		require.NoError(t, err)
		require.NotNil(t, bob)
		assert.Equal(t, "Bob", bob.Profile.Name)
	})

	t.Run("active pointer lifecycle", func(t *testing.T) {
		require.NoError(t, registry.SetActive(ctx, "alice@example.com"))
		email, err := registry.ActiveEmail(ctx)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", email)

		require.NoError(t, registry.ClearActive(ctx))
		email, err = registry.ActiveEmail(ctx)
		require.NoError(t, err)
		assert.Empty(t, email)
	})
}

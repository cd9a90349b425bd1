package implementation

import (
	"context"
	"testing"

	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/repository/contract"
	"braik-ai-be/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewEntryRepository(store)
	scope := contract.UserScope("alice@example.com")

	first := entity.BusinessEntry{Id: "1", Type: entity.EntryTypeNote, Title: "Fornitori"}
	second := entity.BusinessEntry{Id: "2", Type: entity.EntryTypeContact, Title: "Mario"}
	third := entity.BusinessEntry{Id: "3", Type: entity.EntryTypeNote, Title: "Prezzi"}

	for _, e := range []entity.BusinessEntry{first, second, third} {
		require.NoError(t, repo.Upsert(ctx, scope, e))
	}

	t.Run("same id replaces in place preserving position", func(t *testing.T) {
		updated := second
		updated.Title = "Mario Rossi"
		require.NoError(t, repo.Upsert(ctx, scope, updated))

		entries, err := repo.GetAll(ctx, scope)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "1", entries[0].Id)
		assert.Equal(t, "2", entries[1].Id)
		assert.Equal(t, "Mario Rossi", entries[1].Title)
		assert.Equal(t, "3", entries[2].Id)
	})

	t.Run("new id appends", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, scope, entity.BusinessEntry{Id: "4", Title: "Nuovo"}))
		entries, err := repo.GetAll(ctx, scope)
		require.NoError(t, err)
		require.Len(t, entries, 4)
		assert.Equal(t, "4", entries[3].Id)
	})
}

func TestEntryRepository_Remove(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(kvstore.NewMemoryStore())
	scope := contract.UserScope("alice@example.com")

	require.NoError(t, repo.Upsert(ctx, scope, entity.BusinessEntry{Id: "1"}))
	require.NoError(t, repo.Upsert(ctx, scope, entity.BusinessEntry{Id: "2"}))

	t.Run("removes matching entry", func(t *testing.T) {
		require.NoError(t, repo.Remove(ctx, scope, "1"))
		entries, err := repo.GetAll(ctx, scope)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "2", entries[0].Id)
	})

	t.Run("removing unknown id is a no-op", func(t *testing.T) {
		require.NoError(t, repo.Remove(ctx, scope, "does-not-exist"))
		entries, err := repo.GetAll(ctx, scope)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestEntryRepository_ScopeIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(kvstore.NewMemoryStore())

	alice := contract.UserScope("alice@example.com")
	bob := contract.UserScope("bob@example.com")
	guest := contract.GuestScope()

	require.NoError(t, repo.Upsert(ctx, alice, entity.BusinessEntry{Id: "a", Title: "di Alice"}))
	require.NoError(t, repo.Upsert(ctx, guest, entity.BusinessEntry{Id: "g", Title: "ospite"}))

	bobEntries, err := repo.GetAll(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, bobEntries)

	guestEntries, err := repo.GetAll(ctx, guest)
	require.NoError(t, err)
	require.Len(t, guestEntries, 1)
	assert.Equal(t, "g", guestEntries[0].Id)

	aliceEntries, err := repo.GetAll(ctx, alice)
	require.NoError(t, err)
	require.Len(t, aliceEntries, 1)
	assert.Equal(t, "a", aliceEntries[0].Id)
}

func TestEntryRepository_MalformedBlobIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewEntryRepository(store)
	scope := contract.UserScope("alice@example.com")

	require.NoError(t, store.Set(ctx, keyFor(scope, colEntries), []byte("{not json")))

	entries, err := repo.GetAll(ctx, scope)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

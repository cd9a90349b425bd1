package implementation

import (
	"context"

	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/repository/contract"
	"braik-ai-be/pkg/kvstore"
)

type EntryRepositoryImpl struct {
	store kvstore.Store
}

func NewEntryRepository(store kvstore.Store) contract.EntryRepository {
	return &EntryRepositoryImpl{store: store}
}

func (r *EntryRepositoryImpl) GetAll(ctx context.Context, scope contract.Scope) ([]entity.BusinessEntry, error) {
	return readList[entity.BusinessEntry](ctx, r.store, keyFor(scope, colEntries))
}

func (r *EntryRepositoryImpl) Upsert(ctx context.Context, scope contract.Scope, entry entity.BusinessEntry) error {
	key := keyFor(scope, colEntries)
	entries, err := readList[entity.BusinessEntry](ctx, r.store, key)
	if err != nil {
		return err
	}
	replaced := false
	for i := range entries {
		if entries[i].Id == entry.Id {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}
	return writeList(ctx, r.store, key, entries)
}

func (r *EntryRepositoryImpl) Remove(ctx context.Context, scope contract.Scope, id string) error {
	key := keyFor(scope, colEntries)
	entries, err := readList[entity.BusinessEntry](ctx, r.store, key)
	if err != nil {
		return err
	}
	filtered := entries[:0]
	for _, e := range entries {
		if e.Id != id {
			filtered = append(filtered, e)
		}
	}
	return writeList(ctx, r.store, key, filtered)
}

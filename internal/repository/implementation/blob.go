package implementation

import (
	"context"
	"encoding/json"

	"braik-ai-be/pkg/kvstore"
)

// readList decodes a stored collection blob into a slice. A missing or
// malformed blob is treated as an empty collection, never an error:
// the caller always gets a usable default.
func readList[T any](ctx context.Context, store kvstore.Store, key string) ([]T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return []T{}, nil
	}
	return items, nil
}

// writeList serializes and persists the full collection in one write.
func writeList[T any](ctx context.Context, store kvstore.Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, raw)
}

// readObject decodes a singleton blob, falling back to def when the
// blob is absent or malformed.
func readObject[T any](ctx context.Context, store kvstore.Store, key string, def T) (T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return def, err
	}
	if raw == nil {
		return def, nil
	}
	var obj T
	if err := json.Unmarshal(raw, &obj); err != nil {
		return def, nil
	}
	return obj, nil
}

func writeObject[T any](ctx context.Context, store kvstore.Store, key string, obj T) error {
	raw, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, raw)
}

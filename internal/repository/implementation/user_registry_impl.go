package implementation

import (
	"context"
	"encoding/json"

	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/repository/contract"
	"braik-ai-be/pkg/kvstore"
)

type UserRegistryImpl struct {
	store kvstore.Store
}

func NewUserRegistry(store kvstore.Store) contract.UserRegistry {
	return &UserRegistryImpl{store: store}
}

func (r *UserRegistryImpl) registry(ctx context.Context) (map[string]entity.UserRecord, error) {
	raw, err := r.store.Get(ctx, usersRegistryKey)
	if err != nil {
		return nil, err
	}
	registry := map[string]entity.UserRecord{}
	if raw == nil {
		return registry, nil
	}
	if err := json.Unmarshal(raw, &registry); err != nil {
		return map[string]entity.UserRecord{}, nil
	}
	return registry, nil
}

func (r *UserRegistryImpl) Get(ctx context.Context, email string) (*entity.UserRecord, error) {
	registry, err := r.registry(ctx)
	if err != nil {
		return nil, err
	}
	record, ok := registry[email]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (r *UserRegistryImpl) Save(ctx context.Context, email string, record entity.UserRecord) error {
	registry, err := r.registry(ctx)
	if err != nil {
		return err
	}
	registry[email] = record
	raw, err := json.Marshal(registry)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, usersRegistryKey, raw)
}

func (r *UserRegistryImpl) ActiveEmail(ctx context.Context) (string, error) {
	raw, err := r.store.Get(ctx, activeUserKey)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (r *UserRegistryImpl) SetActive(ctx context.Context, email string) error {
	return r.store.Set(ctx, activeUserKey, []byte(email))
}

func (r *UserRegistryImpl) ClearActive(ctx context.Context) error {
	return r.store.Delete(ctx, activeUserKey)
}

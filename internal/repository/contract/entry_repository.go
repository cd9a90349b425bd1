package contract

import (
	"context"

	"braik-ai-be/internal/entity"
)

type EntryRepository interface {
	GetAll(ctx context.Context, scope Scope) ([]entity.BusinessEntry, error)
	// Upsert replaces the entry with the same id in place, preserving
	// its position, or appends when the id is new.
	Upsert(ctx context.Context, scope Scope, entry entity.BusinessEntry) error
	// Remove filters out the matching entry. Removing an unknown id is
	// a no-op.
	Remove(ctx context.Context, scope Scope, id string) error
}

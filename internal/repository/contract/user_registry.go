package contract

import (
	"context"

	"braik-ai-be/internal/entity"
)

// UserRegistry is the global, unscoped email -> {profile, auth} map
// plus the active-user pointer. The pointer tracks the most recent
// login for single-device clients; HTTP callers are identified per
// request by their token, not by the pointer.
type UserRegistry interface {
	Get(ctx context.Context, email string) (*entity.UserRecord, error)
	Save(ctx context.Context, email string, record entity.UserRecord) error

	ActiveEmail(ctx context.Context) (string, error)
	SetActive(ctx context.Context, email string) error
	ClearActive(ctx context.Context) error
}

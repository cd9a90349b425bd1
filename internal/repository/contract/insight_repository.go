package contract

import (
	"context"

	"braik-ai-be/internal/entity"
)

type InsightRepository interface {
	// Get returns the stored insights or the documented default when
	// the collection is absent or malformed.
	Get(ctx context.Context, scope Scope) (entity.BehavioralInsights, error)
	// Save overwrites the whole insights object.
	Save(ctx context.Context, scope Scope, insights entity.BehavioralInsights) error
}

package implementation

import (
	"context"

	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/repository/contract"
	"braik-ai-be/pkg/kvstore"
)

type InsightRepositoryImpl struct {
	store kvstore.Store
}

func NewInsightRepository(store kvstore.Store) contract.InsightRepository {
	return &InsightRepositoryImpl{store: store}
}

func (r *InsightRepositoryImpl) Get(ctx context.Context, scope contract.Scope) (entity.BehavioralInsights, error) {
	return readObject(ctx, r.store, keyFor(scope, colInsights), entity.DefaultInsights())
}

func (r *InsightRepositoryImpl) Save(ctx context.Context, scope contract.Scope, insights entity.BehavioralInsights) error {
	return writeObject(ctx, r.store, keyFor(scope, colInsights), insights)
}

package service

import (
	"context"
	"testing"

	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/repository/contract"
	"braik-ai-be/internal/repository/implementation"
	"braik-ai-be/pkg/ai"
	"braik-ai-be/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	email  string
	alerts []entity.GuardianAlert
	calls  int
}

func (n *recordingNotifier) NotifyAlerts(email string, alerts []entity.GuardianAlert) {
	n.calls++
	n.email = email
	n.alerts = alerts
}

func newTestInsightService(gateway ai.Gateway, notifier AlertNotifier) (IInsightService, *implementation.Repositories) {
	repos := implementation.NewRepositories(kvstore.NewMemoryStore())
	svc := NewInsightService(repos.Insights, repos.Entries, repos.Calendar, gateway, notifier, nil, nopLogger{})
	return svc, repos
}

func TestInsightService_DefaultProfile(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestInsightService(&fakeGateway{}, nil)

	insights, err := svc.Get(ctx, contract.UserScope("alice@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "Analisi in corso...", insights.WritingStyle)
	assert.Empty(t, insights.GuardianAlerts)
	assert.Zero(t, insights.LastAnalysis)
}

func TestInsightService_MergeFragment(t *testing.T) {
	ctx := context.Background()
	scope := contract.UserScope("alice@example.com")
	svc, repos := newTestInsightService(&fakeGateway{}, nil)

	seed := entity.DefaultInsights()
	seed.WritingStyle = "Formale"
	seed.FrequentTopics = []string{"fatture"}
	seed.AnticipatedNeeds = []string{"scadenze fiscali"}
	require.NoError(t, repos.Insights.Save(ctx, scope, seed))

	t.Run("present fields overwrite", func(t *testing.T) {
		style := "Diretto"
		merged, err := svc.MergeFragment(ctx, scope, entity.InsightFragment{
			WritingStyle:   &style,
			FrequentTopics: []string{"fornitori"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Diretto", merged.WritingStyle)
		assert.Equal(t, []string{"fornitori"}, merged.FrequentTopics)
	})

	t.Run("absent fields are preserved", func(t *testing.T) {
		merged, err := svc.MergeFragment(ctx, scope, entity.InsightFragment{})
		require.NoError(t, err)
		assert.Equal(t, "Diretto", merged.WritingStyle)
		assert.Equal(t, []string{"fornitori"}, merged.FrequentTopics)
		assert.Equal(t, []string{"scadenze fiscali"}, merged.AnticipatedNeeds)
	})

	t.Run("lastAnalysis is stamped", func(t *testing.T) {
		merged, err := svc.MergeFragment(ctx, scope, entity.InsightFragment{})
		require.NoError(t, err)
		assert.NotZero(t, merged.LastAnalysis)
	})
}

func TestInsightService_AnalyzeHistory(t *testing.T) {
	ctx := context.Background()
	scope := contract.UserScope("alice@example.com")

	gateway := &fakeGateway{
		textResult: &ai.TextResult{
			RawJSON: []byte(`{"writingStyle":"Colloquiale","frequentTopics":["consegne"]}`),
		},
	}
	svc, _ := newTestInsightService(gateway, nil)

	history := []entity.ChatMessage{
		{Role: entity.ChatRoleUser, Content: "quando arriva la consegna?"},
		{Role: entity.ChatRoleAssistant, Content: "Domani mattina."},
	}
	require.NoError(t, svc.AnalyzeHistory(ctx, scope, history))

	insights, err := svc.Get(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, "Colloquiale", insights.WritingStyle)
	assert.Equal(t, []string{"consegne"}, insights.FrequentTopics)
	assert.True(t, gateway.lastOpts.JSONSchema != nil)
}

func TestInsightService_RunGuardianCheck(t *testing.T) {
	ctx := context.Background()
	scope := contract.UserScope("alice@example.com")

	gateway := &fakeGateway{
		textResult: &ai.TextResult{
			RawJSON: []byte(`[{"type":"forgotten","message":"Non hai risposto a Rossi da 5 giorni","severity":"medium"}]`),
		},
	}
	notifier := &recordingNotifier{}
	svc, repos := newTestInsightService(gateway, notifier)

	// Pre-existing alerts must be replaced wholesale, not appended to.
	stale := entity.DefaultInsights()
	stale.GuardianAlerts = []entity.GuardianAlert{{Id: "old", Message: "vecchio avviso"}}
	require.NoError(t, repos.Insights.Save(ctx, scope, stale))

	require.NoError(t, svc.RunGuardianCheck(ctx, scope))

	insights, err := svc.Get(ctx, scope)
	require.NoError(t, err)
	require.Len(t, insights.GuardianAlerts, 1)
	alert := insights.GuardianAlerts[0]
	assert.Equal(t, entity.AlertTypeForgotten, alert.Type)
	assert.Equal(t, "medium", alert.Severity)
	assert.NotEqual(t, "old", alert.Id)
	assert.NotZero(t, alert.Timestamp)

	t.Run("connected clients are notified", func(t *testing.T) {
		assert.Equal(t, 1, notifier.calls)
		assert.Equal(t, "alice@example.com", notifier.email)
		require.Len(t, notifier.alerts, 1)
	})

	t.Run("gateway failure propagates for the caller to swallow", func(t *testing.T) {
		broken, _ := newTestInsightService(&fakeGateway{textErr: ai.ErrUnavailable}, nil)
		assert.Error(t, broken.RunGuardianCheck(ctx, scope))
	})
}

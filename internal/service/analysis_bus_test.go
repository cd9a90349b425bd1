package service

import (
	"context"
	"testing"
	"time"

	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/repository/contract"
	"braik-ai-be/internal/repository/implementation"
	"braik-ai-be/pkg/ai"
	"braik-ai-be/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisBus(t *testing.T) {
	scope := contract.UserScope("alice@example.com")

	workspaceTurns := []entity.ChatMessage{
		newMessage(entity.ChatRoleUser, "ciao"),
		newMessage(entity.ChatRoleAssistant, "Ciao! Come posso aiutarti?"),
		newMessage(entity.ChatRoleUser, "il forno apre alle 6 di mattina"),
		newMessage(entity.ChatRoleAssistant, "Segnato."),
	}

	t.Run("workspace transcript is analyzed even with an empty search history", func(t *testing.T) {
		gateway := &fakeGateway{
			textResult: &ai.TextResult{RawJSON: []byte(`{"writingStyle":"informale"}`)},
		}
		repos := implementation.NewRepositories(kvstore.NewMemoryStore())
		insights := NewInsightService(repos.Insights, repos.Entries, repos.Calendar, gateway, nil, nil, nopLogger{})
		bus := NewAnalysisBus(insights, nopLogger{})
		defer bus.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go bus.Run(ctx)

		// The subscriber attaches asynchronously; rescheduling mirrors
		// production, where every later turn submits a fresh job.
		require.Eventually(t, func() bool {
			bus.Schedule(workspaceTurns, "alice@example.com")
			current, err := repos.Insights.Get(context.Background(), scope)
			return err == nil && current.LastAnalysis != 0
		}, 3*time.Second, 20*time.Millisecond)

		// The flat search history was never written: the analyzed turns
		// can only have come from the job payload.
		flat, err := repos.History.Get(context.Background(), scope)
		require.NoError(t, err)
		assert.Empty(t, flat)

		current, err := repos.Insights.Get(context.Background(), scope)
		require.NoError(t, err)
		assert.Equal(t, "informale", current.WritingStyle)
	})

	t.Run("short transcripts are not scheduled", func(t *testing.T) {
		gateway := &fakeGateway{
			textResult: &ai.TextResult{RawJSON: []byte(`{"writingStyle":"informale"}`)},
		}
		repos := implementation.NewRepositories(kvstore.NewMemoryStore())
		insights := NewInsightService(repos.Insights, repos.Entries, repos.Calendar, gateway, nil, nil, nopLogger{})
		bus := NewAnalysisBus(insights, nopLogger{})
		defer bus.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go bus.Run(ctx)

		bus.Schedule(workspaceTurns[:2], "alice@example.com")
		time.Sleep(100 * time.Millisecond)

		current, err := repos.Insights.Get(context.Background(), scope)
		require.NoError(t, err)
		assert.Zero(t, current.LastAnalysis)
		assert.Zero(t, gateway.textCalls)
	})
}

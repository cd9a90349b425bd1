package service

import (
	"context"
	"encoding/json"

	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/pkg/logger"
	"braik-ai-be/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const analysisTopic = "analysis.turns"

// minTurnsForAnalysis gates background analysis: below this many chat
// turns there is not enough signal to profile the user.
const minTurnsForAnalysis = 3

// analysisJob carries the transcript that triggered it. Workspace
// sessions and the flat search history are separate collections, so
// the worker cannot re-read "the" history; the scheduling turn knows
// which one it came from.
type analysisJob struct {
	Email string               `json:"email"`
	Turns []entity.ChatMessage `json:"turns"`
}

// AnalysisBus decouples chat turns from the behavioral analysis that
// follows them. Jobs are published after the primary response has been
// persisted and are processed by a single in-process worker; every
// failure is logged and dropped, never surfaced to the user.
type AnalysisBus struct {
	pubSub   *gochannel.GoChannel
	insights IInsightService
	log      logger.ILogger
}

func NewAnalysisBus(insights IInsightService, log logger.ILogger) *AnalysisBus {
	return &AnalysisBus{
		pubSub:   gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{}),
		insights: insights,
		log:      log,
	}
}

// Schedule submits an analysis job over the given transcript. It is a
// no-op when the transcript is too short to be worth analyzing.
func (b *AnalysisBus) Schedule(history []entity.ChatMessage, email string) {
	if len(history) < minTurnsForAnalysis {
		return
	}
	payload, err := json.Marshal(analysisJob{Email: email, Turns: history})
	if err != nil {
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := b.pubSub.Publish(analysisTopic, msg); err != nil {
		b.log.Warn("AnalysisBus", "failed to schedule analysis", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
	}
}

// Run consumes analysis jobs until ctx is cancelled. Each job extracts
// a behavioral fragment from its transcript, merges it, and refreshes
// the guardian alerts. A failed job is acked and dropped: the next
// chat turn schedules a fresh one anyway.
func (b *AnalysisBus) Run(ctx context.Context) error {
	messages, err := b.pubSub.Subscribe(ctx, analysisTopic)
	if err != nil {
		return err
	}

	for msg := range messages {
		var job analysisJob
		if err := json.Unmarshal(msg.Payload, &job); err != nil {
			b.log.Error("AnalysisBus", "malformed analysis job", map[string]interface{}{
				"error": err.Error(),
			})
			msg.Ack()
			continue
		}
		b.process(ctx, job)
		msg.Ack()
	}
	return nil
}

func (b *AnalysisBus) process(ctx context.Context, job analysisJob) {
	scope := contract.UserScope(job.Email)
	if job.Email == "" {
		scope = contract.GuestScope()
	}

	if err := b.insights.AnalyzeHistory(ctx, scope, job.Turns); err != nil {
		b.log.Warn("AnalysisBus", "behavioral analysis failed", map[string]interface{}{
			"email": job.Email, "error": err.Error(),
		})
	}
	if err := b.insights.RunGuardianCheck(ctx, scope); err != nil {
		b.log.Warn("AnalysisBus", "guardian check failed", map[string]interface{}{
			"email": job.Email, "error": err.Error(),
		})
	}
}

func (b *AnalysisBus) Close() error {
	return b.pubSub.Close()
}

package service

import (
	"context"

	"braik-ai-be/pkg/ai"
)

// fakeGateway scripts gateway responses for service tests and records
// what it was called with.
type fakeGateway struct {
	textResult  *ai.TextResult
	textErr     error
	imageResult *ai.ImageResult
	imageErr    error
	docResult   *ai.TextResult
	docErr      error

	textCalls       int
	lastInstruction string
	lastQuery       string
	lastHistory     []ai.Message
	lastOpts        ai.Options
}

func (f *fakeGateway) CompleteText(_ context.Context, instruction string, history []ai.Message, query string, opts ...ai.Option) (*ai.TextResult, error) {
	f.textCalls++
	f.lastInstruction = instruction
	f.lastHistory = history
	f.lastQuery = query
	f.lastOpts = ai.Options{}
	for _, opt := range opts {
		opt(&f.lastOpts)
	}
	if f.textErr != nil {
		return nil, f.textErr
	}
	return f.textResult, nil
}

func (f *fakeGateway) GenerateImage(_ context.Context, prompt, _, _, _ string) (*ai.ImageResult, error) {
	f.lastQuery = prompt
	if f.imageErr != nil {
		return nil, f.imageErr
	}
	return f.imageResult, nil
}

func (f *fakeGateway) AnalyzeDocument(_ context.Context, _, instruction string, _ *ai.Schema) (*ai.TextResult, error) {
	f.lastInstruction = instruction
	if f.docErr != nil {
		return nil, f.docErr
	}
	return f.docResult, nil
}

func (f *fakeGateway) ConnectLive(context.Context, string, string) (ai.LiveSession, error) {
	return nil, ai.ErrUnavailable
}

// nopLogger satisfies logger.ILogger for tests.
type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

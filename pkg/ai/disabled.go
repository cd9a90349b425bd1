package ai

import "context"

// Disabled is the gateway used when no API key is configured. Every
// call fails with ErrUnavailable so AI-backed features degrade to
// their local fallback messages instead of crashing.
type Disabled struct{}

func NewDisabled() *Disabled { return &Disabled{} }

func (Disabled) CompleteText(context.Context, string, []Message, string, ...Option) (*TextResult, error) {
	return nil, ErrUnavailable
}

func (Disabled) GenerateImage(context.Context, string, string, string, string) (*ImageResult, error) {
	return nil, ErrUnavailable
}

func (Disabled) AnalyzeDocument(context.Context, string, string, *Schema) (*TextResult, error) {
	return nil, ErrUnavailable
}

func (Disabled) ConnectLive(context.Context, string, string) (LiveSession, error) {
	return nil, ErrUnavailable
}

// Package ai defines the provider-agnostic contract for the remote
// generative gateway. The application core depends only on this
// interface; the Gemini implementation lives in ai/gemini.
package ai

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by every call when the gateway has no
// credential or the remote service cannot be reached. Callers convert
// it to a per-feature fallback message; it must never crash a flow.
var ErrUnavailable = errors.New("ai gateway unavailable")

// Message is a chat turn in a provider-agnostic format.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// Option carries optional completion parameters.
type Option func(*Options)

type Options struct {
	Temperature  float64
	WebGrounding bool
	JSONSchema   *Schema
}

func WithTemperature(temp float64) Option {
	return func(o *Options) { o.Temperature = temp }
}

// WithWebGrounding allows the model to consult web search and return
// source citations.
func WithWebGrounding() Option {
	return func(o *Options) { o.WebGrounding = true }
}

// WithJSONSchema constrains the response to schema-shaped JSON. A
// response that does not parse as JSON is a failure.
func WithJSONSchema(schema *Schema) Option {
	return func(o *Options) { o.JSONSchema = schema }
}

// Schema is a minimal JSON-schema subset, enough to describe the
// structured replies this application asks for.
type Schema struct {
	Type       string
	Properties map[string]*Schema
	Items      *Schema
	Enum       []string
	Required   []string
}

type Source struct {
	Uri   string
	Title string
}

type TextResult struct {
	Text    string
	Sources []Source
	// RawJSON holds the unparsed body of a schema-constrained reply.
	RawJSON []byte
}

type ImageResult struct {
	Text        string
	ImageBase64 string
}

// LiveEvent is one server-side event of a bidirectional audio session.
type LiveEvent struct {
	InputTranscript  string
	OutputTranscript string
	AudioChunk       []byte
	TurnComplete     bool
	Interrupted      bool
}

// LiveSession is a bidirectional audio stream with the model.
type LiveSession interface {
	SendAudio(chunk []byte) error
	// Receive blocks until the next server event. It returns an error
	// when the stream ends.
	Receive() (*LiveEvent, error)
	Close() error
}

// Gateway is the full remote capability surface the core requires.
type Gateway interface {
	CompleteText(ctx context.Context, systemInstruction string, history []Message, query string, opts ...Option) (*TextResult, error)
	GenerateImage(ctx context.Context, prompt, systemInstruction, aspectRatio, size string) (*ImageResult, error)
	AnalyzeDocument(ctx context.Context, imageBase64, instruction string, schema *Schema) (*TextResult, error)
	ConnectLive(ctx context.Context, systemInstruction, voice string) (LiveSession, error)
}

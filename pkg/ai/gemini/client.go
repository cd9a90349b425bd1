// Package gemini implements the ai.Gateway contract on top of the
// Google GenAI API.
package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"braik-ai-be/pkg/ai"

	"google.golang.org/genai"
)

const (
	// Text and structured-JSON completions, legal reasoning included.
	textModel = "gemini-3-pro-preview"
	// High-quality image generation.
	imageModel = "gemini-3-pro-image-preview"
	// Bidirectional native audio.
	liveModel = "gemini-2.5-flash-native-audio-preview-09-2025"

	// Reasoning budget for text turns.
	thinkingBudget = 2048
)

type Client struct {
	client *genai.Client
}

// New creates the Gemini gateway. The API key is required; callers
// without one should use ai.NewDisabled() instead.
func New(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}
	return &Client{client: client}, nil
}

func (c *Client) CompleteText(ctx context.Context, systemInstruction string, history []ai.Message, query string, opts ...ai.Option) (*ai.TextResult, error) {
	options := ai.Options{Temperature: 0.2}
	for _, opt := range opts {
		opt(&options)
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		role := genai.RoleUser
		if m.Role == "assistant" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, genai.Role(role)))
	}
	contents = append(contents, genai.NewContentFromText(query, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(float32(options.Temperature)),
		ThinkingConfig:    &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(int32(thinkingBudget))},
	}
	if options.WebGrounding {
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	if options.JSONSchema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = toGenaiSchema(options.JSONSchema)
		// Grounding tools and constrained output are mutually exclusive.
		config.Tools = nil
	}

	resp, err := c.client.Models.GenerateContent(ctx, textModel, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini: text completion failed: %w", err)
	}

	result := &ai.TextResult{Text: resp.Text()}
	if options.JSONSchema != nil {
		raw := []byte(strings.TrimSpace(result.Text))
		if !json.Valid(raw) {
			return nil, fmt.Errorf("gemini: schema-constrained reply is not valid JSON")
		}
		result.RawJSON = raw
	}
	result.Sources = extractSources(resp)
	return result, nil
}

func (c *Client) GenerateImage(ctx context.Context, prompt, systemInstruction, aspectRatio, size string) (*ai.ImageResult, error) {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ImageConfig: &genai.ImageConfig{
			AspectRatio: aspectRatio,
			ImageSize:   size,
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, imageModel, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini: image generation failed: %w", err)
	}

	result := &ai.ImageResult{}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				result.ImageBase64 = base64.StdEncoding.EncodeToString(part.InlineData.Data)
			} else if part.Text != "" {
				result.Text = part.Text
			}
		}
	}
	if result.ImageBase64 == "" {
		return nil, fmt.Errorf("gemini: no image returned")
	}
	return result, nil
}

func (c *Client) AnalyzeDocument(ctx context.Context, imageBase64, instruction string, schema *ai.Schema) (*ai.TextResult, error) {
	data, err := decodeImage(imageBase64)
	if err != nil {
		return nil, fmt.Errorf("gemini: bad image payload: %w", err)
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(data, "image/jpeg"),
		genai.NewPartFromText(instruction),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	config := &genai.GenerateContentConfig{}
	if schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = toGenaiSchema(schema)
	}

	resp, err := c.client.Models.GenerateContent(ctx, textModel, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini: document analysis failed: %w", err)
	}

	result := &ai.TextResult{Text: resp.Text()}
	if schema != nil {
		raw := []byte(strings.TrimSpace(result.Text))
		if !json.Valid(raw) {
			return nil, fmt.Errorf("gemini: document analysis reply is not valid JSON")
		}
		result.RawJSON = raw
	}
	return result, nil
}

// decodeImage accepts either a bare base64 payload or a data URL.
func decodeImage(imageBase64 string) ([]byte, error) {
	payload := imageBase64
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	return base64.StdEncoding.DecodeString(payload)
}

func extractSources(resp *genai.GenerateContentResponse) []ai.Source {
	var sources []ai.Source
	for _, cand := range resp.Candidates {
		if cand.GroundingMetadata == nil {
			continue
		}
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk.Web == nil {
				continue
			}
			sources = append(sources, ai.Source{Uri: chunk.Web.URI, Title: chunk.Web.Title})
		}
	}
	return sources
}

func toGenaiSchema(s *ai.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{Required: s.Required, Enum: s.Enum}
	switch s.Type {
	case "object":
		out.Type = genai.TypeObject
	case "array":
		out.Type = genai.TypeArray
	case "number":
		out.Type = genai.TypeNumber
	case "integer":
		out.Type = genai.TypeInteger
	case "boolean":
		out.Type = genai.TypeBoolean
	default:
		out.Type = genai.TypeString
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	out.Items = toGenaiSchema(s.Items)
	return out
}

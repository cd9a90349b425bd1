package gemini

import (
	"context"
	"fmt"

	"braik-ai-be/pkg/ai"

	"google.golang.org/genai"
)

// liveSession adapts a genai live connection to the ai.LiveSession
// contract. Audio in both directions is 16-bit PCM.
type liveSession struct {
	session *genai.Session
}

func (c *Client) ConnectLive(ctx context.Context, systemInstruction, voice string) (ai.LiveSession, error) {
	config := &genai.LiveConnectConfig{
		ResponseModalities: []genai.Modality{genai.ModalityAudio},
		SystemInstruction:  genai.NewContentFromText(systemInstruction, genai.RoleUser),
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
			},
		},
		InputAudioTranscription:  &genai.AudioTranscriptionConfig{},
		OutputAudioTranscription: &genai.AudioTranscriptionConfig{},
	}

	session, err := c.client.Live.Connect(ctx, liveModel, config)
	if err != nil {
		return nil, fmt.Errorf("gemini: live connect failed: %w", err)
	}
	return &liveSession{session: session}, nil
}

func (s *liveSession) SendAudio(chunk []byte) error {
	return s.session.SendRealtimeInput(genai.LiveRealtimeInput{
		Media: &genai.Blob{MIMEType: "audio/pcm;rate=16000", Data: chunk},
	})
}

func (s *liveSession) Receive() (*ai.LiveEvent, error) {
	msg, err := s.session.Receive()
	if err != nil {
		return nil, err
	}

	event := &ai.LiveEvent{}
	content := msg.ServerContent
	if content == nil {
		return event, nil
	}
	event.TurnComplete = content.TurnComplete
	event.Interrupted = content.Interrupted
	if content.InputTranscription != nil {
		event.InputTranscript = content.InputTranscription.Text
	}
	if content.OutputTranscription != nil {
		event.OutputTranscript = content.OutputTranscription.Text
	}
	if content.ModelTurn != nil {
		for _, part := range content.ModelTurn.Parts {
			if part.InlineData != nil {
				event.AudioChunk = append(event.AudioChunk, part.InlineData.Data...)
			}
		}
	}
	return event, nil
}

func (s *liveSession) Close() error {
	return s.session.Close()
}

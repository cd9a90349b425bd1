package websocket

import (
	"context"
	"encoding/json"

	"braik-ai-be/internal/pkg/logger"
	"braik-ai-be/pkg/ai"

	"github.com/gofiber/websocket/v2"
)

const voiceName = "Puck"

const voiceInstruction = `Sei Braik, l'assistente vocale per il business dell'utente. Rispondi in italiano, in modo breve e naturale, come in una conversazione telefonica.`

type voiceEvent struct {
	Type       string `json:"type"`
	Transcript string `json:"transcript,omitempty"`
	Message    string `json:"message,omitempty"`
}

// ServeVoice bridges one websocket connection to a live audio session:
// binary frames from the client are raw PCM chunks forwarded to the
// model, binary frames to the client are the model's audio, and text
// frames carry transcripts and turn markers as JSON.
func ServeVoice(conn *websocket.Conn, gateway ai.Gateway, log logger.ILogger) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	session, err := gateway.ConnectLive(ctx, voiceInstruction, voiceName)
	if err != nil {
		log.Warn("Voice", "failed to open live session", map[string]interface{}{"error": err.Error()})
		payload, _ := json.Marshal(voiceEvent{Type: "error", Message: "Servizio vocale non disponibile."})
		conn.WriteMessage(websocket.TextMessage, payload)
		conn.Close()
		return
	}
	defer session.Close()

	// Uplink: client microphone chunks to the model.
	go func() {
		defer cancel()
		for {
			msgType, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if msgType != websocket.BinaryMessage {
				continue
			}
			if err := session.SendAudio(data); err != nil {
				return
			}
		}
	}()

	// Downlink: model events back to the client.
	for {
		event, err := session.Receive()
		if err != nil {
			break
		}
		if len(event.AudioChunk) > 0 {
			if err := conn.WriteMessage(websocket.BinaryMessage, event.AudioChunk); err != nil {
				break
			}
		}
		if event.InputTranscript != "" {
			writeVoiceEvent(conn, voiceEvent{Type: "input_transcript", Transcript: event.InputTranscript})
		}
		if event.OutputTranscript != "" {
			writeVoiceEvent(conn, voiceEvent{Type: "output_transcript", Transcript: event.OutputTranscript})
		}
		if event.Interrupted {
			writeVoiceEvent(conn, voiceEvent{Type: "interrupted"})
		}
		if event.TurnComplete {
			writeVoiceEvent(conn, voiceEvent{Type: "turn_complete"})
		}
	}

	conn.Close()
}

func writeVoiceEvent(conn *websocket.Conn, event voiceEvent) {
	payload, _ := json.Marshal(event)
	conn.WriteMessage(websocket.TextMessage, payload)
}

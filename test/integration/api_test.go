package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"braik-ai-be/internal/bootstrap"
	"braik-ai-be/internal/config"
	"braik-ai-be/internal/dto"
	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	os.Setenv("JWT_SECRET", "default_secret")
	os.Setenv("STORE_BACKEND", "memory")
	os.Setenv("GOOGLE_GEMINI_API_KEY", "")
	os.Setenv("NATS_URL", "nats://localhost:14222")
	os.Setenv("REDIS_URL", "redis://localhost:16379")

	cfg := config.Load()
	container := bootstrap.NewContainer(cfg)
	return server.New(cfg, container).GetApp()
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp.StatusCode, env
}

func TestAPI_AuthFlow(t *testing.T) {
	app := newTestApp(t)

	register := dto.RegisterRequest{
		Name: "Alice", CompanyName: "Pasticceria", Email: "alice@example.com", Password: "pw123456",
	}

	status, env := doJSON(t, app, http.MethodPost, "/api/auth/register", "", register)
	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)

	var auth dto.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	require.NotEmpty(t, auth.Token)
	assert.Equal(t, 999, auth.Trial.DaysLeft)

	t.Run("duplicate registration conflicts", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodPost, "/api/auth/register", "", register)
		assert.Equal(t, http.StatusConflict, status)
		assert.False(t, env.Success)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
			Email: "alice@example.com", Password: "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("protected routes reject missing tokens", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/entries/", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("me returns the profile", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodGet, "/api/auth/me", auth.Token, nil)
		require.Equal(t, http.StatusOK, status)
		var profile dto.ProfileResponse
		require.NoError(t, json.Unmarshal(env.Data, &profile))
		assert.Equal(t, "Pasticceria", profile.Profile.CompanyName)
	})
}

func TestAPI_EntriesAndCalendarProjection(t *testing.T) {
	app := newTestApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "pw123456",
	})
	var auth dto.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &auth))

	status, env := doJSON(t, app, http.MethodPost, "/api/entries/", auth.Token, dto.SaveEntryRequest{
		Type: "appointment", Title: "Meeting", Content: "Con Rossi", Date: "2024-02-01",
	})
	require.Equal(t, http.StatusOK, status)

	var saved entity.BusinessEntry
	require.NoError(t, json.Unmarshal(env.Data, &saved))
	require.NotEmpty(t, saved.Id)

	t.Run("projection carries the synthetic event", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodGet, "/api/calendar/", auth.Token, nil)
		require.Equal(t, http.StatusOK, status)

		var calendar dto.CalendarResponse
		require.NoError(t, json.Unmarshal(env.Data, &calendar))
		require.Len(t, calendar.Events, 1)
		event := calendar.Events[0]
		assert.Equal(t, "kb-"+saved.Id, event.Id)
		assert.Equal(t, "Meeting", event.Title)
		assert.Equal(t, "2024-02-01", event.Date)
		assert.Equal(t, "09:00", event.Time)
		assert.Equal(t, 60, event.Duration)
		assert.True(t, event.IsAIRelated)
	})

	t.Run("reserved event id is rejected", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPost, "/api/calendar/events", auth.Token, dto.CreateEventRequest{
			Id: "kb-fake", Title: "x", Date: "2024-02-01",
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("unknown entry type is rejected", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPost, "/api/entries/", auth.Token, dto.SaveEntryRequest{
			Type: "ricetta", Title: "x", Content: "y",
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("deleting the entry empties the projection", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodDelete, "/api/entries/"+saved.Id, auth.Token, nil)
		require.Equal(t, http.StatusOK, status)

		_, env := doJSON(t, app, http.MethodGet, "/api/calendar/", auth.Token, nil)
		var calendar dto.CalendarResponse
		require.NoError(t, json.Unmarshal(env.Data, &calendar))
		assert.Empty(t, calendar.Events)
	})
}

func TestAPI_ChatWithDisabledGateway(t *testing.T) {
	app := newTestApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "pw123456",
	})
	var auth dto.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &auth))

	// Without an API key the gateway is disabled: the turn still
	// completes with the fallback reply and the user message survives.
	status, env := doJSON(t, app, http.MethodPost, "/api/chat/query", auth.Token, dto.ChatQueryRequest{
		Query: "chi è il mio fornitore?",
	})
	require.Equal(t, http.StatusOK, status)

	var res dto.ChatQueryResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Contains(t, res.Message.Content, "Errore di connessione")

	status, env = doJSON(t, app, http.MethodGet, "/api/chat/history", auth.Token, nil)
	require.Equal(t, http.StatusOK, status)

	var history dto.HistoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &history))
	require.Len(t, history.Messages, 2)
	assert.Equal(t, "chi è il mio fornitore?", history.Messages[0].Content)
}

func TestAPI_TrialGate(t *testing.T) {
	app := newTestApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/api/auth/trial", "", nil)
	var auth dto.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	assert.True(t, auth.Profile.IsTrial)
	assert.Equal(t, 7, auth.Trial.DaysLeft)

	t.Run("fresh trial can use AI endpoints", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPost, "/api/chat/query", auth.Token, dto.ChatQueryRequest{Query: "ciao"})
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("data endpoints work regardless", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodGet, "/api/entries/", auth.Token, nil)
		assert.Equal(t, http.StatusOK, status)
	})
}

func TestAPI_GatewayUnavailableIs503(t *testing.T) {
	app := newTestApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "pw123456",
	})
	var auth dto.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &auth))

	// These endpoints cannot degrade to a fallback message: with the
	// gateway disabled they must answer 503, not a generic 500.
	t.Run("weekly strategy", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodPost, "/api/strategy/weekly", auth.Token, nil)
		assert.Equal(t, http.StatusServiceUnavailable, status)
		assert.Contains(t, env.Message, "intelligenza centrale")
	})

	t.Run("document scan", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPost, "/api/entries/scan", auth.Token, dto.ScanDocumentRequest{
			ImageBase64: "aW1hZ2U=",
		})
		assert.Equal(t, http.StatusServiceUnavailable, status)
	})
}

func TestAPI_WhatsAppSimulation(t *testing.T) {
	app := newTestApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "pw123456",
	})
	var auth dto.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &auth))

	status, env := doJSON(t, app, http.MethodPost, "/api/whatsapp/pair", auth.Token, nil)
	require.Equal(t, http.StatusOK, status)

	var pair dto.WhatsAppPairResponse
	require.NoError(t, json.Unmarshal(env.Data, &pair))
	assert.Regexp(t, `^1@`, pair.PairingToken)
	assert.True(t, pair.Settings.IsConnected)

	t.Run("simulation falls back when the gateway is disabled", func(t *testing.T) {
		status, env := doJSON(t, app, http.MethodPost, "/api/whatsapp/simulate", auth.Token, dto.SimulateMessageRequest{
			Message: "siete aperti domani?",
		})
		require.Equal(t, http.StatusOK, status)

		var res dto.SimulateMessageResponse
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.NotEmpty(t, res.Reply)
	})
}

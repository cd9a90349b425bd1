package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"braik-ai-be/internal/entity"
	"braik-ai-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const clusterChannel = "braik_cluster_events"

// Hub tracks connected clients per user email and pushes guardian
// alerts to them. With Redis configured, pushes also fan out to the
// other instances of the cluster.
type Hub struct {
	// email -> connected clients (multi-device)
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.Email] = append(h.clients[client.Email], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"email": client.Email})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.Email]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.Email] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.Email]) == 0 {
					delete(h.clients, client.Email)
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyAlerts pushes fresh guardian alerts to every device of the
// user. Delivery is best effort: a slow client is dropped, an absent
// one is skipped.
func (h *Hub) NotifyAlerts(email string, alerts []entity.GuardianAlert) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "guardian_alerts",
		"data": alerts,
	})

	h.sendLocal(email, data)

	if h.rdb != nil {
		payload, _ := json.Marshal(map[string]interface{}{
			"target_email": email,
			"message":      json.RawMessage(data),
		})
		h.rdb.Publish(context.Background(), clusterChannel, payload)
	}
}

func (h *Hub) sendLocal(email string, data []byte) {
	h.mu.RLock()
	clients := h.clients[email]
	h.mu.RUnlock()

	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			// The unregister branch owns closing Send; closing it here
			// too would close the channel twice.
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"email": email})
			h.unregister <- client
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			TargetEmail string          `json:"target_email"`
			Message     json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "Malformed cluster event", map[string]interface{}{"error": err.Error()})
			continue
		}
		h.sendLocal(payload.TargetEmail, payload.Message)
	}
}

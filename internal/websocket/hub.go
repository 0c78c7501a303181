package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"mrvl-backend/internal/logger"
	"mrvl-backend/internal/models"
	"mrvl-backend/internal/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans live score updates out to websocket clients. One Redis
// subscription on live:scores feeds every connection; each connection can
// filter to a single match via the match_id query param.
type Hub struct {
	mu          sync.RWMutex
	connections map[*websocket.Conn]uuid.UUID // uuid.Nil means all matches
	redisClient *redis.Client
}

func NewHub(redisClient *redis.Client) *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]uuid.UUID),
		redisClient: redisClient,
	}
}

// Run consumes the pub/sub channel until ctx is cancelled. Call it once,
// from main.
func (h *Hub) Run(ctx context.Context) {
	pubsub := h.redisClient.Subscribe(ctx, services.LiveScoresChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.broadcast([]byte(msg.Payload))
		}
	}
}

// HandleWebSocket upgrades the connection. Live scores are public; there is
// no auth, only an optional match filter.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	filter := uuid.Nil
	if raw := r.URL.Query().Get("match_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "Invalid match_id", http.StatusBadRequest)
			return
		}
		filter = parsed
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.L.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	h.register(conn, filter)

	go func() {
		defer h.unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}

func (h *Hub) register(conn *websocket.Conn, filter uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[conn] = filter
	logger.L.WithField("connections", len(h.connections)).Debug("WebSocket connected")
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conn.Close()
	delete(h.connections, conn)
}

func (h *Hub) broadcast(payload []byte) {
	var update models.ScoreUpdate
	if err := json.Unmarshal(payload, &update); err != nil {
		logger.L.WithError(err).Error("Malformed score update on pub/sub channel")
		return
	}

	h.mu.RLock()
	targets := make([]*websocket.Conn, 0, len(h.connections))
	for conn, filter := range h.connections {
		if filter == uuid.Nil || filter == update.MatchID {
			targets = append(targets, conn)
		}
	}
	h.mu.RUnlock()

	for _, conn := range targets {
		if err := conn.WriteJSON(update); err != nil {
			h.unregister(conn)
		}
	}
}

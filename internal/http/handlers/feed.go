package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"delivery-dispatch/internal/feed"
	"delivery-dispatch/internal/logx"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
)

type subscriber interface {
	Subscribe(topic string) *feed.Subscription
}

// FeedHandler streams change feed events over a WebSocket.
type FeedHandler struct {
	hub      subscriber
	logger   logx.Logger
	upgrader websocket.Upgrader
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(logger logx.Logger, hub subscriber) *FeedHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &FeedHandler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Stream handles GET /ws/feed?topic=. The topic is validated before the upgrade.
func (h *FeedHandler) Stream(w http.ResponseWriter, r *http.Request) {
	topic := r.URL.Query().Get("topic")
	if !feed.ValidTopic(topic) {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid topic")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		h.logger.Warn("websocket upgrade failed", logx.String("topic", topic), logx.Err(err))
		return
	}
	defer conn.Close()

	sub := h.hub.Subscribe(topic)
	defer sub.Close()

	log := h.logger.With(logx.String("topic", topic), logx.String("req_id", reqID(r.Context())))
	log.Info("feed subscriber connected")
	defer log.Info("feed subscriber disconnected")

	// читаем только ради pong и close от клиента
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-done:
			return
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(ev); err != nil {
				log.Debug("feed write failed", logx.Err(err))
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

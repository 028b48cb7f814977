// Package feed fans committed state changes out to live subscribers.
//
// Delivery is at-most-once: publishing never blocks, and an event that does
// not fit into a subscriber's buffer is dropped for that subscriber. Events
// published on one topic reach every subscriber in publish order.
package feed

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/metrics"
)

// EventType names what changed.
type EventType string

// List of event types.
const (
	OrderUpdated        EventType = "order.updated"
	NotificationCreated EventType = "notification.created"
	ResourceUpdated     EventType = "resource.updated"
)

// Event is one change feed message.
type Event struct {
	ID      string    `json:"id"`
	Topic   string    `json:"topic"`
	Type    EventType `json:"type"`
	Payload any       `json:"payload"`
	At      time.Time `json:"at"`
}

// Sink receives a copy of every published event, e.g. to mirror the feed to a broker.
// Publish is called under the hub lock, in publish order, and must not block.
type Sink interface {
	Publish(ctx context.Context, e Event) error
}

// DefaultBuffer is the per-subscriber buffer used when none is configured.
const DefaultBuffer = 64

// Hub is an in-process topic fan-out. It is safe for concurrent use.
type Hub struct {
	mu     sync.Mutex
	subs   map[string]map[uint64]*Subscription
	nextID uint64

	buffer  int
	sink    Sink
	metrics *metrics.Dispatch
	logger  logx.Logger
	now     func() time.Time
}

// NewHub creates a Hub. sink and m may be nil.
func NewHub(buffer int, logger logx.Logger, m *metrics.Dispatch, sink Sink) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Hub{
		subs:    make(map[string]map[uint64]*Subscription),
		buffer:  buffer,
		sink:    sink,
		metrics: m,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Subscription receives the events of one topic until Close is called.
type Subscription struct {
	hub   *Hub
	topic string
	id    uint64
	ch    chan Event
	once  sync.Once
}

// Events returns the receive channel. It is closed by Close.
func (s *Subscription) Events() <-chan Event { return s.ch }

// Topic returns the subscribed topic.
func (s *Subscription) Topic() string { return s.topic }

// Close detaches the subscription and closes its channel. It is idempotent.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()
		if byID, ok := s.hub.subs[s.topic]; ok {
			delete(byID, s.id)
			if len(byID) == 0 {
				delete(s.hub.subs, s.topic)
			}
		}
		close(s.ch)
	})
}

// Subscribe attaches a new subscriber to topic.
func (h *Hub) Subscribe(topic string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &Subscription{hub: h, topic: topic, id: h.nextID, ch: make(chan Event, h.buffer)}
	byID, ok := h.subs[topic]
	if !ok {
		byID = make(map[uint64]*Subscription)
		h.subs[topic] = byID
	}
	byID[sub.id] = sub
	return sub
}

// Subscribers returns the number of live subscribers of topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[topic])
}

// Stats returns the live subscriber count per topic.
func (h *Hub) Stats() map[string]int {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make(map[string]int, len(h.subs))
	for topic, byID := range h.subs {
		out[topic] = len(byID)
	}
	return out
}

// Publish delivers an event to every subscriber of topic and returns it.
func (h *Hub) Publish(ctx context.Context, topic string, typ EventType, payload any) Event {
	e := Event{
		ID:      uuid.NewString(),
		Topic:   topic,
		Type:    typ,
		Payload: payload,
		At:      h.now(),
	}

	h.mu.Lock()
	for _, sub := range h.subs[topic] {
		select {
		case sub.ch <- e:
		default:
			h.metrics.FeedEventDropped()
			h.logger.Warn("feed subscriber too slow, event dropped",
				logx.String("topic", topic),
				logx.String("type", string(typ)),
			)
		}
	}
	var sinkErr error
	if h.sink != nil {
		sinkErr = h.sink.Publish(ctx, e)
	}
	h.mu.Unlock()

	if sinkErr != nil {
		h.logger.Warn("feed sink publish failed",
			logx.String("topic", topic),
			logx.String("event_id", e.ID),
			logx.Err(sinkErr),
		)
	}
	return e
}

// PublishMany publishes the same payload once on each distinct topic.
func (h *Hub) PublishMany(ctx context.Context, topics []string, typ EventType, payload any) {
	seen := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		if _, dup := seen[t]; dup || t == "" {
			continue
		}
		seen[t] = struct{}{}
		h.Publish(ctx, t, typ, payload)
	}
}

// ValidTopic reports whether topic is admin-room, driver:<id> or customer:<id>.
func ValidTopic(topic string) bool {
	if topic == domain.TopicAdminRoom {
		return true
	}
	role, rawID, ok := strings.Cut(topic, ":")
	if !ok {
		return false
	}
	if domain.Role(role) != domain.RoleDriver && domain.Role(role) != domain.RoleCustomer {
		return false
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	return err == nil && id > 0
}

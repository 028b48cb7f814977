package kafka

import (
	"strings"
	"time"

	"delivery-dispatch/internal/service/orders"
)

// EventDTO is the wire form of an order status event
type EventDTO struct {
	OrderID   int64     `json:"order_id"`
	Status    string    `json:"status"`
	ActorRole string    `json:"actor_role"`
	ActorID   int64     `json:"actor_id"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToDomain converts EventDTO to orders.Event
func ToDomain(dto EventDTO) orders.Event {
	return orders.Event{
		OrderID:   dto.OrderID,
		Status:    strings.TrimSpace(dto.Status),
		ActorRole: strings.ToLower(strings.TrimSpace(dto.ActorRole)),
		ActorID:   dto.ActorID,
		Reason:    strings.TrimSpace(dto.Reason),
		CreatedAt: dto.CreatedAt,
	}
}

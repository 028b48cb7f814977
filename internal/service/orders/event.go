package orders

import (
	"time"
)

// Event is a single order status event sent by a driver app or an admin tool
type Event struct {
	OrderID   int64     `json:"order_id"`
	Status    string    `json:"status"`
	ActorRole string    `json:"actor_role"`
	ActorID   int64     `json:"actor_id"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

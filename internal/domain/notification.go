package domain

import (
	"strconv"
	"time"
)

type (
	// Role identifies which inbox a user id belongs to.
	Role string
	// NotificationType is the kind of state change a notification reports.
	NotificationType string
	// Priority orders notifications in the client.
	Priority string
)

// List of roles.
const (
	RoleAdmin    Role = "admin"
	RoleDriver   Role = "driver"
	RoleCustomer Role = "customer"
)

// List of notification types.
const (
	NotifyOrderCreated      NotificationType = "order_created"
	NotifyDriverAssigned    NotificationType = "driver_assigned"
	NotifyOrderOnRoute      NotificationType = "order_on_route"
	NotifyOrderPickedUp     NotificationType = "order_picked_up"
	NotifyDeliveryCompleted NotificationType = "delivery_completed"
	NotifyPaymentReceived   NotificationType = "payment_received"
	NotifyOrderCancelled    NotificationType = "order_cancelled"
)

// List of priorities.
const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// Valid checks if the Role is valid
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDriver, RoleCustomer:
		return true
	}
	return false
}

// Valid checks if the NotificationType is valid
func (t NotificationType) Valid() bool {
	switch t {
	case NotifyOrderCreated, NotifyDriverAssigned, NotifyOrderOnRoute, NotifyOrderPickedUp,
		NotifyDeliveryCompleted, NotifyPaymentReceived, NotifyOrderCancelled:
		return true
	}
	return false
}

// Valid checks if the Priority is valid
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	}
	return false
}

// Notification is one inbox entry.
type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id"`
	Role      Role             `json:"role"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Payload   map[string]any   `json:"payload,omitempty"`
	Priority  Priority         `json:"priority"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
	ReadAt    *time.Time       `json:"read_at,omitempty"`
}

// Topic returns the change feed topic of a user inbox.
func Topic(role Role, userID int64) string {
	if role == RoleAdmin {
		return TopicAdminRoom
	}
	return string(role) + ":" + strconv.FormatInt(userID, 10)
}

// TopicAdminRoom is shared by all administrators.
const TopicAdminRoom = "admin-room"

// OrderTopics returns the feed topics interested in an order: the admin
// room, the customer and the assigned driver if any.
func OrderTopics(o *Order) []string {
	topics := []string{TopicAdminRoom, Topic(RoleCustomer, o.CustomerID)}
	if o.AssignedDriverID != nil {
		topics = append(topics, Topic(RoleDriver, *o.AssignedDriverID))
	}
	return topics
}

package domain

import (
	"strings"
	"time"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/geo"
)

// OrderStatus is the canonical lifecycle state of an order.
type OrderStatus string

// Canonical order statuses.
const (
	OrderPending   OrderStatus = "pending"
	OrderAssigned  OrderStatus = "assigned"
	OrderOnRoute   OrderStatus = "on-route"
	OrderPickedUp  OrderStatus = "picked-up"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// allowedTransitions is the order state machine. Cancellation is only
// possible before the package is picked up.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:  {OrderAssigned, OrderCancelled},
	OrderAssigned: {OrderOnRoute, OrderCancelled},
	OrderOnRoute:  {OrderPickedUp, OrderCancelled},
	OrderPickedUp: {OrderDelivered},
}

// legacy spellings still sent by older clients
var statusAliases = map[string]OrderStatus{
	"in-transit": OrderOnRoute,
	"in_transit": OrderOnRoute,
	"on_route":   OrderOnRoute,
	"picked_up":  OrderPickedUp,
	"canceled":   OrderCancelled,
	"completed":  OrderDelivered,
}

// Valid checks if the OrderStatus is canonical.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderAssigned, OrderOnRoute, OrderPickedUp, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are possible.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// Bound reports whether an order in this status holds a driver and a vehicle.
func (s OrderStatus) Bound() bool {
	return s == OrderAssigned || s == OrderOnRoute || s == OrderPickedUp
}

// ParseOrderStatus normalizes canonical and legacy status spellings.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if st := OrderStatus(s); st.Valid() {
		return st, true
	}
	st, ok := statusAliases[s]
	return st, ok
}

// CanTransition reports whether the state machine allows from -> to.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Price is the fare split in whole currency units.
// DriverPayment + VehicleCharge always equals Total.
type Price struct {
	Total         int64 `json:"total"`
	DriverPayment int64 `json:"driver_payment"`
	VehicleCharge int64 `json:"vehicle_charge"`
}

// AssignmentSnapshot keeps the driver and vehicle details shown to the
// customer as they were at assignment time.
type AssignmentSnapshot struct {
	DriverName    string `json:"driver_name,omitempty"`
	DriverPhone   string `json:"driver_phone,omitempty"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
}

// Order is a customer delivery request.
type Order struct {
	ID                 int64              `json:"id"`
	CustomerID         int64              `json:"customer_id"`
	PickupAddress      string             `json:"pickup_address"`
	DropAddress        string             `json:"drop_address"`
	Pickup             *geo.Point         `json:"pickup,omitempty"`
	Drop               *geo.Point         `json:"drop,omitempty"`
	PackageWeightKg    float64            `json:"package_weight_kg"`
	PackageDescription string             `json:"package_description,omitempty"`
	VehicleClass       VehicleClass       `json:"vehicle_class"`
	DistanceKm         float64            `json:"distance_km"`
	Price              Price              `json:"price"`
	Status             OrderStatus        `json:"status"`
	AssignedDriverID   *int64             `json:"assigned_driver_id,omitempty"`
	AssignedVehicleID  *int64             `json:"assigned_vehicle_id,omitempty"`
	Snapshot           AssignmentSnapshot `json:"assignment"`
	CreatedAt          time.Time          `json:"created_at"`
	AssignedAt         *time.Time         `json:"assigned_at,omitempty"`
	OnRouteAt          *time.Time         `json:"on_route_at,omitempty"`
	PickedUpAt         *time.Time         `json:"picked_up_at,omitempty"`
	DeliveredAt        *time.Time         `json:"delivered_at,omitempty"`
	CancelledAt        *time.Time         `json:"cancelled_at,omitempty"`
	CancelReason       string             `json:"cancel_reason,omitempty"`
	Rating             *int               `json:"rating,omitempty"`
	Feedback           string             `json:"feedback,omitempty"`
	Version            int64              `json:"version"`
}

// Transition moves the order to the given status, stamps the matching
// timestamp and bumps Version. Disallowed moves leave the order untouched.
func (o *Order) Transition(to OrderStatus, at time.Time) error {
	if !CanTransition(o.Status, to) {
		return &apperr.InvalidTransitionError{From: string(o.Status), To: string(to)}
	}
	ts := at
	switch to {
	case OrderAssigned:
		o.AssignedAt = &ts
	case OrderOnRoute:
		o.OnRouteAt = &ts
	case OrderPickedUp:
		o.PickedUpAt = &ts
	case OrderDelivered:
		o.DeliveredAt = &ts
	case OrderCancelled:
		o.CancelledAt = &ts
	}
	o.Status = to
	o.Version++
	return nil
}

// IsAssignedTo reports whether the driver is bound to this order.
func (o *Order) IsAssignedTo(driverID int64) bool {
	return o.AssignedDriverID != nil && *o.AssignedDriverID == driverID
}

// Rate records customer feedback. Only delivered orders can be rated, once.
func (o *Order) Rate(rating int, feedback string) error {
	if rating < 1 || rating > 5 {
		return apperr.Reasonf(apperr.Invalid, "rating must be between 1 and 5")
	}
	if o.Status != OrderDelivered {
		return apperr.Reasonf(apperr.Conflict, "order %d is %s, only delivered orders can be rated", o.ID, o.Status)
	}
	if o.Rating != nil {
		return apperr.Reasonf(apperr.Conflict, "order %d is already rated", o.ID)
	}
	r := rating
	o.Rating = &r
	o.Feedback = strings.TrimSpace(feedback)
	o.Version++
	return nil
}

// OrderEvent is one entry of an order's status history.
type OrderEvent struct {
	ID        int64       `json:"id"`
	OrderID   int64       `json:"order_id"`
	From      OrderStatus `json:"from,omitempty"`
	To        OrderStatus `json:"to"`
	ActorRole Role        `json:"actor_role"`
	ActorID   int64       `json:"actor_id"`
	At        time.Time   `json:"at"`
}

// OrderFilter narrows an order listing. Nil fields are ignored.
type OrderFilter struct {
	CustomerID *int64
	DriverID   *int64
	Status     *OrderStatus
	Limit      int
	Offset     int
}

// Matches reports whether the order passes the filter, ignoring paging.
func (f OrderFilter) Matches(o *Order) bool {
	if f.CustomerID != nil && o.CustomerID != *f.CustomerID {
		return false
	}
	if f.DriverID != nil && !o.IsAssignedTo(*f.DriverID) {
		return false
	}
	if f.Status != nil && o.Status != *f.Status {
		return false
	}
	return true
}

// Quote is a priced trip estimate.
type Quote struct {
	Class         VehicleClass   `json:"vehicle_class"`
	DistanceKm    float64        `json:"distance_km"`
	Total         int64          `json:"total"`
	DriverPayment int64          `json:"driver_payment"`
	VehicleCharge int64          `json:"vehicle_charge"`
	Breakdown     QuoteBreakdown `json:"breakdown"`
}

// QuoteBreakdown explains how the total was reached.
type QuoteBreakdown struct {
	BaseFare       int64   `json:"base_fare"`
	PerKm          int64   `json:"per_km"`
	DistanceCharge float64 `json:"distance_charge"`
	MinimumCharge  int64   `json:"minimum_charge"`
	MinimumApplied bool    `json:"minimum_applied"`
}

// Price returns the fare split carried by the quote.
func (q Quote) Price() Price {
	return Price{Total: q.Total, DriverPayment: q.DriverPayment, VehicleCharge: q.VehicleCharge}
}

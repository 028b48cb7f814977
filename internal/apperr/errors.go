package apperr

import (
	"errors"
	"fmt"
)

// Category sentinels. Typed errors below report one of them through Is,
// so callers map to transport codes with errors.Is alone.
var (
	Invalid  = errors.New("invalid input")
	Conflict = errors.New("conflict")
	NotFound = errors.New("not found")
)

// InvalidCoordinateError reports a latitude/longitude outside the valid range.
type InvalidCoordinateError struct {
	Lat, Lng float64
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate (%g, %g): latitude must be within ±90 and longitude within ±180", e.Lat, e.Lng)
}

// Is maps the error to the Invalid category.
func (e *InvalidCoordinateError) Is(target error) bool { return target == Invalid }

// UnknownVehicleClassError reports a class missing from the rate table.
type UnknownVehicleClassError struct {
	Class string
}

func (e *UnknownVehicleClassError) Error() string {
	return fmt.Sprintf("unknown vehicle class %q", e.Class)
}

// Is maps the error to the Invalid category.
func (e *UnknownVehicleClassError) Is(target error) bool { return target == Invalid }

// OrderNotFoundError reports a missing order.
type OrderNotFoundError struct {
	ID int64
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("order %d not found", e.ID)
}

// Is maps the error to the NotFound category.
func (e *OrderNotFoundError) Is(target error) bool { return target == NotFound }

// OrderNotPendingError is returned when assignment is attempted on an order
// that already left the pending state.
type OrderNotPendingError struct {
	ID     int64
	Status string
}

func (e *OrderNotPendingError) Error() string {
	return fmt.Sprintf("order %d is %s, only pending orders can be assigned", e.ID, e.Status)
}

// Is maps the error to the Conflict category.
func (e *OrderNotPendingError) Is(target error) bool { return target == Conflict }

// ResourceUnavailableError names the driver or vehicle that could not be reserved.
type ResourceUnavailableError struct {
	Resource string
	ID       int64
	Status   string
}

func (e *ResourceUnavailableError) Error() string {
	return fmt.Sprintf("%s %d is not available (%s), refresh and retry", e.Resource, e.ID, e.Status)
}

// Is maps the error to the Conflict category.
func (e *ResourceUnavailableError) Is(target error) bool { return target == Conflict }

// InvalidTransitionError reports a lifecycle move the state machine does not allow.
type InvalidTransitionError struct {
	From, To string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %s to %s", e.From, e.To)
}

// Is maps the error to the Conflict category.
func (e *InvalidTransitionError) Is(target error) bool { return target == Conflict }

// NotificationTargetUnknownError reports a notification addressed to nobody.
type NotificationTargetUnknownError struct {
	UserID int64
	Role   string
}

func (e *NotificationTargetUnknownError) Error() string {
	return fmt.Sprintf("unknown notification target %s/%d", e.Role, e.UserID)
}

// Is maps the error to the Invalid category.
func (e *NotificationTargetUnknownError) Is(target error) bool { return target == Invalid }

// Reasonf wraps a category sentinel with a human readable reason.
// errors.Is still matches the category.
func Reasonf(category error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), category)
}

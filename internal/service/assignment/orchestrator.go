// Package assignment binds pending orders to a driver and a vehicle and
// finishes or cancels them, releasing the resources in the same transaction.
package assignment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/feed"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/metrics"
	"delivery-dispatch/internal/ports/storetx"
	"delivery-dispatch/internal/service/notification"
	"delivery-dispatch/internal/service/registry"
)

// Orchestrator - service for assigning orders to drivers and vehicles.
type Orchestrator struct {
	tx               storetx.Runner
	pricing          pricer
	notify           notifier
	feed             publisher
	metrics          *metrics.Dispatch
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time
}

// NewOrchestrator - creates a new Orchestrator. notify, pub and m may be nil.
func NewOrchestrator(
	tx storetx.Runner,
	p pricer,
	notify notifier,
	pub publisher,
	timeout time.Duration,
	logger logx.Logger,
	m *metrics.Dispatch,
) *Orchestrator {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Orchestrator{
		tx:               tx,
		pricing:          p,
		notify:           notify,
		feed:             pub,
		metrics:          m,
		logger:           logger,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Orchestrator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// AssignCommand is an operator decision to give an order to a driver and vehicle.
type AssignCommand struct {
	OrderID   int64
	DriverID  int64
	VehicleID int64
	AdminID   int64
}

// Assign reserves the driver and vehicle and moves the order to assigned,
// all in one transaction. A busy resource is reported as
// ResourceUnavailableError and nothing is changed; there is no retry.
func (s *Orchestrator) Assign(ctx context.Context, cmd AssignCommand) (*domain.Order, error) {
	if cmd.OrderID <= 0 || cmd.DriverID <= 0 || cmd.VehicleID <= 0 || cmd.AdminID <= 0 {
		s.metrics.AssignmentResult("invalid")
		return nil, apperr.Reasonf(apperr.Invalid, "order, driver, vehicle and admin ids are required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		out     *domain.Order
		driver  *domain.Driver
		vehicle *domain.Vehicle
	)
	err := s.tx.WithTx(ctx, func(tx storetx.Repository) error {
		o, err := tx.GetOrderForUpdate(ctx, cmd.OrderID)
		if err != nil {
			return err
		}
		if o == nil {
			return &apperr.OrderNotFoundError{ID: cmd.OrderID}
		}
		if o.Status != domain.OrderPending {
			return &apperr.OrderNotPendingError{ID: o.ID, Status: string(o.Status)}
		}

		// lock driver then vehicle before looking at the vehicle
		if _, err := tx.GetDriverForUpdate(ctx, cmd.DriverID); err != nil {
			return err
		}
		v, err := tx.GetVehicleForUpdate(ctx, cmd.VehicleID)
		if err != nil {
			return err
		}
		if v != nil {
			if err := checkFits(o, v); err != nil {
				return err
			}
		}

		d, v, err := registry.Reserve(ctx, tx, cmd.DriverID, cmd.VehicleID, o.ID)
		if err != nil {
			return err
		}

		if v.OwnedBy(d.ID) {
			price, err := s.pricing.Resplit(o.VehicleClass, o.Price.Total, true)
			if err != nil {
				return err
			}
			o.Price = price
		}

		at := s.now()
		if err := o.Transition(domain.OrderAssigned, at); err != nil {
			return err
		}
		o.AssignedDriverID = &d.ID
		o.AssignedVehicleID = &v.ID
		o.Snapshot = domain.AssignmentSnapshot{
			DriverName:    d.Name,
			DriverPhone:   d.Phone,
			VehicleNumber: v.Number,
		}
		if err := tx.UpdateOrder(ctx, o); err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		if err := tx.AppendOrderEvent(ctx, &domain.OrderEvent{
			OrderID:   o.ID,
			From:      domain.OrderPending,
			To:        domain.OrderAssigned,
			ActorRole: domain.RoleAdmin,
			ActorID:   cmd.AdminID,
			At:        at,
		}); err != nil {
			return err
		}

		out, driver, vehicle = o, d, v
		return nil
	})
	s.metrics.AssignmentResult(resultLabel(err))
	if err != nil {
		s.logger.Info("assignment rejected",
			logx.Int64("order_id", cmd.OrderID),
			logx.Int64("driver_id", cmd.DriverID),
			logx.Int64("vehicle_id", cmd.VehicleID),
			logx.Err(err),
		)
		return nil, err
	}
	s.metrics.Transition(string(domain.OrderAssigned))

	s.logger.Info("order assigned",
		logx.String("event", "order_assigned"),
		logx.Int64("order_id", out.ID),
		logx.Int64("driver_id", driver.ID),
		logx.Int64("vehicle_id", vehicle.ID),
		logx.Int64("admin_id", cmd.AdminID),
		logx.Int64("driver_payment", out.Price.DriverPayment),
	)

	payload := map[string]any{
		"order_id":       out.ID,
		"driver_id":      driver.ID,
		"driver_name":    driver.Name,
		"driver_phone":   driver.Phone,
		"vehicle_number": vehicle.Number,
	}
	s.send(ctx, out.ID, notification.NotifyCommand{
		UserID:   driver.ID,
		Role:     domain.RoleDriver,
		Type:     domain.NotifyDriverAssigned,
		Title:    "New delivery",
		Message:  fmt.Sprintf("Order #%d: pick up at %s", out.ID, out.PickupAddress),
		Payload:  withPrice(payload, out.Price),
		Priority: domain.PriorityHigh,
	})
	s.send(ctx, out.ID, notification.NotifyCommand{
		UserID:  out.CustomerID,
		Role:    domain.RoleCustomer,
		Type:    domain.NotifyDriverAssigned,
		Message: fmt.Sprintf("Order #%d: %s (%s) is coming in %s", out.ID, driver.Name, driver.Phone, vehicle.Number),
		Payload: payload,
	})
	s.publish(ctx, out)
	s.announce(ctx, driver.ID, string(driver.Status), vehicle.ID, string(vehicle.Status))
	return out, nil
}

func checkFits(o *domain.Order, v *domain.Vehicle) error {
	if v.Class != o.VehicleClass {
		return apperr.Reasonf(apperr.Invalid, "vehicle %d is a %s, order %d needs a %s", v.ID, v.Class, o.ID, o.VehicleClass)
	}
	if v.CapacityKg < o.PackageWeightKg {
		return apperr.Reasonf(apperr.Invalid, "vehicle %d carries %g kg, package weighs %g kg", v.ID, v.CapacityKg, o.PackageWeightKg)
	}
	return nil
}

func resultLabel(err error) string {
	var (
		unavailable *apperr.ResourceUnavailableError
		notPending  *apperr.OrderNotPendingError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &unavailable):
		return "unavailable"
	case errors.As(err, &notPending):
		return "not_pending"
	case errors.Is(err, apperr.NotFound):
		return "not_found"
	case errors.Is(err, apperr.Invalid):
		return "invalid"
	default:
		return "error"
	}
}

// CompleteCommand is the assigned driver reporting a delivered package.
type CompleteCommand struct {
	OrderID  int64
	DriverID int64
}

// CompleteDelivery moves a picked-up order to delivered and frees its driver
// and vehicle in the same transaction.
func (s *Orchestrator) CompleteDelivery(ctx context.Context, cmd CompleteCommand) (*domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var out *domain.Order
	err := s.tx.WithTx(ctx, func(tx storetx.Repository) error {
		o, err := tx.GetOrderForUpdate(ctx, cmd.OrderID)
		if err != nil {
			return err
		}
		if o == nil {
			return &apperr.OrderNotFoundError{ID: cmd.OrderID}
		}
		if !domain.CanTransition(o.Status, domain.OrderDelivered) {
			return &apperr.InvalidTransitionError{From: string(o.Status), To: string(domain.OrderDelivered)}
		}
		if !o.IsAssignedTo(cmd.DriverID) {
			return apperr.Reasonf(apperr.Conflict, "order %d is not assigned to driver %d", o.ID, cmd.DriverID)
		}
		at := s.now()
		if err := o.Transition(domain.OrderDelivered, at); err != nil {
			return err
		}
		if err := registry.Release(ctx, tx, o.ID, o.AssignedDriverID, o.AssignedVehicleID); err != nil {
			return err
		}
		if err := tx.UpdateOrder(ctx, o); err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		if err := tx.AppendOrderEvent(ctx, &domain.OrderEvent{
			OrderID:   o.ID,
			From:      domain.OrderPickedUp,
			To:        domain.OrderDelivered,
			ActorRole: domain.RoleDriver,
			ActorID:   cmd.DriverID,
			At:        at,
		}); err != nil {
			return err
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.metrics.Transition(string(domain.OrderDelivered))

	s.logger.Info("order delivered",
		logx.String("event", "order_delivered"),
		logx.Int64("order_id", out.ID),
		logx.Int64("driver_id", cmd.DriverID),
		logx.Int64("total", out.Price.Total),
	)

	payload := map[string]any{"order_id": out.ID, "total": out.Price.Total}
	s.send(ctx, out.ID, notification.NotifyCommand{
		UserID:  out.CustomerID,
		Role:    domain.RoleCustomer,
		Type:    domain.NotifyDeliveryCompleted,
		Message: fmt.Sprintf("Order #%d was delivered to %s", out.ID, out.DropAddress),
		Payload: payload,
	})
	s.sendAdmins(ctx, out.ID, notification.NotifyCommand{
		Type:    domain.NotifyDeliveryCompleted,
		Message: fmt.Sprintf("Order #%d delivered by driver %d", out.ID, cmd.DriverID),
		Payload: payload,
	})
	s.send(ctx, out.ID, notification.NotifyCommand{
		UserID:   cmd.DriverID,
		Role:     domain.RoleDriver,
		Type:     domain.NotifyPaymentReceived,
		Message:  fmt.Sprintf("Order #%d: you earned %d", out.ID, out.Price.DriverPayment),
		Payload:  map[string]any{"order_id": out.ID, "driver_payment": out.Price.DriverPayment},
		Priority: domain.PriorityHigh,
	})
	s.publish(ctx, out)
	s.announce(ctx, cmd.DriverID, string(domain.DriverAvailable), *out.AssignedVehicleID, string(domain.VehicleAvailable))
	return out, nil
}

// CancelCommand cancels an order on behalf of an admin or its customer.
type CancelCommand struct {
	OrderID   int64
	ActorRole domain.Role
	ActorID   int64
	Reason    string
}

// Cancel cancels an order that has not been picked up yet. A bound driver and
// vehicle are released in the same transaction.
func (s *Orchestrator) Cancel(ctx context.Context, cmd CancelCommand) (*domain.Order, error) {
	if cmd.ActorRole != domain.RoleAdmin && cmd.ActorRole != domain.RoleCustomer {
		return nil, apperr.Reasonf(apperr.Invalid, "only an admin or the customer can cancel an order")
	}
	if cmd.ActorID <= 0 {
		return nil, apperr.Reasonf(apperr.Invalid, "invalid actor id")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		out   *domain.Order
		bound bool
	)
	err := s.tx.WithTx(ctx, func(tx storetx.Repository) error {
		o, err := tx.GetOrderForUpdate(ctx, cmd.OrderID)
		if err != nil {
			return err
		}
		if o == nil || (cmd.ActorRole == domain.RoleCustomer && o.CustomerID != cmd.ActorID) {
			return &apperr.OrderNotFoundError{ID: cmd.OrderID}
		}
		from := o.Status
		at := s.now()
		if err := o.Transition(domain.OrderCancelled, at); err != nil {
			return err
		}
		o.CancelReason = strings.TrimSpace(cmd.Reason)
		if from.Bound() {
			if err := registry.Release(ctx, tx, o.ID, o.AssignedDriverID, o.AssignedVehicleID); err != nil {
				return err
			}
			bound = true
		}
		if err := tx.UpdateOrder(ctx, o); err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		if err := tx.AppendOrderEvent(ctx, &domain.OrderEvent{
			OrderID:   o.ID,
			From:      from,
			To:        domain.OrderCancelled,
			ActorRole: cmd.ActorRole,
			ActorID:   cmd.ActorID,
			At:        at,
		}); err != nil {
			return err
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.metrics.Transition(string(domain.OrderCancelled))

	s.logger.Info("order cancelled",
		logx.String("event", "order_cancelled"),
		logx.Int64("order_id", out.ID),
		logx.String("actor_role", string(cmd.ActorRole)),
		logx.Int64("actor_id", cmd.ActorID),
		logx.Bool("released", bound),
	)

	msg := fmt.Sprintf("Order #%d was cancelled", out.ID)
	if out.CancelReason != "" {
		msg += ": " + out.CancelReason
	}
	payload := map[string]any{"order_id": out.ID, "reason": out.CancelReason, "cancelled_by": string(cmd.ActorRole)}
	s.send(ctx, out.ID, notification.NotifyCommand{
		UserID: out.CustomerID, Role: domain.RoleCustomer, Type: domain.NotifyOrderCancelled, Message: msg, Payload: payload,
	})
	if bound {
		s.send(ctx, out.ID, notification.NotifyCommand{
			UserID:   *out.AssignedDriverID,
			Role:     domain.RoleDriver,
			Type:     domain.NotifyOrderCancelled,
			Message:  msg,
			Payload:  payload,
			Priority: domain.PriorityHigh,
		})
	}
	s.sendAdmins(ctx, out.ID, notification.NotifyCommand{Type: domain.NotifyOrderCancelled, Message: msg, Payload: payload})
	s.publish(ctx, out)
	if bound {
		s.announce(ctx, *out.AssignedDriverID, string(domain.DriverAvailable), *out.AssignedVehicleID, string(domain.VehicleAvailable))
	}
	return out, nil
}

func withPrice(payload map[string]any, p domain.Price) map[string]any {
	out := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		out[k] = v
	}
	out["total"] = p.Total
	out["driver_payment"] = p.DriverPayment
	return out
}

// send delivers a notification after commit; failures do not undo the change.
func (s *Orchestrator) send(ctx context.Context, orderID int64, cmd notification.NotifyCommand) {
	if s.notify == nil {
		return
	}
	if _, err := s.notify.Notify(ctx, cmd); err != nil {
		s.logger.Warn("notification failed",
			logx.Int64("order_id", orderID),
			logx.String("type", string(cmd.Type)),
			logx.String("role", string(cmd.Role)),
			logx.Err(err),
		)
	}
}

func (s *Orchestrator) sendAdmins(ctx context.Context, orderID int64, cmd notification.NotifyCommand) {
	if s.notify == nil {
		return
	}
	if _, err := s.notify.NotifyAdmins(ctx, cmd); err != nil {
		s.logger.Warn("admin notification failed",
			logx.Int64("order_id", orderID),
			logx.String("type", string(cmd.Type)),
			logx.Err(err),
		)
	}
}

func (s *Orchestrator) publish(ctx context.Context, o *domain.Order) {
	if s.feed == nil {
		return
	}
	s.feed.PublishMany(ctx, domain.OrderTopics(o), feed.OrderUpdated, o)
}

func (s *Orchestrator) announce(ctx context.Context, driverID int64, driverStatus string, vehicleID int64, vehicleStatus string) {
	if s.feed == nil {
		return
	}
	room := []string{domain.TopicAdminRoom}
	s.feed.PublishMany(ctx, room, feed.ResourceUpdated, registry.ResourceChange{Resource: "driver", ID: driverID, Status: driverStatus})
	s.feed.PublishMany(ctx, room, feed.ResourceUpdated, registry.ResourceChange{Resource: "vehicle", ID: vehicleID, Status: vehicleStatus})
}

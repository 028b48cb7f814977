// Package lifecycle creates orders, serves them and moves them through the
// driver-side steps of the delivery state machine.
package lifecycle

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/feed"
	"delivery-dispatch/internal/geo"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/metrics"
	"delivery-dispatch/internal/ports/storetx"
	"delivery-dispatch/internal/service/notification"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Service owns order creation, reads and the driver-side transitions.
type Service struct {
	orders           orderReader
	tx               storetx.Runner
	pricing          pricer
	notify           notifier
	feed             publisher
	metrics          *metrics.Dispatch
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates a lifecycle Service. notify, pub and m may be nil.
func NewService(
	orders orderReader,
	tx storetx.Runner,
	p pricer,
	notify notifier,
	pub publisher,
	timeout time.Duration,
	logger logx.Logger,
	m *metrics.Dispatch,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		orders:           orders,
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

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// QuoteRequest prices a trip either from coordinates or from a known distance.
type QuoteRequest struct {
	Class      domain.VehicleClass
	Pickup     *geo.Point
	Drop       *geo.Point
	DistanceKm *float64
}

// Quote returns a price estimate. Coordinates win over an explicit distance.
func (s *Service) Quote(_ context.Context, req QuoteRequest) (domain.Quote, error) {
	switch {
	case req.Pickup != nil && req.Drop != nil:
		return s.pricing.QuoteTrip(req.Class, *req.Pickup, *req.Drop)
	case req.DistanceKm != nil:
		return s.pricing.Quote(req.Class, *req.DistanceKm, false)
	default:
		return domain.Quote{}, apperr.Reasonf(apperr.Invalid, "pickup and drop coordinates or a distance are required")
	}
}

// CreateCommand describes a new booking.
type CreateCommand struct {
	CustomerID         int64
	PickupAddress      string
	DropAddress        string
	Pickup             *geo.Point
	Drop               *geo.Point
	DistanceKm         *float64
	PackageWeightKg    float64
	PackageDescription string
	VehicleClass       domain.VehicleClass
}

func validateCreate(cmd *CreateCommand) error {
	if cmd.CustomerID <= 0 {
		return apperr.Reasonf(apperr.Invalid, "invalid customer id")
	}
	cmd.PickupAddress = strings.TrimSpace(cmd.PickupAddress)
	cmd.DropAddress = strings.TrimSpace(cmd.DropAddress)
	cmd.PackageDescription = strings.TrimSpace(cmd.PackageDescription)
	if cmd.PickupAddress == "" || cmd.DropAddress == "" {
		return apperr.Reasonf(apperr.Invalid, "pickup and drop addresses are required")
	}
	if math.IsNaN(cmd.PackageWeightKg) || math.IsInf(cmd.PackageWeightKg, 0) || cmd.PackageWeightKg <= 0 {
		return apperr.Reasonf(apperr.Invalid, "package weight must be positive")
	}
	if !cmd.VehicleClass.Valid() {
		return &apperr.UnknownVehicleClassError{Class: string(cmd.VehicleClass)}
	}
	if (cmd.Pickup == nil) != (cmd.Drop == nil) {
		return apperr.Reasonf(apperr.Invalid, "pickup and drop coordinates go together")
	}
	return nil
}

// Create prices and stores a new pending order, then tells the admins about it.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*domain.Order, error) {
	if err := validateCreate(&cmd); err != nil {
		return nil, err
	}
	quote, err := s.Quote(ctx, QuoteRequest{
		Class:      cmd.VehicleClass,
		Pickup:     cmd.Pickup,
		Drop:       cmd.Drop,
		DistanceKm: cmd.DistanceKm,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.now()
	o := &domain.Order{
		CustomerID:         cmd.CustomerID,
		PickupAddress:      cmd.PickupAddress,
		DropAddress:        cmd.DropAddress,
		Pickup:             cmd.Pickup,
		Drop:               cmd.Drop,
		PackageWeightKg:    cmd.PackageWeightKg,
		PackageDescription: cmd.PackageDescription,
		VehicleClass:       cmd.VehicleClass,
		DistanceKm:         quote.DistanceKm,
		Price:              quote.Price(),
		Status:             domain.OrderPending,
		CreatedAt:          now,
	}

	err = s.tx.WithTx(ctx, func(tx storetx.Repository) error {
		if err := tx.InsertOrder(ctx, o); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		return tx.AppendOrderEvent(ctx, &domain.OrderEvent{
			OrderID:   o.ID,
			To:        domain.OrderPending,
			ActorRole: domain.RoleCustomer,
			ActorID:   o.CustomerID,
			At:        now,
		})
	})
	if err != nil {
		return nil, err
	}

	s.metrics.Transition(string(domain.OrderPending))
	s.logger.Info("order created",
		logx.String("event", "order_created"),
		logx.Int64("order_id", o.ID),
		logx.Int64("customer_id", o.CustomerID),
		logx.String("class", string(o.VehicleClass)),
		logx.Float64("distance_km", o.DistanceKm),
		logx.Int64("total", o.Price.Total),
	)

	if s.notify != nil {
		_, err := s.notify.NotifyAdmins(ctx, notification.NotifyCommand{
			Type:    domain.NotifyOrderCreated,
			Message: fmt.Sprintf("Order #%d from %s to %s is waiting for a driver", o.ID, o.PickupAddress, o.DropAddress),
			Payload: map[string]any{"order_id": o.ID, "vehicle_class": string(o.VehicleClass), "total": o.Price.Total},
		})
		if err != nil {
			s.logger.Warn("admin notification failed", logx.Int64("order_id", o.ID), logx.Err(err))
		}
	}
	s.publish(ctx, o)
	return o, nil
}

func (s *Service) publish(ctx context.Context, o *domain.Order) {
	if s.feed == nil {
		return
	}
	s.feed.PublishMany(ctx, domain.OrderTopics(o), feed.OrderUpdated, o)
}

// Get returns one order.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	o, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, &apperr.OrderNotFoundError{ID: id}
	}
	return o, nil
}

// List returns orders matching the filter, newest first.
func (s *Service) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	if f.Status != nil && !f.Status.Valid() {
		return nil, apperr.Reasonf(apperr.Invalid, "unknown order status %q", *f.Status)
	}
	if f.Offset < 0 {
		return nil, apperr.Reasonf(apperr.Invalid, "offset must not be negative")
	}
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.orders.ListOrders(ctx, f)
}

// History returns the status changes of an order, oldest first.
func (s *Service) History(ctx context.Context, id int64) ([]domain.OrderEvent, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.orders.ListOrderEvents(ctx, id)
}

// StartRoute records that the assigned driver is heading to the pickup.
func (s *Service) StartRoute(ctx context.Context, orderID, driverID int64) (*domain.Order, error) {
	return s.driverStep(ctx, orderID, driverID, domain.OrderOnRoute, domain.NotifyOrderOnRoute,
		"Your driver is on the way to the pickup point")
}

// ConfirmPickup records that the assigned driver collected the package.
func (s *Service) ConfirmPickup(ctx context.Context, orderID, driverID int64) (*domain.Order, error) {
	return s.driverStep(ctx, orderID, driverID, domain.OrderPickedUp, domain.NotifyOrderPickedUp,
		"Your package has been picked up")
}

func (s *Service) driverStep(
	ctx context.Context,
	orderID, driverID int64,
	to domain.OrderStatus,
	kind domain.NotificationType,
	message string,
) (*domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		out  *domain.Order
		from domain.OrderStatus
	)
	err := s.tx.WithTx(ctx, func(tx storetx.Repository) error {
		o, err := tx.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return &apperr.OrderNotFoundError{ID: orderID}
		}
		if !domain.CanTransition(o.Status, to) {
			return &apperr.InvalidTransitionError{From: string(o.Status), To: string(to)}
		}
		if !o.IsAssignedTo(driverID) {
			return apperr.Reasonf(apperr.Conflict, "order %d is not assigned to driver %d", orderID, driverID)
		}
		from = o.Status
		at := s.now()
		if err := o.Transition(to, at); err != nil {
			return err
		}
		if err := tx.UpdateOrder(ctx, o); err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		if err := tx.AppendOrderEvent(ctx, &domain.OrderEvent{
			OrderID: o.ID, From: from, To: to, ActorRole: domain.RoleDriver, ActorID: driverID, At: at,
		}); err != nil {
			return err
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.Transition(string(to))
	s.logger.Info("order status changed",
		logx.String("event", "order_transition"),
		logx.Int64("order_id", out.ID),
		logx.Int64("driver_id", driverID),
		logx.String("from", string(from)),
		logx.String("to", string(to)),
	)

	if s.notify != nil {
		_, err := s.notify.Notify(ctx, notification.NotifyCommand{
			UserID:  out.CustomerID,
			Role:    domain.RoleCustomer,
			Type:    kind,
			Message: fmt.Sprintf("Order #%d: %s", out.ID, message),
			Payload: map[string]any{"order_id": out.ID, "status": string(to)},
		})
		if err != nil {
			s.logger.Warn("customer notification failed", logx.Int64("order_id", out.ID), logx.Err(err))
		}
	}
	s.publish(ctx, out)
	return out, nil
}

// RateCommand carries customer feedback on a delivered order.
type RateCommand struct {
	OrderID    int64
	CustomerID int64
	Rating     int
	Feedback   string
}

// Rate stores the customer's rating. Only the ordering customer may rate, once.
func (s *Service) Rate(ctx context.Context, cmd RateCommand) (*domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var out *domain.Order
	err := s.tx.WithTx(ctx, func(tx storetx.Repository) error {
		o, err := tx.GetOrderForUpdate(ctx, cmd.OrderID)
		if err != nil {
			return err
		}
		if o == nil || o.CustomerID != cmd.CustomerID {
			return &apperr.OrderNotFoundError{ID: cmd.OrderID}
		}
		if err := o.Rate(cmd.Rating, cmd.Feedback); err != nil {
			return err
		}
		if err := tx.UpdateOrder(ctx, o); err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("order rated",
		logx.String("event", "order_rated"),
		logx.Int64("order_id", out.ID),
		logx.Int("rating", cmd.Rating),
	)
	s.publish(ctx, out)
	return out, nil
}

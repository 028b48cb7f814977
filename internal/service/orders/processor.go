package orders

import (
	"context"
	"errors"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/service/assignment"
)

// Processor applies order status events to the lifecycle and the orchestrator
type Processor struct {
	lifecycle  LifecyclePort
	assignment AssignmentPort
	logger     logx.Logger
	factory    *actionFactory
}

// NewProcessor creates a new orders.Processor
func NewProcessor(lc LifecyclePort, as AssignmentPort, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{
		lifecycle:  lc,
		assignment: as,
		logger:     logger,
	}
	p.factory = newActionFactory(p.onRoute, p.onPickedUp, p.onDelivered, p.onCancelled)
	return p
}

// Handle processes a single orders.Event. Unknown statuses are skipped and
// domain rejections are acknowledged, so only infrastructure errors are
// returned for redelivery.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if p.factory == nil {
		return nil
	}
	fn, ok := p.factory.get(e.Status)
	if !ok {
		p.logger.Debug("order event skipped",
			logx.Int64("order_id", e.OrderID),
			logx.String("status", e.Status),
		)
		return nil
	}
	err := fn(ctx, e)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperr.Conflict), errors.Is(err, apperr.NotFound), errors.Is(err, apperr.Invalid):
		// уже применено или событие битое, повтор не поможет
		p.logger.Warn("order event rejected",
			logx.Int64("order_id", e.OrderID),
			logx.String("status", e.Status),
			logx.Int64("actor_id", e.ActorID),
			logx.Err(err),
		)
		return nil
	default:
		return err
	}
}

func driverOnly(e Event) error {
	if domain.Role(e.ActorRole) != domain.RoleDriver || e.ActorID <= 0 {
		return apperr.Reasonf(apperr.Invalid, "status %s must come from a driver", e.Status)
	}
	return nil
}

func (p *Processor) onRoute(ctx context.Context, e Event) error {
	if err := driverOnly(e); err != nil {
		return err
	}
	_, err := p.lifecycle.StartRoute(ctx, e.OrderID, e.ActorID)
	return err
}

func (p *Processor) onPickedUp(ctx context.Context, e Event) error {
	if err := driverOnly(e); err != nil {
		return err
	}
	_, err := p.lifecycle.ConfirmPickup(ctx, e.OrderID, e.ActorID)
	return err
}

func (p *Processor) onDelivered(ctx context.Context, e Event) error {
	if err := driverOnly(e); err != nil {
		return err
	}
	_, err := p.assignment.CompleteDelivery(ctx, assignment.CompleteCommand{OrderID: e.OrderID, DriverID: e.ActorID})
	return err
}

func (p *Processor) onCancelled(ctx context.Context, e Event) error {
	_, err := p.assignment.Cancel(ctx, assignment.CancelCommand{
		OrderID:   e.OrderID,
		ActorRole: domain.Role(e.ActorRole),
		ActorID:   e.ActorID,
		Reason:    e.Reason,
	})
	return err
}

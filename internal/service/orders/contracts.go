//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/service/assignment"
)

// LifecyclePort abstracts the driver-side steps needed by the Processor
// when handling order status events
type LifecyclePort interface {
	StartRoute(ctx context.Context, orderID, driverID int64) (*domain.Order, error)
	ConfirmPickup(ctx context.Context, orderID, driverID int64) (*domain.Order, error)
}

// AssignmentPort abstracts the orchestrator operations that release resources
type AssignmentPort interface {
	CompleteDelivery(ctx context.Context, cmd assignment.CompleteCommand) (*domain.Order, error)
	Cancel(ctx context.Context, cmd assignment.CancelCommand) (*domain.Order, error)
}

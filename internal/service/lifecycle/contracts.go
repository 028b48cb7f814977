//go:generate mockgen -source=contracts.go -destination=lifecycle_mocks_test.go -package=lifecycle_test

package lifecycle

import (
	"context"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/feed"
	"delivery-dispatch/internal/geo"
	"delivery-dispatch/internal/service/notification"
)

// orderReader defines order reads outside of transactions.
type orderReader interface {
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error)
	ListOrderEvents(ctx context.Context, orderID int64) ([]domain.OrderEvent, error)
}

type pricer interface {
	Quote(class domain.VehicleClass, distanceKm float64, driverOwnsVehicle bool) (domain.Quote, error)
	QuoteTrip(class domain.VehicleClass, pickup, drop geo.Point) (domain.Quote, error)
}

type notifier interface {
	Notify(ctx context.Context, cmd notification.NotifyCommand) (*domain.Notification, error)
	NotifyAdmins(ctx context.Context, cmd notification.NotifyCommand) ([]domain.Notification, error)
}

type publisher interface {
	PublishMany(ctx context.Context, topics []string, typ feed.EventType, payload any)
}

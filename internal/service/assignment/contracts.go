//go:generate mockgen -source=contracts.go -destination=assignment_mocks_test.go -package=assignment_test

package assignment

import (
	"context"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/feed"
	"delivery-dispatch/internal/service/notification"
)

type pricer interface {
	Resplit(class domain.VehicleClass, total int64, driverOwnsVehicle bool) (domain.Price, error)
}

type notifier interface {
	Notify(ctx context.Context, cmd notification.NotifyCommand) (*domain.Notification, error)
	NotifyAdmins(ctx context.Context, cmd notification.NotifyCommand) ([]domain.Notification, error)
}

type publisher interface {
	PublishMany(ctx context.Context, topics []string, typ feed.EventType, payload any)
}

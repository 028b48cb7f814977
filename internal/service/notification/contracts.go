//go:generate mockgen -source=contracts.go -destination=notification_mocks_test.go -package=notification_test

package notification

import (
	"context"
	"time"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/feed"
)

// notificationRepository is the inbox storage.
type notificationRepository interface {
	InsertNotification(ctx context.Context, n *domain.Notification) error
	ListNotifications(ctx context.Context, userID int64, role domain.Role, unreadOnly bool, limit int) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, userID int64, role domain.Role, id int64, at time.Time) (bool, error)
	MarkAllNotificationsRead(ctx context.Context, userID int64, role domain.Role, at time.Time) (int64, error)
	CountUnreadNotifications(ctx context.Context, userID int64, role domain.Role) (int64, error)
}

// publisher is the change feed.
type publisher interface {
	Publish(ctx context.Context, topic string, typ feed.EventType, payload any) feed.Event
}

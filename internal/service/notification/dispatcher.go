package notification

import (
	"context"
	"strings"
	"time"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/feed"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/metrics"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

var defaultTitles = map[domain.NotificationType]string{
	domain.NotifyOrderCreated:      "New order",
	domain.NotifyDriverAssigned:    "Driver assigned",
	domain.NotifyOrderOnRoute:      "Driver on the way",
	domain.NotifyOrderPickedUp:     "Package picked up",
	domain.NotifyDeliveryCompleted: "Delivery completed",
	domain.NotifyPaymentReceived:   "Payment received",
	domain.NotifyOrderCancelled:    "Order cancelled",
}

// NotifyCommand describes one notification to append.
type NotifyCommand struct {
	UserID   int64
	Role     domain.Role
	Type     domain.NotificationType
	Title    string
	Message  string
	Payload  map[string]any
	Priority domain.Priority
}

// Dispatcher appends notifications to per-user inboxes and announces them on the change feed.
type Dispatcher struct {
	repo             notificationRepository
	feed             publisher
	adminIDs         []int64
	metrics          *metrics.Dispatch
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time
}

// NewDispatcher creates a Dispatcher. adminIDs are the inboxes NotifyAdmins fans out to.
func NewDispatcher(
	repo notificationRepository,
	pub publisher,
	adminIDs []int64,
	timeout time.Duration,
	logger logx.Logger,
	m *metrics.Dispatch,
) *Dispatcher {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Dispatcher{
		repo:             repo,
		feed:             pub,
		adminIDs:         append([]int64(nil), adminIDs...),
		metrics:          m,
		logger:           logger,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (d *Dispatcher) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.operationTimeout)
}

// AdminIDs returns the configured administrator inboxes.
func (d *Dispatcher) AdminIDs() []int64 {
	return append([]int64(nil), d.adminIDs...)
}

func validateTarget(userID int64, role domain.Role) error {
	if userID <= 0 || !role.Valid() {
		return &apperr.NotificationTargetUnknownError{UserID: userID, Role: string(role)}
	}
	return nil
}

func (d *Dispatcher) build(cmd NotifyCommand) (*domain.Notification, error) {
	if err := validateTarget(cmd.UserID, cmd.Role); err != nil {
		return nil, err
	}
	if !cmd.Type.Valid() {
		return nil, apperr.Reasonf(apperr.Invalid, "unknown notification type %q", cmd.Type)
	}
	if cmd.Priority == "" {
		cmd.Priority = domain.PriorityNormal
	}
	if !cmd.Priority.Valid() {
		return nil, apperr.Reasonf(apperr.Invalid, "unknown priority %q", cmd.Priority)
	}
	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		title = defaultTitles[cmd.Type]
	}
	return &domain.Notification{
		UserID:    cmd.UserID,
		Role:      cmd.Role,
		Type:      cmd.Type,
		Title:     title,
		Message:   strings.TrimSpace(cmd.Message),
		Payload:   cmd.Payload,
		Priority:  cmd.Priority,
		CreatedAt: d.now(),
	}, nil
}

// Notify appends an unread notification to the target inbox and publishes
// notification.created on the target's feed topic.
func (d *Dispatcher) Notify(ctx context.Context, cmd NotifyCommand) (*domain.Notification, error) {
	n, err := d.build(cmd)
	if err != nil {
		return nil, err
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	if err := d.repo.InsertNotification(ctx, n); err != nil {
		return nil, err
	}

	d.metrics.NotificationCreated(string(n.Type))
	if d.feed != nil {
		d.feed.Publish(ctx, domain.Topic(n.Role, n.UserID), feed.NotificationCreated, n)
	}
	d.logger.Debug("notification created",
		logx.String("event", "notification_created"),
		logx.Int64("notification_id", n.ID),
		logx.Int64("user_id", n.UserID),
		logx.String("role", string(n.Role)),
		logx.String("type", string(n.Type)),
	)
	return n, nil
}

// NotifyAdmins sends the same notification to every configured administrator.
// cmd.UserID and cmd.Role are ignored. It stops at the first failure.
func (d *Dispatcher) NotifyAdmins(ctx context.Context, cmd NotifyCommand) ([]domain.Notification, error) {
	out := make([]domain.Notification, 0, len(d.adminIDs))
	for _, id := range d.adminIDs {
		c := cmd
		c.UserID = id
		c.Role = domain.RoleAdmin
		n, err := d.Notify(ctx, c)
		if err != nil {
			return out, err
		}
		out = append(out, *n)
	}
	return out, nil
}

// List returns the newest notifications of an inbox.
func (d *Dispatcher) List(ctx context.Context, userID int64, role domain.Role, unreadOnly bool, limit int) ([]domain.Notification, error) {
	if err := validateTarget(userID, role); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	return d.repo.ListNotifications(ctx, userID, role, unreadOnly, limit)
}

// MarkRead marks one notification read. Marking an already read notification succeeds.
func (d *Dispatcher) MarkRead(ctx context.Context, userID int64, role domain.Role, id int64) error {
	if err := validateTarget(userID, role); err != nil {
		return err
	}
	if id <= 0 {
		return apperr.Reasonf(apperr.Invalid, "invalid notification id")
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	found, err := d.repo.MarkNotificationRead(ctx, userID, role, id, d.now())
	if err != nil {
		return err
	}
	if !found {
		return apperr.Reasonf(apperr.NotFound, "notification %d", id)
	}
	return nil
}

// MarkAllRead marks the whole inbox read and returns how many notifications changed.
func (d *Dispatcher) MarkAllRead(ctx context.Context, userID int64, role domain.Role) (int64, error) {
	if err := validateTarget(userID, role); err != nil {
		return 0, err
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	return d.repo.MarkAllNotificationsRead(ctx, userID, role, d.now())
}

// UnreadCount returns the number of unread notifications of an inbox.
func (d *Dispatcher) UnreadCount(ctx context.Context, userID int64, role domain.Role) (int64, error) {
	if err := validateTarget(userID, role); err != nil {
		return 0, err
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	return d.repo.CountUnreadNotifications(ctx, userID, role)
}

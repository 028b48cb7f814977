package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-dispatch/internal/domain"
)

// NotificationRepo represents notification repository.
type NotificationRepo struct{ db *pgxpool.Pool }

// NewNotificationRepo creates a new NotificationRepo.
func NewNotificationRepo(db *pgxpool.Pool) *NotificationRepo { return &NotificationRepo{db: db} }

// InsertNotification - append a notification and set its ID.
func (r *NotificationRepo) InsertNotification(ctx context.Context, n *domain.Notification) error {
	payload := n.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	err := r.db.QueryRow(ctx, `
        INSERT INTO notifications (user_id, role, type, title, message, payload, priority, read, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8)
        RETURNING id
    `, n.UserID, string(n.Role), string(n.Type), n.Title, n.Message, payload, string(n.Priority), n.CreatedAt).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListNotifications returns the newest notifications of one inbox.
func (r *NotificationRepo) ListNotifications(ctx context.Context, userID int64, role domain.Role, unreadOnly bool, limit int) ([]domain.Notification, error) {
	q := `
        SELECT id, user_id, role, type, title, message, payload, priority, read, created_at, read_at
        FROM notifications
        WHERE user_id = $1 AND role = $2`
	args := []any{userID, string(role)}
	if unreadOnly {
		q += ` AND NOT read`
	}
	q += ` ORDER BY id DESC`
	if limit > 0 {
		args = append(args, limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Role, &n.Type, &n.Title, &n.Message,
			&n.Payload, &n.Priority, &n.Read, &n.CreatedAt, &n.ReadAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkNotificationRead marks one notification read. It reports false when
// the notification is not in the given inbox.
func (r *NotificationRepo) MarkNotificationRead(ctx context.Context, userID int64, role domain.Role, id int64, at time.Time) (bool, error) {
	var found bool
	err := r.db.QueryRow(ctx, `
        WITH target AS (
            SELECT id FROM notifications WHERE id = $1 AND user_id = $2 AND role = $3
        ), upd AS (
            UPDATE notifications n
            SET read = true, read_at = $4
            FROM target
            WHERE n.id = target.id AND NOT n.read
        )
        SELECT EXISTS (SELECT 1 FROM target)
    `, id, userID, string(role), at).Scan(&found)
	if err != nil {
		return false, fmt.Errorf("mark notification %d read: %w", id, err)
	}
	return found, nil
}

// MarkAllNotificationsRead marks the whole inbox read and returns how many rows changed.
func (r *NotificationRepo) MarkAllNotificationsRead(ctx context.Context, userID int64, role domain.Role, at time.Time) (int64, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE notifications
        SET read = true, read_at = $3
        WHERE user_id = $1 AND role = $2 AND NOT read
    `, userID, string(role), at)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return ct.RowsAffected(), nil
}

// CountUnreadNotifications returns the unread count of an inbox.
func (r *NotificationRepo) CountUnreadNotifications(ctx context.Context, userID int64, role domain.Role) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `
        SELECT count(*) FROM notifications WHERE user_id = $1 AND role = $2 AND NOT read
    `, userID, string(role)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}

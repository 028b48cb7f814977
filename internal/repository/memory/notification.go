package memory

import (
	"context"
	"sort"
	"time"

	"delivery-dispatch/internal/domain"
)

// InsertNotification appends a notification and assigns its id.
func (s *Store) InsertNotification(_ context.Context, n *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextNotification++
	n.ID = s.nextNotification
	s.notifications[n.ID] = cloneNotification(*n)
	return nil
}

// ListNotifications returns the newest notifications of one inbox.
func (s *Store) ListNotifications(_ context.Context, userID int64, role domain.Role, unreadOnly bool, limit int) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Notification, 0)
	for _, n := range s.notifications {
		if n.UserID != userID || n.Role != role {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, cloneNotification(n))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return page(out, limit, 0), nil
}

// MarkNotificationRead marks one notification read. It reports false when the
// notification does not belong to the inbox.
func (s *Store) MarkNotificationRead(_ context.Context, userID int64, role domain.Role, id int64, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok || n.UserID != userID || n.Role != role {
		return false, nil
	}
	if !n.Read {
		n.Read = true
		ts := at
		n.ReadAt = &ts
		s.notifications[id] = n
	}
	return true, nil
}

// MarkAllNotificationsRead marks every unread notification of an inbox read
// and returns how many changed.
func (s *Store) MarkAllNotificationsRead(_ context.Context, userID int64, role domain.Role, at time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var changed int64
	for id, n := range s.notifications {
		if n.UserID != userID || n.Role != role || n.Read {
			continue
		}
		n.Read = true
		ts := at
		n.ReadAt = &ts
		s.notifications[id] = n
		changed++
	}
	return changed, nil
}

// CountUnreadNotifications returns the unread count of an inbox.
func (s *Store) CountUnreadNotifications(_ context.Context, userID int64, role domain.Role) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, item := range s.notifications {
		if item.UserID == userID && item.Role == role && !item.Read {
			n++
		}
	}
	return n, nil
}

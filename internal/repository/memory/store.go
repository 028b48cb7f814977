// Package memory is a single-writer in-process store implementing the same
// ports as the PostgreSQL repository. Transactions hold the writer lock for
// their whole duration and stage writes until commit, so a failed
// transaction leaves nothing behind.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/ports/storetx"
)

// Store keeps every entity in maps guarded by one RWMutex.
type Store struct {
	mu sync.RWMutex

	drivers       map[int64]domain.Driver
	vehicles      map[int64]domain.Vehicle
	orders        map[int64]domain.Order
	events        map[int64][]domain.OrderEvent
	notifications map[int64]domain.Notification

	nextDriver, nextVehicle, nextOrder, nextEvent, nextNotification int64

	now func() time.Time
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		drivers:       make(map[int64]domain.Driver),
		vehicles:      make(map[int64]domain.Vehicle),
		orders:        make(map[int64]domain.Order),
		events:        make(map[int64][]domain.OrderEvent),
		notifications: make(map[int64]domain.Notification),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

var _ storetx.Runner = (*Store)(nil)

// WithTx runs fn under the writer lock and commits its staged writes on success.
func (s *Store) WithTx(ctx context.Context, fn func(tx storetx.Repository) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// staged writes are dropped unless fn returns nil, panics included
	tx := newTx(s)
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx.commit()
	return nil
}

// CreateDriver stores a new driver and returns its id.
func (s *Store) CreateDriver(_ context.Context, d *domain.Driver) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.drivers {
		if other.Phone == d.Phone || strings.EqualFold(other.LicenseNumber, d.LicenseNumber) {
			return 0, apperr.Conflict
		}
	}
	s.nextDriver++
	cp := cloneDriver(*d)
	cp.ID = s.nextDriver
	cp.CreatedAt = s.now()
	cp.UpdatedAt = cp.CreatedAt
	s.drivers[cp.ID] = cp
	return cp.ID, nil
}

// GetDriver returns a driver or nil when it does not exist.
func (s *Store) GetDriver(_ context.Context, id int64) (*domain.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.drivers[id]
	if !ok {
		return nil, nil
	}
	cp := cloneDriver(d)
	return &cp, nil
}

// ListDrivers returns drivers ordered by id, optionally filtered by status.
func (s *Store) ListDrivers(_ context.Context, status *domain.DriverStatus) ([]domain.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Driver, 0, len(s.drivers))
	for _, d := range s.drivers {
		if status != nil && d.Status != *status {
			continue
		}
		out = append(out, cloneDriver(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UpdateDriverProfile applies a partial update and reports whether the driver exists.
func (s *Store) UpdateDriverProfile(_ context.Context, u domain.PartialDriverUpdate) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drivers[u.ID]
	if !ok {
		return false, nil
	}
	for id, other := range s.drivers {
		if id == u.ID {
			continue
		}
		if u.Phone != nil && other.Phone == *u.Phone {
			return false, apperr.Conflict
		}
		if u.LicenseNumber != nil && strings.EqualFold(other.LicenseNumber, *u.LicenseNumber) {
			return false, apperr.Conflict
		}
	}
	if u.Name != nil {
		d.Name = *u.Name
	}
	if u.Phone != nil {
		d.Phone = *u.Phone
	}
	if u.Email != nil {
		d.Email = *u.Email
	}
	if u.LicenseNumber != nil {
		d.LicenseNumber = *u.LicenseNumber
	}
	d.UpdatedAt = s.now()
	s.drivers[u.ID] = d
	return true, nil
}

// CreateVehicle stores a new vehicle and returns its id.
func (s *Store) CreateVehicle(_ context.Context, v *domain.Vehicle) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.vehicles {
		if strings.EqualFold(other.Number, v.Number) {
			return 0, apperr.Conflict
		}
	}
	s.nextVehicle++
	cp := cloneVehicle(*v)
	cp.ID = s.nextVehicle
	cp.CreatedAt = s.now()
	cp.UpdatedAt = cp.CreatedAt
	s.vehicles[cp.ID] = cp
	return cp.ID, nil
}

// GetVehicle returns a vehicle or nil when it does not exist.
func (s *Store) GetVehicle(_ context.Context, id int64) (*domain.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vehicles[id]
	if !ok {
		return nil, nil
	}
	cp := cloneVehicle(v)
	return &cp, nil
}

// ListVehicles returns vehicles ordered by id, optionally filtered by status and class.
func (s *Store) ListVehicles(_ context.Context, status *domain.VehicleStatus, class *domain.VehicleClass) ([]domain.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		if status != nil && v.Status != *status {
			continue
		}
		if class != nil && v.Class != *class {
			continue
		}
		out = append(out, cloneVehicle(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetOrder returns an order or nil when it does not exist.
func (s *Store) GetOrder(_ context.Context, id int64) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := cloneOrder(o)
	return &cp, nil
}

// ListOrders returns orders matching the filter, newest first.
func (s *Store) ListOrders(_ context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, 0)
	for _, o := range s.orders {
		if f.Matches(&o) {
			out = append(out, cloneOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return page(out, f.Limit, f.Offset), nil
}

// ListOrderEvents returns the status history of an order, oldest first.
func (s *Store) ListOrderEvents(_ context.Context, orderID int64) ([]domain.OrderEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	evs := s.events[orderID]
	out := make([]domain.OrderEvent, len(evs))
	copy(out, evs)
	return out, nil
}

func page[T any](in []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(in) {
			return in[:0]
		}
		in = in[offset:]
	}
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}

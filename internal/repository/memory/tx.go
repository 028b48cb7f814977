package memory

import (
	"context"
	"fmt"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/ports/storetx"
)

// txRepo stages writes on top of the store maps. The caller holds s.mu.
type txRepo struct {
	s *Store

	drivers  map[int64]*domain.Driver
	vehicles map[int64]*domain.Vehicle
	orders   map[int64]*domain.Order
	events   []domain.OrderEvent

	deletedDrivers  map[int64]bool
	deletedVehicles map[int64]bool
}

var _ storetx.Repository = (*txRepo)(nil)

func newTx(s *Store) *txRepo {
	return &txRepo{
		s:               s,
		drivers:         make(map[int64]*domain.Driver),
		vehicles:        make(map[int64]*domain.Vehicle),
		orders:          make(map[int64]*domain.Order),
		deletedDrivers:  make(map[int64]bool),
		deletedVehicles: make(map[int64]bool),
	}
}

func (t *txRepo) commit() {
	now := t.s.now()
	for id, o := range t.orders {
		t.s.orders[id] = cloneOrder(*o)
	}
	for id, d := range t.drivers {
		cp := cloneDriver(*d)
		cp.UpdatedAt = now
		t.s.drivers[id] = cp
	}
	for id, v := range t.vehicles {
		cp := cloneVehicle(*v)
		cp.UpdatedAt = now
		t.s.vehicles[id] = cp
	}
	for id := range t.deletedDrivers {
		delete(t.s.drivers, id)
	}
	// как ON DELETE SET NULL в postgres
	if len(t.deletedDrivers) > 0 {
		for id, v := range t.s.vehicles {
			if v.OwnerDriverID != nil && t.deletedDrivers[*v.OwnerDriverID] {
				v.OwnerDriverID = nil
				t.s.vehicles[id] = v
			}
		}
	}
	for id := range t.deletedVehicles {
		delete(t.s.vehicles, id)
	}
	for _, e := range t.events {
		t.s.events[e.OrderID] = append(t.s.events[e.OrderID], e)
	}
}

// InsertOrder stages a new order and assigns its id.
func (t *txRepo) InsertOrder(_ context.Context, o *domain.Order) error {
	t.s.nextOrder++
	o.ID = t.s.nextOrder
	cp := cloneOrder(*o)
	t.orders[o.ID] = &cp
	return nil
}

// GetOrderForUpdate returns the staged or committed order.
func (t *txRepo) GetOrderForUpdate(_ context.Context, id int64) (*domain.Order, error) {
	if o, ok := t.orders[id]; ok {
		cp := cloneOrder(*o)
		return &cp, nil
	}
	o, ok := t.s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := cloneOrder(o)
	return &cp, nil
}

// UpdateOrder stages the full order row.
func (t *txRepo) UpdateOrder(ctx context.Context, o *domain.Order) error {
	cur, err := t.GetOrderForUpdate(ctx, o.ID)
	if err != nil {
		return err
	}
	if cur == nil {
		return fmt.Errorf("order %d not found", o.ID)
	}
	cp := cloneOrder(*o)
	t.orders[o.ID] = &cp
	return nil
}

// AppendOrderEvent stages a status history entry.
func (t *txRepo) AppendOrderEvent(_ context.Context, e *domain.OrderEvent) error {
	t.s.nextEvent++
	e.ID = t.s.nextEvent
	t.events = append(t.events, *e)
	return nil
}

// GetDriverForUpdate returns the staged or committed driver.
func (t *txRepo) GetDriverForUpdate(_ context.Context, id int64) (*domain.Driver, error) {
	if t.deletedDrivers[id] {
		return nil, nil
	}
	if d, ok := t.drivers[id]; ok {
		cp := cloneDriver(*d)
		return &cp, nil
	}
	d, ok := t.s.drivers[id]
	if !ok {
		return nil, nil
	}
	cp := cloneDriver(d)
	return &cp, nil
}

// UpdateDriverBinding stages status, assigned vehicle and current order.
func (t *txRepo) UpdateDriverBinding(ctx context.Context, d *domain.Driver) error {
	cur, err := t.GetDriverForUpdate(ctx, d.ID)
	if err != nil {
		return err
	}
	if cur == nil {
		return fmt.Errorf("driver %d not found", d.ID)
	}
	cur.Status = d.Status
	cur.AssignedVehicleID = cloneID(d.AssignedVehicleID)
	cur.CurrentOrderID = cloneID(d.CurrentOrderID)
	t.drivers[d.ID] = cur
	return nil
}

// DeleteDriver stages removal of a driver.
func (t *txRepo) DeleteDriver(ctx context.Context, id int64) error {
	cur, err := t.GetDriverForUpdate(ctx, id)
	if err != nil {
		return err
	}
	if cur == nil {
		return fmt.Errorf("driver %d not found", id)
	}
	delete(t.drivers, id)
	t.deletedDrivers[id] = true
	return nil
}

// GetVehicleForUpdate returns the staged or committed vehicle.
func (t *txRepo) GetVehicleForUpdate(_ context.Context, id int64) (*domain.Vehicle, error) {
	if t.deletedVehicles[id] {
		return nil, nil
	}
	if v, ok := t.vehicles[id]; ok {
		cp := cloneVehicle(*v)
		return &cp, nil
	}
	v, ok := t.s.vehicles[id]
	if !ok {
		return nil, nil
	}
	cp := cloneVehicle(v)
	return &cp, nil
}

// UpdateVehicleBinding stages status, assigned driver and current order.
func (t *txRepo) UpdateVehicleBinding(ctx context.Context, v *domain.Vehicle) error {
	cur, err := t.GetVehicleForUpdate(ctx, v.ID)
	if err != nil {
		return err
	}
	if cur == nil {
		return fmt.Errorf("vehicle %d not found", v.ID)
	}
	cur.Status = v.Status
	cur.AssignedDriverID = cloneID(v.AssignedDriverID)
	cur.CurrentOrderID = cloneID(v.CurrentOrderID)
	t.vehicles[v.ID] = cur
	return nil
}

// DeleteVehicle stages removal of a vehicle.
func (t *txRepo) DeleteVehicle(ctx context.Context, id int64) error {
	cur, err := t.GetVehicleForUpdate(ctx, id)
	if err != nil {
		return err
	}
	if cur == nil {
		return fmt.Errorf("vehicle %d not found", id)
	}
	delete(t.vehicles, id)
	t.deletedVehicles[id] = true
	return nil
}

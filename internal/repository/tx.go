package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/ports/storetx"
)

// WithTx opens a transaction and executes fn within it.
func (r *OrderRepo) WithTx(ctx context.Context, fn func(tx storetx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// откатываем при панике
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&TxRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		if cerr := constraintError(err); cerr != nil {
			return cerr
		}
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

var _ storetx.Runner = (*OrderRepo)(nil)

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

var _ storetx.Repository = (*TxRepo)(nil)

// InsertOrder - insert a new order and set its ID.
func (r *TxRepo) InsertOrder(ctx context.Context, o *domain.Order) error {
	pickLat, pickLng := coords(o.Pickup)
	dropLat, dropLng := coords(o.Drop)
	err := r.tx.QueryRow(ctx, `
        INSERT INTO orders (
            customer_id, pickup_address, drop_address,
            pickup_lat, pickup_lng, drop_lat, drop_lng,
            package_weight_kg, package_description, vehicle_class, distance_km,
            price_total, driver_payment, vehicle_charge, status, created_at, version
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
        RETURNING id
    `,
		o.CustomerID, o.PickupAddress, o.DropAddress,
		pickLat, pickLng, dropLat, dropLng,
		o.PackageWeightKg, o.PackageDescription, string(o.VehicleClass), o.DistanceKm,
		o.Price.Total, o.Price.DriverPayment, o.Price.VehicleCharge, string(o.Status), o.CreatedAt, o.Version,
	).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetOrderForUpdate - get order by ID and lock the row.
func (r *TxRepo) GetOrderForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := scanOrder(r.tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %d for update: %w", id, err)
	}
	return o, nil
}

// UpdateOrder - write back the mutable part of an order row.
func (r *TxRepo) UpdateOrder(ctx context.Context, o *domain.Order) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE orders
        SET price_total         = $2,
            driver_payment      = $3,
            vehicle_charge      = $4,
            status              = $5,
            assigned_driver_id  = $6,
            assigned_vehicle_id = $7,
            driver_name         = $8,
            driver_phone        = $9,
            vehicle_number      = $10,
            assigned_at         = $11,
            on_route_at         = $12,
            picked_up_at        = $13,
            delivered_at        = $14,
            cancelled_at        = $15,
            cancel_reason       = $16,
            rating              = $17,
            feedback            = $18,
            version             = $19
        WHERE id = $1
    `,
		o.ID, o.Price.Total, o.Price.DriverPayment, o.Price.VehicleCharge, string(o.Status),
		o.AssignedDriverID, o.AssignedVehicleID,
		o.Snapshot.DriverName, o.Snapshot.DriverPhone, o.Snapshot.VehicleNumber,
		o.AssignedAt, o.OnRouteAt, o.PickedUpAt, o.DeliveredAt, o.CancelledAt,
		o.CancelReason, o.Rating, o.Feedback, o.Version,
	)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return cerr
		}
		return fmt.Errorf("update order %d: %w", o.ID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("order %d not found", o.ID)
	}
	return nil
}

// AppendOrderEvent - insert a status history entry.
func (r *TxRepo) AppendOrderEvent(ctx context.Context, e *domain.OrderEvent) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO order_events (order_id, from_status, to_status, actor_role, actor_id, at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, e.OrderID, string(e.From), string(e.To), string(e.ActorRole), e.ActorID, e.At).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("append order event: %w", err)
	}
	return nil
}

// GetDriverForUpdate - get driver by ID and lock the row.
func (r *TxRepo) GetDriverForUpdate(ctx context.Context, id int64) (*domain.Driver, error) {
	d, err := scanDriver(r.tx.QueryRow(ctx, `SELECT `+driverColumns+` FROM drivers WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver %d for update: %w", id, err)
	}
	return d, nil
}

// UpdateDriverBinding - update driver status and its current assignment.
func (r *TxRepo) UpdateDriverBinding(ctx context.Context, d *domain.Driver) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE drivers
        SET status = $2, assigned_vehicle_id = $3, current_order_id = $4, updated_at = now()
        WHERE id = $1
    `, d.ID, string(d.Status), d.AssignedVehicleID, d.CurrentOrderID)
	if err != nil {
		return fmt.Errorf("update driver %d binding: %w", d.ID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("driver %d not found", d.ID)
	}
	return nil
}

// DeleteDriver - delete driver by ID.
func (r *TxRepo) DeleteDriver(ctx context.Context, id int64) error {
	ct, err := r.tx.Exec(ctx, `DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete driver %d: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("driver %d not found", id)
	}
	return nil
}

// GetVehicleForUpdate - get vehicle by ID and lock the row.
func (r *TxRepo) GetVehicleForUpdate(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v, err := scanVehicle(r.tx.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle %d for update: %w", id, err)
	}
	return v, nil
}

// UpdateVehicleBinding - update vehicle status and its current assignment.
func (r *TxRepo) UpdateVehicleBinding(ctx context.Context, v *domain.Vehicle) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE vehicles
        SET status = $2, assigned_driver_id = $3, current_order_id = $4, updated_at = now()
        WHERE id = $1
    `, v.ID, string(v.Status), v.AssignedDriverID, v.CurrentOrderID)
	if err != nil {
		return fmt.Errorf("update vehicle %d binding: %w", v.ID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %d not found", v.ID)
	}
	return nil
}

// DeleteVehicle - delete vehicle by ID.
func (r *TxRepo) DeleteVehicle(ctx context.Context, id int64) error {
	ct, err := r.tx.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle %d: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %d not found", id)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/geo"
)

type scanner interface {
	Scan(dest ...any) error
}

const orderColumns = `id, customer_id, pickup_address, drop_address,
	pickup_lat, pickup_lng, drop_lat, drop_lng,
	package_weight_kg, package_description, vehicle_class, distance_km,
	price_total, driver_payment, vehicle_charge, status,
	assigned_driver_id, assigned_vehicle_id, driver_name, driver_phone, vehicle_number,
	created_at, assigned_at, on_route_at, picked_up_at, delivered_at, cancelled_at,
	cancel_reason, rating, feedback, version`

// OrderRepo represents order repository.
type OrderRepo struct {
	db *pgxpool.Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{db: db}
}

func scanOrder(row scanner) (*domain.Order, error) {
	var (
		o                                  domain.Order
		pickLat, pickLng, dropLat, dropLng *float64
	)
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.PickupAddress, &o.DropAddress,
		&pickLat, &pickLng, &dropLat, &dropLng,
		&o.PackageWeightKg, &o.PackageDescription, &o.VehicleClass, &o.DistanceKm,
		&o.Price.Total, &o.Price.DriverPayment, &o.Price.VehicleCharge, &o.Status,
		&o.AssignedDriverID, &o.AssignedVehicleID, &o.Snapshot.DriverName, &o.Snapshot.DriverPhone, &o.Snapshot.VehicleNumber,
		&o.CreatedAt, &o.AssignedAt, &o.OnRouteAt, &o.PickedUpAt, &o.DeliveredAt, &o.CancelledAt,
		&o.CancelReason, &o.Rating, &o.Feedback, &o.Version,
	)
	if err != nil {
		return nil, err
	}
	o.Pickup = point(pickLat, pickLng)
	o.Drop = point(dropLat, dropLng)
	return &o, nil
}

func point(lat, lng *float64) *geo.Point {
	if lat == nil || lng == nil {
		return nil
	}
	return &geo.Point{Lat: *lat, Lng: *lng}
}

func coords(p *geo.Point) (lat, lng *float64) {
	if p == nil {
		return nil, nil
	}
	la, ln := p.Lat, p.Lng
	return &la, &ln
}

// GetOrder - returns order by its ID.
func (r *OrderRepo) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return o, nil
}

// ListOrders returns orders matching the filter, newest first.
func (r *OrderRepo) ListOrders(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE true`
	args := make([]any, 0, 5)
	if f.CustomerID != nil {
		args = append(args, *f.CustomerID)
		q += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	if f.DriverID != nil {
		args = append(args, *f.DriverID)
		q += fmt.Sprintf(" AND assigned_driver_id = $%d", len(args))
	}
	if f.Status != nil {
		args = append(args, string(*f.Status))
		q += fmt.Sprintf(" AND status = $%d", len(args))
	}
	q += ` ORDER BY id DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// ListOrderEvents returns the status history of an order, oldest first.
func (r *OrderRepo) ListOrderEvents(ctx context.Context, orderID int64) ([]domain.OrderEvent, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, order_id, from_status, to_status, actor_role, actor_id, at
        FROM order_events
        WHERE order_id = $1
        ORDER BY id
    `, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order events %d: %w", orderID, err)
	}
	defer rows.Close()

	out := make([]domain.OrderEvent, 0)
	for rows.Next() {
		var e domain.OrderEvent
		if err := rows.Scan(&e.ID, &e.OrderID, &e.From, &e.To, &e.ActorRole, &e.ActorID, &e.At); err != nil {
			return nil, fmt.Errorf("scan order event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-dispatch/internal/domain"
)

const vehicleColumns = `id, number, class, capacity_kg, fuel_type, status,
	owner_driver_id, assigned_driver_id, current_order_id, created_at, updated_at`

// VehicleRepo represents vehicle repository.
type VehicleRepo struct{ db *pgxpool.Pool }

// NewVehicleRepo creates a new VehicleRepo.
func NewVehicleRepo(db *pgxpool.Pool) *VehicleRepo { return &VehicleRepo{db: db} }

func scanVehicle(row scanner) (*domain.Vehicle, error) {
	var v domain.Vehicle
	err := row.Scan(&v.ID, &v.Number, &v.Class, &v.CapacityKg, &v.FuelType, &v.Status,
		&v.OwnerDriverID, &v.AssignedDriverID, &v.CurrentOrderID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetVehicle - returns vehicle by its ID.
func (r *VehicleRepo) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v, err := scanVehicle(r.db.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle %d: %w", id, err)
	}
	return v, nil
}

// ListVehicles returns vehicles ordered by id filtered by optional status and class.
func (r *VehicleRepo) ListVehicles(ctx context.Context, status *domain.VehicleStatus, class *domain.VehicleClass) ([]domain.Vehicle, error) {
	q := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE true`
	args := make([]any, 0, 2)
	if status != nil {
		args = append(args, string(*status))
		q += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if class != nil {
		args = append(args, string(*class))
		q += fmt.Sprintf(" AND class = $%d", len(args))
	}
	q += ` ORDER BY id`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Vehicle, 0)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

// CreateVehicle - creates a new vehicle.
func (r *VehicleRepo) CreateVehicle(ctx context.Context, v *domain.Vehicle) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO vehicles (number, class, capacity_kg, fuel_type, status, owner_driver_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, v.Number, string(v.Class), v.CapacityKg, string(v.FuelType), string(v.Status), v.OwnerDriverID).Scan(&id)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return 0, cerr
		}
		return 0, fmt.Errorf("create vehicle: %w", err)
	}
	return id, nil
}

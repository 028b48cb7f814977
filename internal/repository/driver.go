package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-dispatch/internal/domain"
)

const driverColumns = `id, name, phone, email, license_number, status,
	assigned_vehicle_id, current_order_id, created_at, updated_at`

// DriverRepo represents driver repository.
type DriverRepo struct{ db *pgxpool.Pool }

// NewDriverRepo creates a new DriverRepo.
func NewDriverRepo(db *pgxpool.Pool) *DriverRepo { return &DriverRepo{db: db} }

func scanDriver(row scanner) (*domain.Driver, error) {
	var d domain.Driver
	err := row.Scan(&d.ID, &d.Name, &d.Phone, &d.Email, &d.LicenseNumber, &d.Status,
		&d.AssignedVehicleID, &d.CurrentOrderID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetDriver - returns driver by its ID.
func (r *DriverRepo) GetDriver(ctx context.Context, id int64) (*domain.Driver, error) {
	d, err := scanDriver(r.db.QueryRow(ctx, `SELECT `+driverColumns+` FROM drivers WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver %d: %w", id, err)
	}
	return d, nil
}

// ListDrivers returns drivers ordered by id. A nil status returns every driver.
func (r *DriverRepo) ListDrivers(ctx context.Context, status *domain.DriverStatus) ([]domain.Driver, error) {
	q := `SELECT ` + driverColumns + ` FROM drivers`
	args := make([]any, 0, 1)
	if status != nil {
		q += ` WHERE status = $1`
		args = append(args, string(*status))
	}
	q += ` ORDER BY id`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Driver, 0)
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// CreateDriver - creates a new driver.
func (r *DriverRepo) CreateDriver(ctx context.Context, d *domain.Driver) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO drivers (name, phone, email, license_number, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, d.Name, d.Phone, d.Email, d.LicenseNumber, string(d.Status)).Scan(&id)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return 0, cerr
		}
		return 0, fmt.Errorf("create driver: %w", err)
	}
	return id, nil
}

// UpdateDriverProfile applies a partial update to a driver and returns true if a row was affected.
func (r *DriverRepo) UpdateDriverProfile(ctx context.Context, u domain.PartialDriverUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE drivers
        SET
            name           = COALESCE($2, name),
            phone          = COALESCE($3, phone),
            email          = COALESCE($4, email),
            license_number = COALESCE($5, license_number),
            updated_at     = now()
        WHERE id = $1
    `, u.ID, u.Name, u.Phone, u.Email, u.LicenseNumber)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return false, cerr
		}
		return false, fmt.Errorf("update driver %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

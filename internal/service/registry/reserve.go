package registry

import (
	"context"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/ports/storetx"
)

// Reserve binds an available driver and an available vehicle to an order
// inside tx. Rows are locked driver first, then vehicle. When either is
// missing or not available nothing is written and the error names it.
func Reserve(ctx context.Context, tx storetx.Repository, driverID, vehicleID, orderID int64) (*domain.Driver, *domain.Vehicle, error) {
	d, err := tx.GetDriverForUpdate(ctx, driverID)
	if err != nil {
		return nil, nil, err
	}
	if d == nil {
		return nil, nil, apperr.Reasonf(apperr.NotFound, "driver %d", driverID)
	}
	v, err := tx.GetVehicleForUpdate(ctx, vehicleID)
	if err != nil {
		return nil, nil, err
	}
	if v == nil {
		return nil, nil, apperr.Reasonf(apperr.NotFound, "vehicle %d", vehicleID)
	}

	if d.Status != domain.DriverAvailable {
		return nil, nil, &apperr.ResourceUnavailableError{Resource: "driver", ID: driverID, Status: string(d.Status)}
	}
	if v.Status != domain.VehicleAvailable {
		return nil, nil, &apperr.ResourceUnavailableError{Resource: "vehicle", ID: vehicleID, Status: string(v.Status)}
	}

	oid, vid, did := orderID, vehicleID, driverID
	d.Status = domain.DriverOnTrip
	d.AssignedVehicleID = &vid
	d.CurrentOrderID = &oid
	v.Status = domain.VehicleInUse
	v.AssignedDriverID = &did
	v.CurrentOrderID = &oid

	if err := tx.UpdateDriverBinding(ctx, d); err != nil {
		return nil, nil, err
	}
	if err := tx.UpdateVehicleBinding(ctx, v); err != nil {
		return nil, nil, err
	}
	return d, v, nil
}

// Release frees the driver and vehicle of a finished or cancelled order.
// Resources that no longer exist or are bound to another order are left alone.
func Release(ctx context.Context, tx storetx.Repository, orderID int64, driverID, vehicleID *int64) error {
	if driverID != nil {
		d, err := tx.GetDriverForUpdate(ctx, *driverID)
		if err != nil {
			return err
		}
		if d != nil && boundTo(d.CurrentOrderID, orderID) {
			d.Status = domain.DriverAvailable
			d.AssignedVehicleID = nil
			d.CurrentOrderID = nil
			if err := tx.UpdateDriverBinding(ctx, d); err != nil {
				return err
			}
		}
	}
	if vehicleID != nil {
		v, err := tx.GetVehicleForUpdate(ctx, *vehicleID)
		if err != nil {
			return err
		}
		if v != nil && boundTo(v.CurrentOrderID, orderID) {
			v.Status = domain.VehicleAvailable
			v.AssignedDriverID = nil
			v.CurrentOrderID = nil
			if err := tx.UpdateVehicleBinding(ctx, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func boundTo(current *int64, orderID int64) bool {
	return current != nil && *current == orderID
}

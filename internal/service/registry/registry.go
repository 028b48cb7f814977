// Package registry owns drivers and vehicles: their profiles, their duty and
// maintenance states and the reservation of a driver and vehicle pair for an order.
package registry

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/feed"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/ports/storetx"
)

// Service coordinates driver and vehicle business logic.
type Service struct {
	drivers          driverRepository
	vehicles         vehicleRepository
	tx               storetx.Runner
	feed             publisher
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates and configures a registry Service. pub may be nil.
func NewService(
	drivers driverRepository,
	vehicles vehicleRepository,
	tx storetx.Runner,
	pub publisher,
	timeout time.Duration,
	logger logx.Logger,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		drivers:          drivers,
		vehicles:         vehicles,
		tx:               tx,
		feed:             pub,
		logger:           logger,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// ResourceChange is the payload of resource.updated feed events.
type ResourceChange struct {
	Resource string `json:"resource"`
	ID       int64  `json:"id"`
	Status   string `json:"status"`
	Deleted  bool   `json:"deleted,omitempty"`
}

// Announce publishes resource.updated on the admin room.
func (s *Service) Announce(ctx context.Context, changes ...ResourceChange) {
	if s.feed == nil {
		return
	}
	for _, c := range changes {
		s.feed.Publish(ctx, domain.TopicAdminRoom, feed.ResourceUpdated, c)
	}
}

func validateDriver(d *domain.Driver) error {
	if d == nil {
		return apperr.Invalid
	}
	d.Name = strings.TrimSpace(d.Name)
	d.LicenseNumber = strings.TrimSpace(d.LicenseNumber)
	d.Email = strings.TrimSpace(d.Email)
	if d.Name == "" {
		return apperr.Reasonf(apperr.Invalid, "driver name is required")
	}
	if !domain.ValidatePhone(d.Phone) {
		return apperr.Reasonf(apperr.Invalid, "phone %q is not an E.164 number", d.Phone)
	}
	if d.LicenseNumber == "" {
		return apperr.Reasonf(apperr.Invalid, "license number is required")
	}
	if d.Status == "" {
		d.Status = domain.DriverAvailable
	}
	if d.Status == domain.DriverOnTrip || !d.Status.Valid() {
		return apperr.Reasonf(apperr.Invalid, "driver cannot be created with status %q", d.Status)
	}
	return nil
}

func validateDriverUpdate(u *domain.PartialDriverUpdate) error {
	if u.ID <= 0 || u.Empty() {
		return apperr.Invalid
	}
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		if name == "" {
			return apperr.Reasonf(apperr.Invalid, "driver name is required")
		}
		u.Name = &name
	}
	if u.Phone != nil && !domain.ValidatePhone(*u.Phone) {
		return apperr.Reasonf(apperr.Invalid, "phone %q is not an E.164 number", *u.Phone)
	}
	if u.LicenseNumber != nil {
		lic := strings.TrimSpace(*u.LicenseNumber)
		if lic == "" {
			return apperr.Reasonf(apperr.Invalid, "license number is required")
		}
		u.LicenseNumber = &lic
	}
	return nil
}

func validateVehicle(v *domain.Vehicle) error {
	if v == nil {
		return apperr.Invalid
	}
	v.Number = strings.ToUpper(strings.TrimSpace(v.Number))
	if v.Number == "" {
		return apperr.Reasonf(apperr.Invalid, "vehicle number is required")
	}
	if !v.Class.Valid() {
		return &apperr.UnknownVehicleClassError{Class: string(v.Class)}
	}
	if math.IsNaN(v.CapacityKg) || math.IsInf(v.CapacityKg, 0) || v.CapacityKg <= 0 {
		return apperr.Reasonf(apperr.Invalid, "capacity must be positive")
	}
	if v.FuelType == "" {
		v.FuelType = domain.FuelDiesel
	}
	if !v.FuelType.Valid() {
		return apperr.Reasonf(apperr.Invalid, "unknown fuel type %q", v.FuelType)
	}
	if v.Status == "" {
		v.Status = domain.VehicleAvailable
	}
	if v.Status == domain.VehicleInUse || !v.Status.Valid() {
		return apperr.Reasonf(apperr.Invalid, "vehicle cannot be created with status %q", v.Status)
	}
	if v.OwnerDriverID != nil && *v.OwnerDriverID <= 0 {
		return apperr.Reasonf(apperr.Invalid, "invalid owner driver id")
	}
	v.AssignedDriverID = nil
	v.CurrentOrderID = nil
	return nil
}

// CreateDriver registers a new driver and returns its generated ID.
func (s *Service) CreateDriver(ctx context.Context, d *domain.Driver) (int64, error) {
	if err := validateDriver(d); err != nil {
		return 0, err
	}
	d.AssignedVehicleID = nil
	d.CurrentOrderID = nil

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := s.drivers.CreateDriver(ctx, d)
	if err != nil {
		if errors.Is(err, apperr.Conflict) {
			return 0, apperr.Reasonf(apperr.Conflict, "driver with this phone or license already exists")
		}
		return 0, err
	}
	s.Announce(ctx, ResourceChange{Resource: "driver", ID: id, Status: string(d.Status)})
	return id, nil
}

// GetDriver retrieves a driver by its ID.
func (s *Service) GetDriver(ctx context.Context, id int64) (*domain.Driver, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	d, err := s.drivers.GetDriver(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.Reasonf(apperr.NotFound, "driver %d", id)
	}
	return d, nil
}

// ListDrivers returns drivers, optionally only those in the given status.
func (s *Service) ListDrivers(ctx context.Context, status *domain.DriverStatus) ([]domain.Driver, error) {
	if status != nil && !status.Valid() {
		return nil, apperr.Reasonf(apperr.Invalid, "unknown driver status %q", *status)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.drivers.ListDrivers(ctx, status)
}

// ListAvailableDrivers returns drivers that can take an order right now.
func (s *Service) ListAvailableDrivers(ctx context.Context) ([]domain.Driver, error) {
	st := domain.DriverAvailable
	return s.ListDrivers(ctx, &st)
}

// UpdateDriverProfile applies a partial profile update.
func (s *Service) UpdateDriverProfile(ctx context.Context, u domain.PartialDriverUpdate) error {
	if err := validateDriverUpdate(&u); err != nil {
		return err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.drivers.UpdateDriverProfile(ctx, u)
	if err != nil {
		if errors.Is(err, apperr.Conflict) {
			return apperr.Reasonf(apperr.Conflict, "driver with this phone or license already exists")
		}
		return err
	}
	if !ok {
		return apperr.Reasonf(apperr.NotFound, "driver %d", u.ID)
	}
	return nil
}

// SetDriverDuty switches a driver between available and off-duty.
// A driver on a trip cannot change duty.
func (s *Service) SetDriverDuty(ctx context.Context, id int64, onDuty bool) (*domain.Driver, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var out *domain.Driver
	err := s.tx.WithTx(ctx, func(tx storetx.Repository) error {
		d, err := tx.GetDriverForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if d == nil {
			return apperr.Reasonf(apperr.NotFound, "driver %d", id)
		}
		if d.Status == domain.DriverOnTrip {
			return &apperr.ResourceUnavailableError{Resource: "driver", ID: id, Status: string(d.Status)}
		}
		d.Status = domain.DriverOffDuty
		if onDuty {
			d.Status = domain.DriverAvailable
		}
		if err := tx.UpdateDriverBinding(ctx, d); err != nil {
			return err
		}
		out = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Announce(ctx, ResourceChange{Resource: "driver", ID: id, Status: string(out.Status)})
	return out, nil
}

// DeleteDriver removes a driver that is not bound to an order.
func (s *Service) DeleteDriver(ctx context.Context, id int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.tx.WithTx(ctx, func(tx storetx.Repository) error {
		d, err := tx.GetDriverForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if d == nil {
			return apperr.Reasonf(apperr.NotFound, "driver %d", id)
		}
		if d.CurrentOrderID != nil {
			return apperr.Reasonf(apperr.Conflict, "driver %d is on order %d", id, *d.CurrentOrderID)
		}
		return tx.DeleteDriver(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info("driver deleted", logx.String("event", "driver_deleted"), logx.Int64("driver_id", id))
	s.Announce(ctx, ResourceChange{Resource: "driver", ID: id, Deleted: true})
	return nil
}

// CreateVehicle registers a new vehicle and returns its generated ID.
func (s *Service) CreateVehicle(ctx context.Context, v *domain.Vehicle) (int64, error) {
	if err := validateVehicle(v); err != nil {
		return 0, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if v.OwnerDriverID != nil {
		owner, err := s.drivers.GetDriver(ctx, *v.OwnerDriverID)
		if err != nil {
			return 0, err
		}
		if owner == nil {
			return 0, apperr.Reasonf(apperr.Invalid, "owner driver %d does not exist", *v.OwnerDriverID)
		}
	}

	id, err := s.vehicles.CreateVehicle(ctx, v)
	if err != nil {
		if errors.Is(err, apperr.Conflict) {
			return 0, apperr.Reasonf(apperr.Conflict, "vehicle %s already registered", v.Number)
		}
		return 0, err
	}
	s.Announce(ctx, ResourceChange{Resource: "vehicle", ID: id, Status: string(v.Status)})
	return id, nil
}

// GetVehicle retrieves a vehicle by its ID.
func (s *Service) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	v, err := s.vehicles.GetVehicle(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperr.Reasonf(apperr.NotFound, "vehicle %d", id)
	}
	return v, nil
}

// ListVehicles returns vehicles filtered by optional status and class.
func (s *Service) ListVehicles(ctx context.Context, status *domain.VehicleStatus, class *domain.VehicleClass) ([]domain.Vehicle, error) {
	if status != nil && !status.Valid() {
		return nil, apperr.Reasonf(apperr.Invalid, "unknown vehicle status %q", *status)
	}
	if class != nil && !class.Valid() {
		return nil, &apperr.UnknownVehicleClassError{Class: string(*class)}
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.vehicles.ListVehicles(ctx, status, class)
}

// ListAvailableVehicles returns vehicles that can be reserved now, optionally of one class.
func (s *Service) ListAvailableVehicles(ctx context.Context, class *domain.VehicleClass) ([]domain.Vehicle, error) {
	st := domain.VehicleAvailable
	return s.ListVehicles(ctx, &st, class)
}

// SetVehicleMaintenance moves a vehicle into or out of maintenance.
// A vehicle in use cannot change.
func (s *Service) SetVehicleMaintenance(ctx context.Context, id int64, maintenance bool) (*domain.Vehicle, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var out *domain.Vehicle
	err := s.tx.WithTx(ctx, func(tx storetx.Repository) error {
		v, err := tx.GetVehicleForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if v == nil {
			return apperr.Reasonf(apperr.NotFound, "vehicle %d", id)
		}
		if v.Status == domain.VehicleInUse {
			return &apperr.ResourceUnavailableError{Resource: "vehicle", ID: id, Status: string(v.Status)}
		}
		v.Status = domain.VehicleAvailable
		if maintenance {
			v.Status = domain.VehicleMaintenance
		}
		if err := tx.UpdateVehicleBinding(ctx, v); err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Announce(ctx, ResourceChange{Resource: "vehicle", ID: id, Status: string(out.Status)})
	return out, nil
}

// DeleteVehicle removes a vehicle that is not bound to an order.
func (s *Service) DeleteVehicle(ctx context.Context, id int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.tx.WithTx(ctx, func(tx storetx.Repository) error {
		v, err := tx.GetVehicleForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if v == nil {
			return apperr.Reasonf(apperr.NotFound, "vehicle %d", id)
		}
		if v.CurrentOrderID != nil {
			return apperr.Reasonf(apperr.Conflict, "vehicle %d is on order %d", id, *v.CurrentOrderID)
		}
		return tx.DeleteVehicle(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info("vehicle deleted", logx.String("event", "vehicle_deleted"), logx.Int64("vehicle_id", id))
	s.Announce(ctx, ResourceChange{Resource: "vehicle", ID: id, Deleted: true})
	return nil
}

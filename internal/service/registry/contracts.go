//go:generate mockgen -source=contracts.go -destination=registry_mocks_test.go -package=registry_test

package registry

import (
	"context"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/feed"
)

// driverRepository defines driver storage operations outside of transactions.
type driverRepository interface {
	CreateDriver(ctx context.Context, d *domain.Driver) (int64, error)
	GetDriver(ctx context.Context, id int64) (*domain.Driver, error)
	ListDrivers(ctx context.Context, status *domain.DriverStatus) ([]domain.Driver, error)
	UpdateDriverProfile(ctx context.Context, u domain.PartialDriverUpdate) (bool, error)
}

// vehicleRepository defines vehicle storage operations outside of transactions.
type vehicleRepository interface {
	CreateVehicle(ctx context.Context, v *domain.Vehicle) (int64, error)
	GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, status *domain.VehicleStatus, class *domain.VehicleClass) ([]domain.Vehicle, error)
}

type publisher interface {
	Publish(ctx context.Context, topic string, typ feed.EventType, payload any) feed.Event
}

package storetx

import (
	"context"

	"delivery-dispatch/internal/domain"
)

// Repository is the set of row operations available inside one store
// transaction. Getters lock the returned row until the transaction ends and
// return (nil, nil) when the row does not exist. Callers take locks in the
// order order -> driver -> vehicle.
type Repository interface {
	InsertOrder(ctx context.Context, o *domain.Order) error
	GetOrderForUpdate(ctx context.Context, id int64) (*domain.Order, error)
	UpdateOrder(ctx context.Context, o *domain.Order) error
	AppendOrderEvent(ctx context.Context, e *domain.OrderEvent) error

	GetDriverForUpdate(ctx context.Context, id int64) (*domain.Driver, error)
	UpdateDriverBinding(ctx context.Context, d *domain.Driver) error
	DeleteDriver(ctx context.Context, id int64) error

	GetVehicleForUpdate(ctx context.Context, id int64) (*domain.Vehicle, error)
	UpdateVehicleBinding(ctx context.Context, v *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id int64) error
}

// Runner is a transaction runner. fn's writes are applied atomically when it
// returns nil and discarded otherwise.
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}

package handlers

//go:generate mockgen -source=contracts.go -destination=handlers_mocks_test.go -package=handlers_test

import (
	"context"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/service/assignment"
	"delivery-dispatch/internal/service/lifecycle"
)

type orderUsecase interface {
	Quote(ctx context.Context, req lifecycle.QuoteRequest) (domain.Quote, error)
	Create(ctx context.Context, cmd lifecycle.CreateCommand) (*domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error)
	History(ctx context.Context, id int64) ([]domain.OrderEvent, error)
	StartRoute(ctx context.Context, orderID, driverID int64) (*domain.Order, error)
	ConfirmPickup(ctx context.Context, orderID, driverID int64) (*domain.Order, error)
	Rate(ctx context.Context, cmd lifecycle.RateCommand) (*domain.Order, error)
}

type assignmentUsecase interface {
	Assign(ctx context.Context, cmd assignment.AssignCommand) (*domain.Order, error)
	CompleteDelivery(ctx context.Context, cmd assignment.CompleteCommand) (*domain.Order, error)
	Cancel(ctx context.Context, cmd assignment.CancelCommand) (*domain.Order, error)
}

type registryUsecase interface {
	CreateDriver(ctx context.Context, d *domain.Driver) (int64, error)
	GetDriver(ctx context.Context, id int64) (*domain.Driver, error)
	ListDrivers(ctx context.Context, status *domain.DriverStatus) ([]domain.Driver, error)
	ListAvailableDrivers(ctx context.Context) ([]domain.Driver, error)
	UpdateDriverProfile(ctx context.Context, u domain.PartialDriverUpdate) error
	SetDriverDuty(ctx context.Context, id int64, onDuty bool) (*domain.Driver, error)
	DeleteDriver(ctx context.Context, id int64) error

	CreateVehicle(ctx context.Context, v *domain.Vehicle) (int64, error)
	GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, status *domain.VehicleStatus, class *domain.VehicleClass) ([]domain.Vehicle, error)
	ListAvailableVehicles(ctx context.Context, class *domain.VehicleClass) ([]domain.Vehicle, error)
	SetVehicleMaintenance(ctx context.Context, id int64, maintenance bool) (*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, id int64) error
}

type inboxUsecase interface {
	List(ctx context.Context, userID int64, role domain.Role, unreadOnly bool, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID int64, role domain.Role, id int64) error
	MarkAllRead(ctx context.Context, userID int64, role domain.Role) (int64, error)
	UnreadCount(ctx context.Context, userID int64, role domain.Role) (int64, error)
}

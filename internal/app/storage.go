package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-dispatch/internal/config"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/ports/storetx"
	"delivery-dispatch/internal/repository"
	"delivery-dispatch/internal/repository/memory"
)

const schemaTimeout = 10 * time.Second

type orderStore interface {
	storetx.Runner
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error)
	ListOrderEvents(ctx context.Context, orderID int64) ([]domain.OrderEvent, error)
}

type driverStore interface {
	CreateDriver(ctx context.Context, d *domain.Driver) (int64, error)
	GetDriver(ctx context.Context, id int64) (*domain.Driver, error)
	ListDrivers(ctx context.Context, status *domain.DriverStatus) ([]domain.Driver, error)
	UpdateDriverProfile(ctx context.Context, u domain.PartialDriverUpdate) (bool, error)
}

type vehicleStore interface {
	CreateVehicle(ctx context.Context, v *domain.Vehicle) (int64, error)
	GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, status *domain.VehicleStatus, class *domain.VehicleClass) ([]domain.Vehicle, error)
}

type inboxStore interface {
	InsertNotification(ctx context.Context, n *domain.Notification) error
	ListNotifications(ctx context.Context, userID int64, role domain.Role, unreadOnly bool, limit int) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, userID int64, role domain.Role, id int64, at time.Time) (bool, error)
	MarkAllNotificationsRead(ctx context.Context, userID int64, role domain.Role, at time.Time) (int64, error)
	CountUnreadNotifications(ctx context.Context, userID int64, role domain.Role) (int64, error)
}

// Stores is the storage backend shared by the services.
type Stores struct {
	Orders   orderStore
	Drivers  driverStore
	Vehicles vehicleStore
	Inbox    inboxStore
	Backend  string

	close func()
}

// Close releases the backend. Safe on nil.
func (s *Stores) Close() {
	if s == nil || s.close == nil {
		return
	}
	s.close()
}

type dbConnectFunc func(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error)

var (
	newPool      = repository.NewPool
	ensureSchema = repository.EnsureSchema
)

func newStores(ctx context.Context, cfg *config.Config, logger logx.Logger, connect dbConnectFunc) (*Stores, error) {
	if cfg.Storage == config.StorageMemory {
		logger.Warn("in-memory storage selected, state is lost on restart")
		s := memory.NewStore()
		return &Stores{Orders: s, Drivers: s, Vehicles: s, Inbox: s, Backend: config.StorageMemory}, nil
	}

	pool, err := connect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
	if err != nil {
		return nil, err
	}

	schemaCtx, cancel := context.WithTimeout(ctx, schemaTimeout)
	defer cancel()
	if err := ensureSchema(schemaCtx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &Stores{
		Orders:   repository.NewOrderRepo(pool),
		Drivers:  repository.NewDriverRepo(pool),
		Vehicles: repository.NewVehicleRepo(pool),
		Inbox:    repository.NewNotificationRepo(pool),
		Backend:  config.StoragePostgres,
		close:    pool.Close,
	}, nil
}

func connectDbWithRetry(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error) {
	var lastErr error
	const attemptTimeout = 3 * time.Second
	for i := 1; i <= retries; i++ {
		retriesCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		pool, err := newPool(retriesCtx, dsn)
		cancel()
		if err == nil {
			logger.Info("db connected", logx.Int("attempt", i))
			return pool, nil
		}
		lastErr = err
		logger.Warn("db connect failed",
			logx.Int("attempt", i),
			logx.Int("retries", retries),
			logx.Err(err),
		)
		if i < retries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return nil, fmt.Errorf("db connect failed after %d attempts: %w", retries, lastErr)
}

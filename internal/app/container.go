package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"

	"delivery-dispatch/internal/config"
	"delivery-dispatch/internal/feed"
	"delivery-dispatch/internal/http/debugserver"
	"delivery-dispatch/internal/http/handlers"
	obs "delivery-dispatch/internal/http/middleware"
	"delivery-dispatch/internal/http/middleware/ratelimit"
	"delivery-dispatch/internal/http/router"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/metrics"
	"delivery-dispatch/internal/service/assignment"
	"delivery-dispatch/internal/service/lifecycle"
	"delivery-dispatch/internal/service/notification"
	"delivery-dispatch/internal/service/pricing"
	"delivery-dispatch/internal/service/registry"
	"delivery-dispatch/internal/transport/kafka"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect  dbConnectFunc
	loadConfig func() (*config.Config, error)
	newLogger  func() logx.Logger
	logFatalf  func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect:  connectDbWithRetry,
		loadConfig: config.Load,
		newLogger:  NewLogger,
		logFatalf:  log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithConfig sets the configuration loader
func (b *ContainerBuilder) WithConfig(fn func() (*config.Config, error)) *ContainerBuilder {
	if fn != nil {
		b.loadConfig = fn
	}
	return b
}

// WithLogger sets the logger constructor
func (b *ContainerBuilder) WithLogger(fn func() logx.Logger) *ContainerBuilder {
	if fn != nil {
		b.newLogger = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the API container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds the Kafka worker container
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container, err := b.buildShared(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container, err := b.buildShared(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildShared(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig, b.newLogger); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerMetrics(container); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerStorage(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	if err := registerFeed(container); err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns the API container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds and returns the worker container
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(
	container *dig.Container,
	ctx context.Context,
	loadConfig func() (*config.Config, error),
	newLogger func() logx.Logger,
) error {
	return provideAll(container,
		func() context.Context { return ctx },
		newLogger,
		loadConfig,
	)
}

type metricsOut struct {
	dig.Out

	Registry    *prometheus.Registry
	Dispatch    *metrics.Dispatch
	HTTP        *obs.HTTPMetrics
	RateLimited prometheus.Counter `name:"http_rate_limited_total"`
}

func provideMetrics() (metricsOut, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return metricsOut{}, fmt.Errorf("register go collector: %w", err)
	}
	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return metricsOut{}, fmt.Errorf("register process collector: %w", err)
	}

	dispatch, err := metrics.NewDispatch(reg)
	if err != nil {
		return metricsOut{}, fmt.Errorf("register dispatch metrics: %w", err)
	}
	httpMetrics, err := obs.NewHTTPMetrics(reg)
	if err != nil {
		return metricsOut{}, fmt.Errorf("register http metrics: %w", err)
	}
	limited := metrics.NewRateLimitedTotal()
	if err := reg.Register(limited); err != nil {
		return metricsOut{}, fmt.Errorf("register http_rate_limited_total: %w", err)
	}

	return metricsOut{
		Registry:    reg,
		Dispatch:    dispatch,
		HTTP:        httpMetrics,
		RateLimited: limited,
	}, nil
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container, provideMetrics)
}

func registerStorage(container *dig.Container, connect dbConnectFunc) error {
	providerStores := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*Stores, error) {
		return newStores(ctx, cfg, logger, connect)
	}
	return provideAll(container, providerStores)
}

func registerFeed(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config, logger logx.Logger) (*kafka.FeedSink, error) {
			return kafka.NewFeedSink(cfg.Kafka.Brokers, cfg.Kafka.FeedTopic, logger)
		},
		func(cfg *config.Config, logger logx.Logger, m *metrics.Dispatch, sink *kafka.FeedSink) *feed.Hub {
			// typed nil в интерфейсе сломает проверку sink != nil внутри хаба
			var s feed.Sink
			if sink != nil {
				s = sink
			}
			return feed.NewHub(cfg.Feed.SubscriberBuffer, logger, m, s)
		},
	)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		func() *pricing.Engine { return pricing.NewEngine(nil, 0) },
		func(cfg *config.Config, st *Stores, hub *feed.Hub, logger logx.Logger, m *metrics.Dispatch) *notification.Dispatcher {
			return notification.NewDispatcher(st.Inbox, hub, cfg.Assignment.AdminIDs,
				cfg.Assignment.OperationTimeout, logger, m)
		},
		func(
			cfg *config.Config,
			st *Stores,
			engine *pricing.Engine,
			inbox *notification.Dispatcher,
			hub *feed.Hub,
			logger logx.Logger,
			m *metrics.Dispatch,
		) *lifecycle.Service {
			return lifecycle.NewService(st.Orders, st.Orders, engine, inbox, hub,
				cfg.Assignment.OperationTimeout, logger, m)
		},
		func(
			cfg *config.Config,
			st *Stores,
			engine *pricing.Engine,
			inbox *notification.Dispatcher,
			hub *feed.Hub,
			logger logx.Logger,
			m *metrics.Dispatch,
		) *assignment.Orchestrator {
			return assignment.NewOrchestrator(st.Orders, engine, inbox, hub,
				cfg.Assignment.OperationTimeout, logger, m)
		},
		func(cfg *config.Config, st *Stores, hub *feed.Hub, logger logx.Logger) *registry.Service {
			return registry.NewService(st.Drivers, st.Vehicles, st.Orders, hub,
				cfg.Assignment.OperationTimeout, logger)
		},
	)
}

type routerIn struct {
	dig.In

	Logger        logx.Logger
	Metrics       *obs.HTTPMetrics
	Registry      *prometheus.Registry
	RateLimit     *ratelimit.Middleware
	Base          *handlers.Handlers
	Orders        *handlers.OrderHandler
	Drivers       *handlers.RegistryHandler
	Notifications *handlers.NotificationHandler
	Feed          *handlers.FeedHandler
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Logger:        in.Logger,
		Metrics:       in.Metrics,
		Gatherer:      in.Registry,
		RateLimit:     in.RateLimit,
		Base:          in.Base,
		Orders:        in.Orders,
		Registry:      in.Drivers,
		Notifications: in.Notifications,
		Feed:          in.Feed,
	})
}

type debugServerOut struct {
	dig.Out

	Server *http.Server `name:"debug_server"`
}

func newDebugServer(cfg *config.Config, hub *feed.Hub) debugServerOut {
	if cfg.Debug.Addr == "" {
		return debugServerOut{}
	}
	return debugServerOut{Server: &http.Server{
		Addr: cfg.Debug.Addr,
		Handler: debugserver.Handler(debugserver.Config{
			User: cfg.Debug.User,
			Pass: cfg.Debug.Pass,
		}, hub),
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			// без WriteTimeout: /ws/feed держит соединение открытым
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		func(logger logx.Logger, lc *lifecycle.Service, orch *assignment.Orchestrator) *handlers.OrderHandler {
			return handlers.NewOrderHandler(logger, lc, orch)
		},
		func(logger logx.Logger, svc *registry.Service) *handlers.RegistryHandler {
			return handlers.NewRegistryHandler(logger, svc)
		},
		func(logger logx.Logger, inbox *notification.Dispatcher) *handlers.NotificationHandler {
			return handlers.NewNotificationHandler(logger, inbox)
		},
		func(logger logx.Logger, hub *feed.Hub) *handlers.FeedHandler {
			return handlers.NewFeedHandler(logger, hub)
		},
		newRateLimitMiddleware,
		newRouter,
		serverProvider,
		newDebugServer,
	)
}

package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"delivery-dispatch/internal/http/handlers"
	obs "delivery-dispatch/internal/http/middleware"
	"delivery-dispatch/internal/http/middleware/ratelimit"
	"delivery-dispatch/internal/logx"
)

const requestTimeout = 5 * time.Second

// Deps groups everything the router mounts. Nil optional parts are skipped.
type Deps struct {
	Logger        logx.Logger
	Metrics       *obs.HTTPMetrics
	Gatherer      prometheus.Gatherer
	RateLimit     *ratelimit.Middleware
	Base          *handlers.Handlers
	Orders        *handlers.OrderHandler
	Registry      *handlers.RegistryHandler
	Notifications *handlers.NotificationHandler
	Feed          *handlers.FeedHandler
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(obs.Observability(d.Logger, d.Metrics))
	r.Use(middleware.Recoverer)

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}
	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	// вебсокет живёт дольше requestTimeout, поэтому вне группы
	if d.Feed != nil {
		r.Get("/ws/feed", d.Feed.Stream)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		if d.RateLimit != nil {
			r.Use(d.RateLimit.Handler())
		}

		if d.Orders != nil {
			r.Post("/quotes", d.Orders.Quote)
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", d.Orders.Create)
				r.Get("/", d.Orders.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", d.Orders.Get)
					r.Get("/events", d.Orders.History)
					r.Post("/assign", d.Orders.Assign)
					r.Post("/start-route", d.Orders.StartRoute)
					r.Post("/pickup", d.Orders.Pickup)
					r.Post("/complete", d.Orders.Complete)
					r.Post("/cancel", d.Orders.Cancel)
					r.Post("/rating", d.Orders.Rate)
				})
			})
		}

		if d.Registry != nil {
			r.Route("/drivers", func(r chi.Router) {
				r.Post("/", d.Registry.CreateDriver)
				r.Get("/", d.Registry.ListDrivers)
				r.Get("/available", d.Registry.ListAvailableDrivers)
				r.Get("/{id}", d.Registry.GetDriver)
				r.Patch("/{id}", d.Registry.UpdateDriver)
				r.Post("/{id}/duty", d.Registry.SetDuty)
				r.Delete("/{id}", d.Registry.DeleteDriver)
			})
			r.Route("/vehicles", func(r chi.Router) {
				r.Post("/", d.Registry.CreateVehicle)
				r.Get("/", d.Registry.ListVehicles)
				r.Get("/available", d.Registry.ListAvailableVehicles)
				r.Get("/{id}", d.Registry.GetVehicle)
				r.Post("/{id}/maintenance", d.Registry.SetMaintenance)
				r.Delete("/{id}", d.Registry.DeleteVehicle)
			})
		}

		if d.Notifications != nil {
			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", d.Notifications.List)
				r.Get("/unread-count", d.Notifications.UnreadCount)
				r.Post("/read-all", d.Notifications.MarkAllRead)
				r.Post("/{id}/read", d.Notifications.MarkRead)
			})
		}
	})

	return r
}

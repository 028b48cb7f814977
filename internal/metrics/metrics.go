package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewAssignmentsTotal returns a Prometheus counter of assignment attempts partitioned by result
func NewAssignmentsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assignments_total",
		Help: "Total number of order assignment attempts by result",
	}, []string{"result"})
}

// NewOrderTransitionsTotal returns a Prometheus counter of committed order status changes
func NewOrderTransitionsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_transitions_total",
		Help: "Total number of committed order status transitions by target status",
	}, []string{"to"})
}

// NewNotificationsCreatedTotal returns a Prometheus counter of stored notifications
func NewNotificationsCreatedTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_created_total",
		Help: "Total number of notifications appended to inboxes by type",
	}, []string{"type"})
}

// NewFeedEventsDroppedTotal returns a Prometheus counter of change feed events dropped on slow subscribers
func NewFeedEventsDroppedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feed_events_dropped_total",
		Help: "Total number of change feed events dropped because a subscriber buffer was full",
	})
}

// NewRateLimitedTotal returns a Prometheus counter of write requests rejected by the rate limiter
func NewRateLimitedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "http_rate_limited_total",
		Help: "Total number of write requests rejected by the rate limiter",
	})
}

// Dispatch groups the domain counters. A nil *Dispatch records nothing.
type Dispatch struct {
	Assignments   *prometheus.CounterVec
	Transitions   *prometheus.CounterVec
	Notifications *prometheus.CounterVec
	FeedDropped   prometheus.Counter
}

// NewDispatch creates the domain counters and registers them on reg when it is not nil.
func NewDispatch(reg prometheus.Registerer) (*Dispatch, error) {
	m := &Dispatch{
		Assignments:   NewAssignmentsTotal(),
		Transitions:   NewOrderTransitionsTotal(),
		Notifications: NewNotificationsCreatedTotal(),
		FeedDropped:   NewFeedEventsDroppedTotal(),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Assignments, m.Transitions, m.Notifications, m.FeedDropped} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// AssignmentResult counts one assignment attempt.
func (m *Dispatch) AssignmentResult(result string) {
	if m == nil {
		return
	}
	m.Assignments.WithLabelValues(result).Inc()
}

// Transition counts one committed status change.
func (m *Dispatch) Transition(to string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(to).Inc()
}

// NotificationCreated counts one stored notification.
func (m *Dispatch) NotificationCreated(kind string) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(kind).Inc()
}

// FeedEventDropped counts one dropped feed event.
func (m *Dispatch) FeedEventDropped() {
	if m == nil {
		return
	}
	m.FeedDropped.Inc()
}

package ratelimit

import (
	"io"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"delivery-dispatch/internal/logx"
)

// KeyFunc picks the bucket a request is charged to.
type KeyFunc func(r *http.Request) string

// Middleware throttles state-changing requests. Reads pass through.
type Middleware struct {
	logger  logx.Logger
	denied  prometheus.Counter
	limiter Limiter
	key     KeyFunc
}

// New creates a new Middleware. A nil limiter disables throttling, a nil key uses the client IP.
func New(logger logx.Logger, denied prometheus.Counter, limiter Limiter, key KeyFunc) *Middleware {
	if logger == nil {
		logger = logx.Nop()
	}
	if key == nil {
		key = ClientIP
	}
	return &Middleware{
		logger:  logger,
		denied:  denied,
		limiter: limiter,
		key:     key,
	}
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m.limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if safeMethod(r.Method) {
				next.ServeHTTP(w, r)
				return
			}
			key := m.key(r)
			if m.limiter.Allow(key) {
				next.ServeHTTP(w, r)
				return
			}

			if m.denied != nil {
				m.denied.Inc()
			}
			m.logger.Warn("rate limit exceeded",
				logx.String("key", key),
				logx.String("method", r.Method),
				logx.String("path", r.URL.Path),
			)
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := io.WriteString(w, `{"error":"too many requests"}`); err != nil {
				// клиент мог оборвать соединение
				m.logger.Debug("rate limit response write failed", logx.Err(err))
			}
		})
	}
}

func safeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// ClientIP keys by remote host. Run it after chi's RealIP so proxies are honoured.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

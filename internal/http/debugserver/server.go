package debugserver

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Config stores debug listener credentials. Loopback clients skip auth.
type Config struct {
	User string
	Pass string
}

// FeedStats reports live change feed subscribers per topic.
type FeedStats interface {
	Stats() map[string]int
}

// Handler serves pprof under /debug/pprof and feed subscribers under /debug/feed.
func Handler(cfg Config, feed FeedStats) http.Handler {
	r := chi.NewRouter()
	r.Use(localOrBasicAuth(cfg))
	r.Get("/debug/feed", func(w http.ResponseWriter, _ *http.Request) {
		stats := map[string]int{}
		if feed != nil {
			stats = feed.Stats()
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(stats)
	})
	r.Mount("/debug", chimw.Profiler())
	return r
}

func localOrBasicAuth(cfg Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		authed := deny()
		if cfg.User != "" && cfg.Pass != "" {
			authed = chimw.BasicAuth("debug", map[string]string{cfg.User: cfg.Pass})(next)
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isLoopback(r.RemoteAddr) {
				next.ServeHTTP(w, r)
				return
			}
			authed.ServeHTTP(w, r)
		})
	}
}

// deny is used when no credentials are configured: only loopback gets in.
func deny() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("WWW-Authenticate", `Basic realm="debug"`)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}

func isLoopback(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	ip := net.ParseIP(strings.TrimSpace(host))
	return ip != nil && ip.IsLoopback()
}

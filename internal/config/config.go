package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Storage backends.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config stores service settings.
type Config struct {
	Port       int
	Storage    string
	DB         DB
	Kafka      Kafka
	Assignment Assignment
	Feed       Feed
	RateLimit  RateLimit
	Debug      Debug
}

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN returns a pgx connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		d.User, d.Pass, net.JoinHostPort(d.Host, d.Port), d.Name)
}

// Kafka stores broker settings. Empty brokers disable Kafka.
type Kafka struct {
	Brokers          []string
	GroupID          string
	OrderEventsTopic string
	FeedTopic        string
}

// Enabled reports whether any broker is configured.
func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

// Assignment stores orchestration settings.
type Assignment struct {
	OperationTimeout time.Duration
	AdminIDs         []int64
}

// Feed stores change feed settings.
type Feed struct {
	SubscriberBuffer int
}

// RateLimit stores write throttling settings. Zero disables it.
type RateLimit struct {
	PerMinute int
}

// Debug stores the pprof listener settings. Empty Addr disables it.
type Debug struct {
	Addr string
	User string
	Pass string
}

// Load reads configuration in order: .env (if present) → environment → flags from os.Args.
func Load() (*Config, error) {
	return LoadFrom(os.Args[1:])
}

// LoadFrom is Load with explicit command line arguments.
func LoadFrom(args []string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		Port:       defaultPort,
		Storage:    defaultStorage,
		DB:         DefaultDB(),
		Kafka:      DefaultKafka(),
		Assignment: DefaultAssignment(),
		Feed:       Feed{SubscriberBuffer: defaultSubscriberBuffer},
		Debug:      Debug{},
	}

	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return nil, err
	}
	cfg.Storage = envString("STORAGE", cfg.Storage)

	cfg.DB.Host = envString("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envString("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = envString("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = envString("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = envString("POSTGRES_DB", cfg.DB.Name)

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	cfg.Kafka.GroupID = envString("KAFKA_GROUP_ID", cfg.Kafka.GroupID)
	cfg.Kafka.OrderEventsTopic = envString("KAFKA_ORDER_EVENTS_TOPIC", cfg.Kafka.OrderEventsTopic)
	cfg.Kafka.FeedTopic = envString("KAFKA_FEED_TOPIC", cfg.Kafka.FeedTopic)

	if cfg.Assignment.OperationTimeout, err = envDuration("OPERATION_TIMEOUT", cfg.Assignment.OperationTimeout); err != nil {
		return nil, err
	}
	if v := os.Getenv("ADMIN_IDS"); v != "" {
		if cfg.Assignment.AdminIDs, err = parseIDs(v); err != nil {
			return nil, fmt.Errorf("ADMIN_IDS: %w", err)
		}
	}
	if cfg.Feed.SubscriberBuffer, err = envInt("FEED_SUBSCRIBER_BUFFER", cfg.Feed.SubscriberBuffer); err != nil {
		return nil, err
	}
	if cfg.RateLimit.PerMinute, err = envInt("RATE_LIMIT_PER_MINUTE", cfg.RateLimit.PerMinute); err != nil {
		return nil, err
	}
	cfg.Debug.Addr = envString("DEBUG_ADDR", cfg.Debug.Addr)
	cfg.Debug.User = envString("DEBUG_USER", cfg.Debug.User)
	cfg.Debug.Pass = envString("DEBUG_PASS", cfg.Debug.Pass)

	flags := pflag.NewFlagSet("dispatch", pflag.ContinueOnError)
	flags.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	flags.StringVar(&cfg.Storage, "storage", cfg.Storage, "storage backend: postgres or memory")
	flags.StringSliceVar(&cfg.Kafka.Brokers, "kafka-brokers", cfg.Kafka.Brokers, "comma separated Kafka brokers")
	flags.DurationVar(&cfg.Assignment.OperationTimeout, "operation-timeout", cfg.Assignment.OperationTimeout, "per operation storage timeout")
	flags.StringVar(&cfg.Debug.Addr, "debug-addr", cfg.Debug.Addr, "pprof listen address, empty disables")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Storage != StoragePostgres && c.Storage != StorageMemory {
		return fmt.Errorf("invalid storage %q", c.Storage)
	}
	if p, err := strconv.Atoi(c.DB.Port); c.Storage == StoragePostgres && (err != nil || p <= 0 || p > 65535) {
		return fmt.Errorf("invalid postgres port: %q", c.DB.Port)
	}
	if c.Assignment.OperationTimeout <= 0 {
		return fmt.Errorf("invalid operation timeout: %s", c.Assignment.OperationTimeout)
	}
	if c.Feed.SubscriberBuffer <= 0 {
		return fmt.Errorf("invalid feed subscriber buffer: %d", c.Feed.SubscriberBuffer)
	}
	if c.RateLimit.PerMinute < 0 {
		return fmt.Errorf("invalid rate limit: %d", c.RateLimit.PerMinute)
	}
	return nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseIDs(v string) ([]int64, error) {
	parts := splitList(v)
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q", p)
		}
		out = append(out, id)
	}
	return out, nil
}

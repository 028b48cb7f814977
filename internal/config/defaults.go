package config

import "time"

const (
	defaultPort             = 8080
	defaultStorage          = StoragePostgres
	defaultSubscriberBuffer = 64
)

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "dispatch",
	Pass: "dispatch",
	Name: "dispatch",
}

var defaultKafka = Kafka{
	GroupID:          "dispatch-worker",
	OrderEventsTopic: "order-status-events",
	FeedTopic:        "dispatch-feed",
}

var defaultAssignment = Assignment{
	OperationTimeout: 3 * time.Second,
	AdminIDs:         []int64{1},
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default Kafka settings. Brokers are empty, so Kafka is off.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultAssignment returns the default orchestration settings.
func DefaultAssignment() Assignment {
	a := defaultAssignment
	a.AdminIDs = append([]int64(nil), defaultAssignment.AdminIDs...)
	return a
}

package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/dig"

	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/transport/kafka"
)

// WorkerRunner runs the Kafka order event worker
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun consumes order events until the container context is cancelled
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

type workerIn struct {
	dig.In

	Ctx      context.Context
	Logger   logx.Logger
	Consumer *kafka.Consumer
	Stores   *Stores
	Sink     *kafka.FeedSink
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(in workerIn) error {
	if in.Consumer == nil {
		return fmt.Errorf("kafka consumer is nil: set KAFKA_BROKERS and KAFKA_ORDER_EVENTS_TOPIC")
	}
	defer closeWorker(in)

	in.Logger.Info("dispatch-worker started", logx.String("storage", in.Stores.Backend))
	return in.Consumer.Run(in.Ctx)
}

func closeWorker(in workerIn) {
	if err := in.Consumer.Close(); err != nil {
		in.Logger.Error("kafka close error", logx.Err(err))
	}
	closeResources(in.Stores, in.Sink, in.Logger)
}

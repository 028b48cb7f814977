package app

import (
	"context"
	"time"

	"go.uber.org/dig"

	"delivery-dispatch/internal/config"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/service/assignment"
	"delivery-dispatch/internal/service/lifecycle"
	"delivery-dispatch/internal/service/orders"
	"delivery-dispatch/internal/transport/kafka"
)

// eventTimeout bounds one order event, notifications included.
const eventTimeout = 5 * time.Second

type eventHandler interface {
	Handle(ctx context.Context, e orders.Event) error
}

func makeOrdersKafka(h eventHandler) kafka.HandleFunc {
	return func(ctx context.Context, event orders.Event) error {
		evCtx, cancel := context.WithTimeout(ctx, eventTimeout)
		defer cancel()
		return h.Handle(evCtx, event)
	}
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(lc *lifecycle.Service, orch *assignment.Orchestrator, logger logx.Logger) *orders.Processor {
			return orders.NewProcessor(lc, orch, logger)
		},
		func(cfg *config.Config, logger logx.Logger, p *orders.Processor) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID,
				cfg.Kafka.OrderEventsTopic, makeOrdersKafka(p))
		},
	)
}

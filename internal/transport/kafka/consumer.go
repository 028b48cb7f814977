package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/service/orders"
)

// HandleFunc processes a single orders.Event from Kafka
type HandleFunc func(context.Context, orders.Event) error

const defaultAttempts = 3

var newConsumerGroup = sarama.NewConsumerGroup

// Consumer wraps a Sarama consumer group and dispatches events to a handler
type Consumer struct {
	group    sarama.ConsumerGroup
	topic    string
	handler  HandleFunc
	logger   logx.Logger
	attempts int
	backoff  func(attempt int) time.Duration
}

// NewConsumer creates a new Kafka consumer. It returns nil, nil when Kafka is not configured.
func NewConsumer(logger logx.Logger, brokers []string, groupID, topic string, h HandleFunc) (*Consumer, error) {
	// не стратую если у кафки нет настроек
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		return nil, nil
	}
	if logger == nil {
		logger = logx.Nop()
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := newConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:    group,
		topic:    topic,
		handler:  h,
		logger:   logger.With(logx.String("topic", topic)),
		attempts: defaultAttempts,
		backoff:  linearBackoff,
	}, nil
}

func linearBackoff(attempt int) time.Duration {
	return time.Duration(attempt) * 200 * time.Millisecond
}

// Run consumes until ctx is cancelled
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}

	for {
		if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("kafka consume error", logx.Err(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
			}
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close closes the consumer group
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		var dto EventDTO
		if err := json.Unmarshal(msg.Value, &dto); err != nil {
			h.c.logger.Warn("kafka bad json", logx.Err(err), logx.Int64("offset", msg.Offset))
			sess.MarkMessage(msg, "")
			continue
		}
		if dto.OrderID <= 0 {
			h.c.logger.Warn("kafka empty order_id", logx.Int64("offset", msg.Offset))
			sess.MarkMessage(msg, "")
			continue
		}

		if err := h.c.handle(sess.Context(), ToDomain(dto)); err != nil {
			if ctxErr := sess.Context().Err(); ctxErr != nil {
				// без MarkMessage: сообщение перечитаем после ребаланса
				return nil
			}
			h.c.logger.Error("kafka handle failed, skipping message",
				logx.Int64("order_id", dto.OrderID),
				logx.String("status", dto.Status),
				logx.Err(err),
			)
		}

		sess.MarkMessage(msg, "")
	}
	return nil
}

// handle retries failures in place before the message is given up on.
func (c *Consumer) handle(ctx context.Context, ev orders.Event) error {
	attempts := c.attempts
	if attempts <= 0 {
		attempts = 1
	}
	var err error
	for i := 1; i <= attempts; i++ {
		if err = c.handler(ctx, ev); err == nil {
			return nil
		}
		if i == attempts {
			return err
		}
		c.logger.Warn("kafka handle failed, retry",
			logx.Int64("order_id", ev.OrderID),
			logx.Int("attempt", i),
			logx.Err(err),
		)
		wait := time.Duration(0)
		if c.backoff != nil {
			wait = c.backoff(i)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return err
}

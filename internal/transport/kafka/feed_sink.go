package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/IBM/sarama"

	"delivery-dispatch/internal/feed"
	"delivery-dispatch/internal/logx"
)

var newAsyncProducer = sarama.NewAsyncProducer

// ErrFeedBufferFull is returned when the producer input is saturated and the event is dropped
var ErrFeedBufferFull = errors.New("feed mirror buffer full")

// FeedSink mirrors change feed events to a Kafka topic, keyed by feed topic.
// Delivery is at-most-once; events of one feed topic keep their order.
type FeedSink struct {
	producer sarama.AsyncProducer
	topic    string
	logger   logx.Logger
	done     chan struct{}
}

// NewFeedSink creates a producer for the feed topic. It returns nil, nil when Kafka is not configured.
func NewFeedSink(brokers []string, topic string, logger logx.Logger) (*FeedSink, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = false
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	// один запрос в полёте, иначе ретраи переставят сообщения
	cfg.Net.MaxOpenRequests = 1

	p, err := newAsyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return newFeedSink(p, topic, logger), nil
}

func newFeedSink(p sarama.AsyncProducer, topic string, logger logx.Logger) *FeedSink {
	if logger == nil {
		logger = logx.Nop()
	}
	s := &FeedSink{
		producer: p,
		topic:    topic,
		logger:   logger.With(logx.String("kafka_topic", topic)),
		done:     make(chan struct{}),
	}
	go s.drainErrors()
	return s
}

func (s *FeedSink) drainErrors() {
	defer close(s.done)
	for perr := range s.producer.Errors() {
		var feedTopic string
		if perr.Msg != nil && perr.Msg.Key != nil {
			if k, err := perr.Msg.Key.Encode(); err == nil {
				feedTopic = string(k)
			}
		}
		s.logger.Warn("feed mirror send failed",
			logx.String("feed_topic", feedTopic),
			logx.Err(perr.Err),
		)
	}
}

// Publish implements feed.Sink. It never blocks: a full producer buffer drops the event.
func (s *FeedSink) Publish(ctx context.Context, e feed.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal feed event: %w", err)
	}
	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(e.Topic),
		Value: sarama.ByteEncoder(b),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(e.Type)},
		},
	}
	select {
	case s.producer.Input() <- msg:
		return nil
	default:
		return ErrFeedBufferFull
	}
}

// Close flushes buffered messages and waits for the error drain to finish
func (s *FeedSink) Close() error {
	if s == nil {
		return nil
	}
	s.producer.AsyncClose()
	<-s.done
	return nil
}

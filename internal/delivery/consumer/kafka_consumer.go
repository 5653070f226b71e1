// Package consumer reads stats events from Kafka and applies them through the stats router.
package consumer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"catalog/config"
	"catalog/internal/delivery"
	"catalog/internal/delivery/worker/handler"
	"catalog/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

const (
	defaultMaxAttempts = 5
	defaultBackoff     = 500 * time.Millisecond
	maxBackoff         = 10 * time.Second
)

// messageReader is the part of *kafka.Reader the consumer uses.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaConsumer struct {
	reader      messageReader
	router      *handler.StatsEventRouter
	logger      *slog.Logger
	maxAttempts int
	backoff     time.Duration
	sleep       func(ctx context.Context, d time.Duration) error

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// ConsumerParams holds dependencies for the Kafka consumer, injected by Fx.
type ConsumerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Router *handler.StatsEventRouter
}

// NewKafkaConsumer creates the consumer delivery. It reads every configured stats topic
// with one consumer group.
func NewKafkaConsumer(params ConsumerParams) (delivery.Delivery, error) {
	cfg := params.Cfg.Kafka
	if cfg == nil || len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are required for the stats consumer")
	}
	if len(cfg.StatsTopics) == 0 {
		return nil, errors.New("at least one stats topic is required for the stats consumer")
	}
	if cfg.GroupID == "" {
		return nil, errors.New("kafka group id is required for the stats consumer")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		GroupTopics:    cfg.StatsTopics,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0,
		StartOffset:    kafka.FirstOffset,
	})

	c := newKafkaConsumer(reader, params.Router, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c, nil
}

func newKafkaConsumer(reader messageReader, router *handler.StatsEventRouter, logger *slog.Logger) *kafkaConsumer {
	return &kafkaConsumer{
		reader:      reader,
		router:      router,
		logger:      logger,
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
		sleep:       sleepContext,
		done:        make(chan struct{}),
	}
}

// Serve fetches, applies and commits messages one at a time until the context ends or stop is called.
func (c *kafkaConsumer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()
	defer cancel()
	defer close(c.done)

	c.logger.Info("Starting Kafka stats consumer")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "failed to fetch kafka message")
		}

		c.handle(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error("[Consumer] Failed to commit offset",
				slog.String("topic", msg.Topic),
				slog.Int64("offset", msg.Offset),
				slog.Any("error", err),
			)
		}
	}
}

// handle applies msg, retrying retryable failures with exponential backoff. A message that
// still fails after maxAttempts is logged and committed so the partition keeps moving.
func (c *kafkaConsumer) handle(ctx context.Context, msg kafka.Message) {
	logger := c.logger.With(
		slog.String("topic", msg.Topic),
		slog.Int("partition", msg.Partition),
		slog.Int64("offset", msg.Offset),
	)

	event, err := c.router.Decode(msg.Value)
	if err != nil {
		logger.Error("[Consumer] Dropping undecodable stats event", slog.Any("error", err))

		return
	}

	ctx, reqLogger := c.router.WithTracing(ctx, event, headerValue(msg.Headers, "request_id"))

	backoff := c.backoff
	for attempt := 1; ; attempt++ {
		err := c.router.Dispatch(ctx, event)
		switch {
		case err == nil:
			reqLogger.Debug("[Consumer] Stats event processed", slog.Int("attempt", attempt))

			return
		case errors.Is(err, handler.ErrUnknownEventType):
			reqLogger.Warn("[Consumer] Ignoring unknown stats event type")

			return
		case !handler.IsRetryable(err):
			reqLogger.Error("[Consumer] Stats event rejected", slog.Any("error", err))

			return
		case attempt >= c.maxAttempts:
			reqLogger.Error("[Consumer] Giving up on stats event",
				slog.Int("attempts", attempt),
				slog.Any("error", err),
			)

			return
		}

		reqLogger.Warn("[Consumer] Retrying stats event",
			slog.Int("attempt", attempt),
			slog.Duration("backoff", backoff),
			slog.Any("error", err),
		)
		if sleepErr := c.sleep(ctx, backoff); sleepErr != nil {
			return
		}
		backoff = min(backoff*2, maxBackoff)
	}
}

func (c *kafkaConsumer) stop(ctx context.Context) error {
	c.logger.Info("Shutting down Kafka stats consumer")

	c.mu.Lock()
	cancelServe := c.cancel
	c.mu.Unlock()

	if cancelServe != nil {
		cancelServe()
		stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
		defer cancel()

		select {
		case <-c.done:
		case <-stopCtx.Done():
			c.logger.Warn("Kafka stats consumer did not stop in time")
		}
	}

	return errors.WithStack(c.reader.Close())
}

func headerValue(headers []kafka.Header, key string) string {
	for _, header := range headers {
		if header.Key == key {
			return string(header.Value)
		}
	}

	return ""
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

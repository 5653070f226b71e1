package consumer

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"

	"catalog/internal/delivery/worker/handler"
	"catalog/internal/domain/constants"
	domainerrors "catalog/internal/domain/errors"
	usecasemocks "catalog/internal/mocks/usecase"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeReader serves queued messages and then blocks until the context ends.
type fakeReader struct {
	mu        sync.Mutex
	queue     []kafka.Message
	committed []kafka.Message
	fetchErr  error
	closed    bool
	drained   chan struct{}
}

func newFakeReader(msgs ...kafka.Message) *fakeReader {
	return &fakeReader{queue: msgs, drained: make(chan struct{})}
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if r.fetchErr != nil {
		err := r.fetchErr
		r.mu.Unlock()

		return kafka.Message{}, err
	}
	if len(r.queue) > 0 {
		msg := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()

		return msg, nil
	}
	r.mu.Unlock()

	select {
	case <-r.drained:
	default:
		close(r.drained)
	}
	<-ctx.Done()

	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)

	return nil
}

func (r *fakeReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true

	return nil
}

func (r *fakeReader) committedOffsets() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	offsets := make([]int64, 0, len(r.committed))
	for _, msg := range r.committed {
		offsets = append(offsets, msg.Offset)
	}

	return offsets
}

func statsMessage(t *testing.T, offset int64, eventType string, payload any) kafka.Message {
	t.Helper()

	rawPayload, err := json.Marshal(payload)
	require.NoError(t, err)
	raw, err := json.Marshal(handler.StatsEvent{EventID: "evt", Type: eventType, Payload: rawPayload})
	require.NoError(t, err)

	return kafka.Message{
		Topic:   "catalog.stats",
		Offset:  offset,
		Value:   raw,
		Headers: []kafka.Header{{Key: "request_id", Value: []byte("req-1")}},
	}
}

type consumerFixture struct {
	consumer *kafkaConsumer
	reader   *fakeReader
	statsUC  *usecasemocks.MockStatsUsecase
	sleeps   []time.Duration
}

func newConsumerFixture(t *testing.T, msgs ...kafka.Message) *consumerFixture {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	statsUC := usecasemocks.NewMockStatsUsecase(t)
	router := handler.NewStatsEventRouter(handler.StatsEventRouterParams{StatsUC: statsUC, Logger: logger})

	f := &consumerFixture{reader: newFakeReader(msgs...), statsUC: statsUC}
	f.consumer = newKafkaConsumer(f.reader, router, logger)
	f.consumer.sleep = func(_ context.Context, d time.Duration) error {
		f.sleeps = append(f.sleeps, d)

		return nil
	}

	return f
}

// run serves until every queued message is handled, then stops the consumer.
func (f *consumerFixture) run(t *testing.T) {
	t.Helper()

	errCh := make(chan error, 1)
	go func() { errCh <- f.consumer.Serve(context.Background()) }()

	select {
	case <-f.reader.drained:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not drain the queue")
	}

	require.NoError(t, f.consumer.stop(context.Background()))
	require.NoError(t, <-errCh)
	assert.True(t, f.reader.closed)
}

func TestKafkaConsumer_CommitsProcessedMessages(t *testing.T) {
	wishlist := usecase.WishlistChangedEvent{RestaurantID: "REST-00000001", Action: "ADDED"}
	f := newConsumerFixture(t,
		statsMessage(t, 1, constants.StatsWishlistChanged, wishlist),
		statsMessage(t, 2, constants.StatsWishlistChanged, wishlist),
	)
	f.statsUC.EXPECT().HandleWishlistChanged(mock.Anything, wishlist).Return(nil).Times(2)

	f.run(t)

	assert.Equal(t, []int64{1, 2}, f.reader.committedOffsets())
	assert.Empty(t, f.sleeps)
}

func TestKafkaConsumer_SkipsPoisonMessages(t *testing.T) {
	f := newConsumerFixture(t,
		kafka.Message{Offset: 1, Value: []byte("not json")},
		statsMessage(t, 2, "coupon.issued", map[string]any{}),
		statsMessage(t, 3, constants.StatsReviewCreated, usecase.ReviewCreatedEvent{Rating: 42}),
	)
	f.statsUC.EXPECT().HandleReviewCreated(mock.Anything, mock.Anything).Return(domainerrors.ErrInvalidReviewRating).Once()

	f.run(t)

	assert.Equal(t, []int64{1, 2, 3}, f.reader.committedOffsets())
	assert.Empty(t, f.sleeps)
}

func TestKafkaConsumer_RetriesWithBackoff(t *testing.T) {
	order := usecase.OrderCompletedEvent{OrderID: "ORD-1", RestaurantID: "REST-00000001"}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		f := newConsumerFixture(t, statsMessage(t, 7, constants.StatsOrderCompleted, order))
		f.statsUC.EXPECT().HandleOrderCompleted(mock.Anything, order).Return(errors.New("deadlock detected")).Twice()
		f.statsUC.EXPECT().HandleOrderCompleted(mock.Anything, order).Return(nil).Once()

		f.run(t)

		assert.Equal(t, []int64{7}, f.reader.committedOffsets())
		assert.Equal(t, []time.Duration{defaultBackoff, 2 * defaultBackoff}, f.sleeps)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		f := newConsumerFixture(t, statsMessage(t, 8, constants.StatsOrderCompleted, order))
		f.statsUC.EXPECT().HandleOrderCompleted(mock.Anything, order).Return(errors.New("connection refused")).Times(defaultMaxAttempts)

		f.run(t)

		assert.Equal(t, []int64{8}, f.reader.committedOffsets())
		assert.Len(t, f.sleeps, defaultMaxAttempts-1)
	})
}

func TestKafkaConsumer_FetchFailure(t *testing.T) {
	f := newConsumerFixture(t)
	f.reader.fetchErr = errors.New("broker unavailable")

	err := f.consumer.Serve(context.Background())

	assert.ErrorContains(t, err, "broker unavailable")
}

func TestHeaderValue(t *testing.T) {
	headers := []kafka.Header{{Key: "trace", Value: []byte("t")}, {Key: "request_id", Value: []byte("r")}}

	assert.Equal(t, "r", headerValue(headers, "request_id"))
	assert.Empty(t, headerValue(headers, "missing"))
}

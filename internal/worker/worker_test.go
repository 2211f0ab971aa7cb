//go:build unit

package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"closeout-market/internal/pkg/clock"
	"closeout-market/internal/pkg/config"
	"closeout-market/internal/usecase/shared"
	"closeout-market/internal/worker"
	"closeout-market/tests/common/fakestore"
	sharedmock "closeout-market/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func seedOutbox(t *testing.T, fs *fakestore.Store, n int) []uuid.UUID {
	t.Helper()
	ids := make([]uuid.UUID, 0, n)
	err := fs.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		for range n {
			id := uuid.New()
			ids = append(ids, id)
			if err := tx.Outbox().Insert(ctx, tx.DB(), id, shared.EventReservationSucceeded, []byte(`{}`)); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	return ids
}

func workerConfig() config.WorkerConfig {
	return config.WorkerConfig{
		OutboxInterval:      10 * time.Millisecond,
		OutboxBatchSize:     2,
		OutboxMaxAttempts:   2,
		IdempotencyInterval: 10 * time.Millisecond,
	}
}

// =============================================================================
// Outbox Relay Tests
// =============================================================================

func TestOutboxRelay_RelayBatch(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fs := fakestore.New()
	ids := seedOutbox(t, fs, 3)

	pub := sharedmock.NewMockEventPublisher(ctrl)
	gomock.InOrder(
		pub.EXPECT().Publish(gomock.Any(), ids[0].String(), shared.EventReservationSucceeded, []byte(`{}`)).Return(nil),
		pub.EXPECT().Publish(gomock.Any(), ids[1].String(), shared.EventReservationSucceeded, []byte(`{}`)).Return(nil),
		pub.EXPECT().Publish(gomock.Any(), ids[2].String(), shared.EventReservationSucceeded, []byte(`{}`)).Return(nil),
	)

	relay := worker.NewOutboxRelay(fs, pub, workerConfig())

	sent, err := relay.RelayBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sent, "batch size bounds one pass")

	sent, err = relay.RelayBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	sent, err = relay.RelayBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)

	for _, row := range fs.Outbox() {
		assert.Equal(t, "sent", row.Status)
	}
}

func TestOutboxRelay_FailedPublishIsRetriedThenParked(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fs := fakestore.New()
	seedOutbox(t, fs, 1)

	pub := sharedmock.NewMockEventPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down")).Times(2)

	relay := worker.NewOutboxRelay(fs, pub, workerConfig())

	sent, err := relay.RelayBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	row := fs.Outbox()[0]
	assert.Equal(t, "pending", row.Status)
	assert.Equal(t, "broker down", row.LastErr)

	_, err = relay.RelayBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "failed", fs.Outbox()[0].Status)

	// Parked events are not claimed again.
	sent, err = relay.RelayBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestOutboxRelay_StoreFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fs := fakestore.New()
	seedOutbox(t, fs, 1)
	fs.FailOn("Outbox.MarkSent", errors.New("connection reset"))

	pub := sharedmock.NewMockEventPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := worker.NewOutboxRelay(fs, pub, workerConfig()).RelayBatch(ctx)

	require.Error(t, err)
	assert.Equal(t, "pending", fs.Outbox()[0].Status, "unconfirmed event stays pending for redelivery")
}

func TestOutboxRelay_StartStopsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fs := fakestore.New()
	seedOutbox(t, fs, 1)

	published := make(chan struct{}, 1)
	pub := sharedmock.NewMockEventPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string, []byte) error {
			published <- struct{}{}
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		worker.NewOutboxRelay(fs, pub, workerConfig()).Start(ctx)
	}()

	select {
	case <-published:
	case <-time.After(2 * time.Second):
		t.Fatal("relay never published")
	}
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("relay did not stop")
	}
}

// =============================================================================
// Idempotency Sweeper Tests
// =============================================================================

func TestIdempotencySweeper_Sweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	fs := fakestore.New()
	expired := shared.IdempotencyRecord{Key: uuid.New(), UserID: userID, Status: shared.IdempotencyStatusCompleted, ExpiresAt: now.Add(-time.Second)}
	live := shared.IdempotencyRecord{Key: uuid.New(), UserID: userID, Status: shared.IdempotencyStatusCompleted, ExpiresAt: now.Add(time.Hour)}
	fs.SeedIdempotency(expired)
	fs.SeedIdempotency(live)

	sweeper := worker.NewIdempotencySweeper(fs, clock.NewMockClock(now), time.Minute)

	deleted, err := sweeper.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	_, ok := fs.Idempotency(expired.Key, userID)
	assert.False(t, ok)
	_, ok = fs.Idempotency(live.Key, userID)
	assert.True(t, ok)
}

func TestIdempotencySweeper_SweepError(t *testing.T) {
	fs := fakestore.New()
	fs.FailOn("Idempotency.DeleteExpired", errors.New("timeout"))

	deleted, err := worker.NewIdempotencySweeper(fs, clock.NewRealClock(), time.Minute).Sweep(context.Background())

	require.Error(t, err)
	assert.Equal(t, int64(0), deleted)
}

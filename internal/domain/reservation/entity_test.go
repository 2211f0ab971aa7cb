//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"closeout-market/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSucceeded(t *testing.T) {
	now := time.Now()
	listingID, buyerID, key := uuid.New(), uuid.New(), uuid.New()

	r, err := reservation.Succeeded(listingID, buyerID, &key, now)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, r.ID())
	assert.True(t, r.IsSucceeded())
	assert.Equal(t, reservation.ReasonNone, r.Reason())
	assert.Equal(t, 1, r.Quantity())
	assert.Equal(t, &key, r.AttemptKey())
	assert.Equal(t, now, r.CreatedAt())

	_, err = reservation.Succeeded(listingID, uuid.Nil, nil, now)
	assert.ErrorIs(t, err, reservation.ErrMissingBuyer)
}

func TestRejected(t *testing.T) {
	now := time.Now()

	for _, reason := range []reservation.RejectReason{
		reservation.ReasonNotFound,
		reservation.ReasonExpired,
		reservation.ReasonSoldOut,
		reservation.ReasonUnauthenticated,
	} {
		t.Run(reason.String(), func(t *testing.T) {
			r, err := reservation.Rejected(uuid.New(), uuid.New(), nil, reason, now)
			require.NoError(t, err)
			assert.False(t, r.IsSucceeded())
			assert.Equal(t, reservation.OutcomeRejected, r.Outcome())
			assert.Equal(t, reason, r.Reason())
		})
	}

	t.Run("reason is required", func(t *testing.T) {
		_, err := reservation.Rejected(uuid.New(), uuid.New(), nil, reservation.ReasonNone, now)
		assert.ErrorIs(t, err, reservation.ErrInvalidReason)
	})
}

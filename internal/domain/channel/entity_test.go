//go:build unit

package channel_test

import (
	"testing"
	"time"

	"closeout-market/internal/domain/channel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel(t *testing.T) {
	listingID, buyerID, sellerID := uuid.New(), uuid.New(), uuid.New()

	ch, err := channel.NewChannel(listingID, buyerID, sellerID, time.Now())
	require.NoError(t, err)

	t.Run("participants", func(t *testing.T) {
		assert.True(t, ch.IsParticipant(buyerID))
		assert.True(t, ch.IsParticipant(sellerID))
		assert.False(t, ch.IsParticipant(uuid.New()))
		assert.False(t, ch.IsParticipant(uuid.Nil))
	})

	t.Run("counterpart", func(t *testing.T) {
		assert.Equal(t, sellerID, ch.Counterpart(buyerID))
		assert.Equal(t, buyerID, ch.Counterpart(sellerID))
		assert.Equal(t, uuid.Nil, ch.Counterpart(uuid.New()))
	})

	t.Run("new channel starts before the first sequence", func(t *testing.T) {
		assert.Zero(t, ch.LastSeq())
	})

	t.Run("buyer cannot be the seller", func(t *testing.T) {
		_, err := channel.NewChannel(listingID, sellerID, sellerID, time.Now())
		assert.ErrorIs(t, err, channel.ErrSelfChannel)
	})
}

func TestGetOrCreateResult(t *testing.T) {
	ch := channel.ReconstructChannel(uuid.New(), uuid.New(), uuid.New(), uuid.New(), 3, time.Now())

	created := channel.Created(ch)
	assert.True(t, created.Created())
	assert.False(t, created.AlreadyExists())

	existing := channel.AlreadyExists(ch)
	assert.False(t, existing.Created())
	assert.True(t, existing.AlreadyExists())
	assert.Same(t, ch, existing.Channel)
}

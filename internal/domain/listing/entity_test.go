//go:build unit

package listing_test

import (
	"strings"
	"testing"
	"time"

	"closeout-market/internal/domain/listing"
	"closeout-market/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ListingBuilder)
	errIs  error
}

func TestListing(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewListingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.StoreID, actual.StoreID())
		assert.Equal(t, int64(12000), actual.OriginalPrice().Minor())
		assert.Equal(t, int64(6000), actual.DiscountPrice().Minor())
		assert.Equal(t, 50, actual.DiscountPrice().DiscountPercentFrom(actual.OriginalPrice()))
		assert.Equal(t, listing.StateAvailable, actual.StateAt(b.Now))
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.ListingBuilder) { b.Name = "   " },
				errIs:  listing.ErrEmptyName,
			},
			{
				name:   "name too long",
				mutate: func(b *builder.ListingBuilder) { b.Name = strings.Repeat("가", listing.MaxNameLength+1) },
				errIs:  listing.ErrNameTooLong,
			},
			{
				name:   "discount above original",
				mutate: func(b *builder.ListingBuilder) { b.DiscountPrice = b.OriginalPrice + 1 },
				errIs:  listing.ErrDiscountAboveOriginal,
			},
			{
				name:   "discount equal to original",
				mutate: func(b *builder.ListingBuilder) { b.DiscountPrice = b.OriginalPrice },
			},
			{
				name:   "negative price",
				mutate: func(b *builder.ListingBuilder) { b.OriginalPrice = -1 },
				errIs:  listing.ErrNegativeMoney,
			},
			{
				name:   "negative stock",
				mutate: func(b *builder.ListingBuilder) { b.Stock = -1 },
				errIs:  listing.ErrNegativeStock,
			},
			{
				name:   "zero stock is allowed",
				mutate: func(b *builder.ListingBuilder) { b.Stock = 0 },
			},
			{
				name:   "expiry equal to now",
				mutate: func(b *builder.ListingBuilder) { b.ExpiresAt = b.Now },
				errIs:  listing.ErrExpiryNotInFuture,
			},
			{
				name:   "latitude out of range",
				mutate: func(b *builder.ListingBuilder) { b.Lat = 91 },
				errIs:  listing.ErrInvalidLatitude,
			},
			{
				name:   "longitude out of range",
				mutate: func(b *builder.ListingBuilder) { b.Lng = -180.5 },
				errIs:  listing.ErrInvalidLongitude,
			},
		})
	})

	t.Run("state", func(t *testing.T) {
		b := builder.NewListingBuilder()
		l, err := b.BuildDomain()
		require.NoError(t, err)

		sold := listing.ReconstructListing(l.ID(), l.StoreID(), l.Name(), l.Description(),
			l.OriginalPrice(), l.DiscountPrice(), 0, l.ExpiresAt(), l.GoldenTimeOptIn(),
			l.Location(), l.ImageURL(), "", nil, l.CreatedAt())

		assert.True(t, sold.IsSoldOut())
		assert.Equal(t, listing.StateSoldOut, sold.StateAt(b.Now))
		assert.Equal(t, listing.StateExpired, sold.StateAt(l.ExpiresAt()), "expiry dominates sold out")
		assert.Equal(t, listing.StateExpired, l.StateAt(l.ExpiresAt().Add(time.Second)))
	})

	t.Run("golden time follows opt-in", func(t *testing.T) {
		b := builder.NewListingBuilder()
		b.GoldenTimeOptIn = true
		l, err := b.BuildDomain()
		require.NoError(t, err)

		assert.False(t, l.PricingAt(b.Now).IsGoldenTime)
		assert.True(t, l.PricingAt(l.ExpiresAt().Add(-10*time.Minute)).IsGoldenTime)
	})

	t.Run("marketing enrichment", func(t *testing.T) {
		l, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)

		l.WithMarketing("  오늘만 반값!  ", []string{"#bakery", "bakery", " ", "dessert"})
		assert.Equal(t, "오늘만 반값!", l.MarketingCopy())
		assert.Equal(t, []string{"bakery", "dessert"}, l.MarketingTags())

		l.WithMarketing("", nil)
		assert.Equal(t, "오늘만 반값!", l.MarketingCopy())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewListingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

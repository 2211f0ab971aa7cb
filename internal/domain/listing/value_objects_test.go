//go:build unit

package listing_test

import (
	"testing"

	"closeout-market/internal/domain/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, lat, lng float64) listing.GeoPoint {
	t.Helper()
	p, err := listing.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func TestViewport_Contains(t *testing.T) {
	vp, err := listing.NewViewport(37.50, 127.00, 37.60, 127.10)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		lat, lng float64
		expected bool
	}{
		{name: "interior", lat: 37.55, lng: 127.05, expected: true},
		{name: "south-west corner", lat: 37.50, lng: 127.00, expected: true},
		{name: "north-east corner", lat: 37.60, lng: 127.10, expected: true},
		{name: "on north edge", lat: 37.60, lng: 127.05, expected: true},
		{name: "on west edge", lat: 37.55, lng: 127.00, expected: true},
		{name: "just north", lat: 37.6000001, lng: 127.05, expected: false},
		{name: "just east", lat: 37.55, lng: 127.1000001, expected: false},
		{name: "far away", lat: 35.1, lng: 129.0, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, vp.Contains(mustPoint(t, tc.lat, tc.lng)))
		})
	}
}

func TestNewViewport(t *testing.T) {
	_, err := listing.NewViewport(37.6, 127.0, 37.5, 127.1)
	assert.ErrorIs(t, err, listing.ErrInvertedViewport)

	_, err = listing.NewViewport(37.5, 127.1, 37.6, 127.0)
	assert.ErrorIs(t, err, listing.ErrInvertedViewport)

	_, err = listing.NewViewport(-91, 0, 0, 0)
	assert.ErrorIs(t, err, listing.ErrInvalidLatitude)

	degenerate, err := listing.NewViewport(37.5, 127.0, 37.5, 127.0)
	require.NoError(t, err)
	assert.True(t, degenerate.Contains(mustPoint(t, 37.5, 127.0)), "a point viewport contains its own point")
}

func TestMoney(t *testing.T) {
	_, err := listing.NewMoney(-1)
	assert.ErrorIs(t, err, listing.ErrNegativeMoney)

	original, err := listing.NewMoney(10000)
	require.NoError(t, err)
	discounted, err := listing.NewMoney(3300)
	require.NoError(t, err)

	assert.Equal(t, 67, discounted.DiscountPercentFrom(original))
	assert.Equal(t, 0, original.DiscountPercentFrom(original))
	assert.Equal(t, 0, original.DiscountPercentFrom(listing.Money{}))
}

package listing

import (
	"errors"
	"strings"
)

var (
	ErrNegativeMoney    = errors.New("money cannot be negative")
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
	ErrInvertedViewport = errors.New("viewport minimum must not exceed maximum")
)

// Money is an amount in minor currency units.
type Money struct {
	minor int64
}

func NewMoney(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{minor: minor}, nil
}

func (m Money) Minor() int64 {
	return m.minor
}

// DiscountPercentFrom returns the whole-percent discount of m relative to original.
func (m Money) DiscountPercentFrom(original Money) int {
	if original.minor <= 0 || m.minor >= original.minor {
		return 0
	}
	return int((original.minor - m.minor) * 100 / original.minor)
}

type GeoPoint struct {
	lat float64
	lng float64
}

func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	if lat < -90 || lat > 90 {
		return GeoPoint{}, ErrInvalidLatitude
	}
	if lng < -180 || lng > 180 {
		return GeoPoint{}, ErrInvalidLongitude
	}
	return GeoPoint{lat: lat, lng: lng}, nil
}

func (p GeoPoint) Lat() float64 { return p.lat }
func (p GeoPoint) Lng() float64 { return p.lng }

// Viewport is an axis-aligned lat/lng rectangle. Bounds are inclusive.
// Viewports crossing the antimeridian are not supported.
type Viewport struct {
	minLat, minLng float64
	maxLat, maxLng float64
}

func NewViewport(minLat, minLng, maxLat, maxLng float64) (Viewport, error) {
	if _, err := NewGeoPoint(minLat, minLng); err != nil {
		return Viewport{}, err
	}
	if _, err := NewGeoPoint(maxLat, maxLng); err != nil {
		return Viewport{}, err
	}
	if minLat > maxLat || minLng > maxLng {
		return Viewport{}, ErrInvertedViewport
	}
	return Viewport{minLat: minLat, minLng: minLng, maxLat: maxLat, maxLng: maxLng}, nil
}

func (v Viewport) Contains(p GeoPoint) bool {
	return p.lat >= v.minLat && p.lat <= v.maxLat &&
		p.lng >= v.minLng && p.lng <= v.maxLng
}

func (v Viewport) MinLat() float64 { return v.minLat }
func (v Viewport) MinLng() float64 { return v.minLng }
func (v Viewport) MaxLat() float64 { return v.maxLat }
func (v Viewport) MaxLng() float64 { return v.maxLng }

const (
	MaxTags      = 10
	MaxTagLength = 40
)

// NormalizeTags trims, drops empties and duplicates, and caps the list.
func NormalizeTags(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimPrefix(strings.TrimSpace(t), "#")
		if t == "" || len([]rune(t)) > MaxTagLength {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
		if len(out) == MaxTags {
			break
		}
	}
	return out
}

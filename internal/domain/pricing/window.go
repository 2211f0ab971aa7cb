// Package pricing decides the time-dependent pricing state of a listing.
package pricing

import "time"

// GoldenTimeWindow is how long before expiry an opted-in listing is promoted.
const GoldenTimeWindow = 30 * time.Minute

type Window struct {
	IsExpired    bool `json:"is_expired"`
	IsGoldenTime bool `json:"is_golden_time"`
}

// Evaluate is total: any pair of instants yields a window.
// Golden time holds iff optIn and 0 < expiresAt-now <= GoldenTimeWindow.
// A listing is expired iff now >= expiresAt.
func Evaluate(now, expiresAt time.Time, optIn bool) Window {
	remaining := expiresAt.Sub(now)
	if remaining <= 0 {
		return Window{IsExpired: true}
	}
	return Window{
		IsGoldenTime: optIn && remaining <= GoldenTimeWindow,
	}
}

func (w Window) Reservable() bool {
	return !w.IsExpired
}

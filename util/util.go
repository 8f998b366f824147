// Package util carries the shared helpers: expiry-date handling for
// provider data and seeded random sources for sampling.
package util

import (
	"fmt"
	"math"
	"time"
)

const Layout = "2006-01-02"

// TimeToMaturity converts an expiry date into a year fraction against now,
// counting calendar days over 365. Past and same-day expiries floor at
// 0.001 to stay inside the pricers' positive-maturity domain.
func TimeToMaturity(expiry, now time.Time) float64 {
	days := expiry.Sub(now).Hours() / 24
	return math.Max(days/365.0, 0.001)
}

// ParseExpiry reads a provider expiry date in the 2006-01-02 layout.
func ParseExpiry(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("expiry %q: %w", s, err)
	}
	return t, nil
}

// Package points implements fixed-point arithmetic for the rewards balance.
//
// All balances and credits are carried as integer tenths of a point. The
// one-decimal convention of the API (a sleep credit like 7.3, a balance
// like 560.0) is therefore exact: there is no float rounding anywhere in
// the ledger path, only at the JSON boundary where the value is rendered
// as a plain number.
package points

import (
	"math"
	"strconv"
	"time"
)

// Points is a point amount in tenths. 75 means 7.5 points.
type Points int64

// FromWhole converts a whole-point amount (product prices are integers).
func FromWhole(n int) Points {
	return Points(n) * 10
}

// FromFloat converts a floating point amount, rounding to the nearest tenth.
func FromFloat(f float64) Points {
	return Points(math.Round(f * 10))
}

// FromHours converts a sleep duration into credited points:
// floor(hours * 10) / 10, truncated, never rounded up.
func FromHours(d time.Duration) Points {
	return Points(math.Floor(d.Hours() * 10))
}

// Float64 returns the amount in points (not tenths).
func (p Points) Float64() float64 {
	return float64(p) / 10
}

// String renders the amount with at most one decimal place.
func (p Points) String() string {
	return strconv.FormatFloat(p.Float64(), 'f', -1, 64)
}

// MarshalJSON renders the amount as a JSON number, e.g. 507.3 or 560.
func (p Points) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalJSON accepts a JSON number and rounds it to the nearest tenth.
func (p *Points) UnmarshalJSON(b []byte) error {
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*p = FromFloat(f)
	return nil
}

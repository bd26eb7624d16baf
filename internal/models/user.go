package models

import "github.com/mkaneko/sleepoints/internal/points"

// User holds the running point balance for one account.
//
// Points is mutated only by the sleep-credit and redemption operations,
// and never goes negative after a committed operation. It is a running
// total: it is not recomputed by summing SleepSession or RedeemOrder
// history, so reconciliation code must treat the two as separately
// sourced values that should agree.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`

	// Username is the display name.
	Username string `json:"username"`

	// Email is optional and only used for feed owner matching; it is not
	// part of the API response shape.
	Email string `json:"-"`

	// Points is the current balance in tenths.
	Points points.Points `json:"points"`
}

package models

import (
	"time"

	"github.com/mkaneko/sleepoints/internal/points"
)

// SleepSession is one recorded night of sleep. Immutable once created.
//
// CreditedPoints is derived from the duration at creation time
// (points.FromHours) and stored denormalized for history; it contributes
// additively to the owning user's balance when the session is created.
type SleepSession struct {
	// ID is the unique identifier for the session (UUID format).
	ID string `json:"id"`

	// UserID is the owning user.
	UserID string `json:"user_id"`

	// Start and End bound the sleep period; End is always after Start.
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	// CreditedPoints is the amount added to the balance for this session.
	CreditedPoints points.Points `json:"credited_points"`

	// CreatedAt is when the session was recorded.
	CreatedAt time.Time `json:"created_at"`
}

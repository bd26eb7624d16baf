package models

import (
	"time"

	"github.com/mkaneko/sleepoints/internal/points"
)

// RedeemOrder is the permanent audit record of a balance debit.
// Immutable once created.
type RedeemOrder struct {
	// ID is the unique identifier for the order (UUID format).
	ID string `json:"id"`

	// UserID is the user whose balance was debited.
	UserID string `json:"user_id"`

	// ProductID is the redeemed product.
	ProductID string `json:"product_id"`

	// Qty is the redeemed quantity, in [1, 100].
	Qty int `json:"qty"`

	// CostPoints is price x qty, the amount debited.
	CostPoints points.Points `json:"cost_points"`

	// CreatedAt is when the order was created.
	CreatedAt time.Time `json:"created_at"`
}

// Package service implements the rewards business logic over storage.Store.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mkaneko/sleepoints/internal/models"
	"github.com/mkaneko/sleepoints/internal/points"
	"github.com/mkaneko/sleepoints/internal/storage"
)

// MaxRedeemQty is the per-order quantity cap.
const MaxRedeemQty = 100

// Rewards exposes the rewards operations: profile and history reads, the
// product catalog, and redemption.
type Rewards struct {
	store storage.Store
}

// NewRewards creates a Rewards service with the given storage backend.
func NewRewards(store storage.Store) *Rewards {
	return &Rewards{store: store}
}

// Me returns the user's profile with the current balance.
func (s *Rewards) Me(ctx context.Context, userID string) (*models.User, error) {
	return s.store.GetUser(ctx, userID)
}

// Sessions returns the user's sleep history, newest first.
func (s *Rewards) Sessions(ctx context.Context, userID string) ([]models.SleepSession, error) {
	return s.store.ListSessions(ctx, userID)
}

// Products returns the full catalog.
func (s *Rewards) Products(ctx context.Context) ([]models.Product, error) {
	return s.store.ListProducts(ctx)
}

// Product returns one catalog entry, or ErrProductNotFound.
func (s *Rewards) Product(ctx context.Context, productID string) (*models.Product, error) {
	p, err := s.store.GetProduct(ctx, productID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	return p, err
}

// Redemption is the result of a successful redeem operation.
type Redemption struct {
	OrderID         string        `json:"order_id"`
	RemainingPoints points.Points `json:"remaining_points"`
}

// Redeem exchanges qty units of a product for points.
//
// Checks run in order and the first failure wins: qty must be positive,
// qty must not exceed MaxRedeemQty, the product must exist, and the
// balance must cover price x qty. On success the debit and the order
// insert commit as one transaction; the operation is not idempotent, so
// callers must not blindly retry after a timeout.
func (s *Rewards) Redeem(ctx context.Context, userID, productID string, qty int) (*Redemption, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}
	if qty > MaxRedeemQty {
		return nil, ErrQuantityLimitExceeded
	}

	product, err := s.store.GetProduct(ctx, productID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	order := &models.RedeemOrder{
		UserID:     userID,
		ProductID:  product.ID,
		Qty:        qty,
		CostPoints: points.FromWhole(product.Price * qty),
	}
	remaining, err := s.store.CreateRedemption(ctx, order)
	if errors.Is(err, storage.ErrInsufficientPoints) {
		return nil, ErrInsufficientBalance
	}
	if err != nil {
		slog.Error("Redeem failed", "user_id", userID, "product_id", productID, "qty", qty, "error", err)
		return nil, err
	}

	slog.Info("Redeemed product",
		"user_id", userID,
		"product_id", product.ID,
		"qty", qty,
		"cost_points", order.CostPoints,
		"remaining_points", remaining,
	)
	return &Redemption{OrderID: order.ID, RemainingPoints: remaining}, nil
}

// RecordSleep credits a sleep session to the user: points are derived from
// the duration (points.FromHours) and added to the balance atomically with
// the session insert.
func (s *Rewards) RecordSleep(ctx context.Context, session *models.SleepSession) error {
	if !session.End.After(session.Start) {
		return fmt.Errorf("sleep session end must be after start")
	}
	session.CreditedPoints = points.FromHours(session.End.Sub(session.Start))
	return s.store.CreditSleep(ctx, session)
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkaneko/sleepoints/internal/models"
	"github.com/mkaneko/sleepoints/internal/points"
	"github.com/mkaneko/sleepoints/internal/storage"
)

// CreateRedemption debits the order cost from the user's balance and
// persists the order in a single transaction.
//
// The debit is a conditional UPDATE guarded by `points >= cost`, so two
// concurrent redemptions serialize on the user row and the later one fails
// with ErrInsufficientPoints instead of observing a stale balance.
func (s *SQLiteStore) CreateRedemption(ctx context.Context, order *models.RedeemOrder) (points.Points, error) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE users SET points = points - ? WHERE id = ? AND points >= ?",
		int64(order.CostPoints), order.UserID, int64(order.CostPoints),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to debit points: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check debit: %w", err)
	}
	if n == 0 {
		// Distinguish a missing user from an uncovered cost.
		var have int64
		err := tx.QueryRowContext(ctx, "SELECT points FROM users WHERE id = ?", order.UserID).Scan(&have)
		if err == sql.ErrNoRows {
			return 0, storage.ErrNotFound
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read balance: %w", err)
		}
		return 0, storage.ErrInsufficientPoints
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO redeem_orders (id, user_id, product_id, qty, cost_points, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		order.ID, order.UserID, order.ProductID, order.Qty,
		int64(order.CostPoints), order.CreatedAt.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	var remaining int64
	if err := tx.QueryRowContext(ctx, "SELECT points FROM users WHERE id = ?", order.UserID).Scan(&remaining); err != nil {
		return 0, fmt.Errorf("failed to read remaining balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return points.Points(remaining), nil
}

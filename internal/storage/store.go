// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mkaneko/sleepoints/internal/models"
	"github.com/mkaneko/sleepoints/internal/points"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrInsufficientPoints is returned by CreateRedemption when the user's
// balance does not cover the order cost. No mutation happens in that case.
var ErrInsufficientPoints = errors.New("insufficient points")

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// CreateUser persists a new user.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser retrieves a user by ID. Returns ErrNotFound if absent.
	GetUser(ctx context.Context, userID string) (*models.User, error)

	// CreditSleep persists a sleep session and adds its credited points to
	// the owner's balance in a single transaction. The session ID and
	// CreatedAt are populated by the store if unset.
	CreditSleep(ctx context.Context, session *models.SleepSession) error

	// ListSessions returns the user's sleep sessions, newest first.
	ListSessions(ctx context.Context, userID string) ([]models.SleepSession, error)

	// CreateProduct persists a new catalog product.
	CreateProduct(ctx context.Context, product *models.Product) error

	// GetProduct retrieves a product by ID. Returns ErrNotFound if absent.
	GetProduct(ctx context.Context, productID string) (*models.Product, error)

	// ListProducts returns the full catalog.
	ListProducts(ctx context.Context) ([]models.Product, error)

	// CreateRedemption debits order.CostPoints from the user's balance and
	// persists the order as a single atomic unit, returning the post-debit
	// balance. Returns ErrInsufficientPoints (and writes nothing) when the
	// balance does not cover the cost, ErrNotFound when the user is absent.
	CreateRedemption(ctx context.Context, order *models.RedeemOrder) (points.Points, error)

	// Close releases any resources held by the store.
	Close() error
}

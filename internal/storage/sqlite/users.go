package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mkaneko/sleepoints/internal/models"
	"github.com/mkaneko/sleepoints/internal/points"
	"github.com/mkaneko/sleepoints/internal/storage"
)

// CreateUser inserts a new user into the database.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, username, email, points) VALUES (?, ?, ?, ?)",
		user.ID, user.Username, user.Email, int64(user.Points),
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by their ID.
func (s *SQLiteStore) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user := &models.User{}
	var pts int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, email, points FROM users WHERE id = ?",
		userID,
	).Scan(&user.ID, &user.Username, &user.Email, &pts)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	user.Points = points.Points(pts)
	return user, nil
}

package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkaneko/sleepoints/internal/models"
	"github.com/mkaneko/sleepoints/internal/points"
)

// CreditSleep persists a sleep session and adds its credited points to the
// owner's balance. Both writes commit together or not at all.
func (s *SQLiteStore) CreditSleep(ctx context.Context, session *models.SleepSession) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO sleep_sessions (id, user_id, start_at, end_at, credited_points, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		session.ID, session.UserID,
		session.Start.Unix(), session.End.Unix(),
		int64(session.CreditedPoints), session.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert sleep session: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		"UPDATE users SET points = points + ? WHERE id = ?",
		int64(session.CreditedPoints), session.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to credit points: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to check credit: %w", err)
	} else if n == 0 {
		return fmt.Errorf("failed to credit points: user not found: %s", session.UserID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListSessions returns the user's sleep sessions, newest first.
func (s *SQLiteStore) ListSessions(ctx context.Context, userID string) ([]models.SleepSession, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, start_at, end_at, credited_points, created_at FROM sleep_sessions WHERE user_id = ? ORDER BY created_at DESC, id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.SleepSession
	for rows.Next() {
		var sess models.SleepSession
		var start, end, credited, created int64
		if err := rows.Scan(&sess.ID, &sess.UserID, &start, &end, &credited, &created); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sess.Start = time.Unix(start, 0).UTC()
		sess.End = time.Unix(end, 0).UTC()
		sess.CreditedPoints = points.Points(credited)
		sess.CreatedAt = time.Unix(created, 0).UTC()
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}
	return sessions, nil
}
